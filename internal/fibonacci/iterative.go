package fibonacci

import (
	"fmt"

	"github.com/agbru/fibdrv/internal/bigdecimal"
)

// Iterative computes F(k) by applying F(n) = F(n-1) + F(n-2) k times.
// It is O(k) and serves as the reference the faster algorithms are checked
// against.
type Iterative struct{}

// Name returns the descriptive name of the algorithm.
func (Iterative) Name() string {
	return "Iterative (O(n), base-10)"
}

// Compute returns the decimal text of F(k).
func (it Iterative) Compute(k int64) (string, error) {
	d, err := it.ComputeDecimal(k)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// ComputeDecimal returns F(k) as a Decimal.
func (Iterative) ComputeDecimal(k int64) (bigdecimal.Decimal, error) {
	if err := checkIndex(k); err != nil {
		return bigdecimal.Decimal{}, err
	}
	a, b := bigdecimal.Zero(), bigdecimal.One()
	var o ops
	for i := int64(0); i < k; i++ {
		a, b = b, o.add(a, b)
		if o.err != nil {
			return bigdecimal.Decimal{}, fmt.Errorf("fibonacci: iterative F(%d): %w", k, o.err)
		}
	}
	return a, nil
}
