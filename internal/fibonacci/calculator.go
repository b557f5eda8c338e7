package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import "github.com/agbru/fibdrv/internal/bigdecimal"

// Calculator defines the interface shared by every Fibonacci algorithm.
// Implementations are synchronous and stateless, so a single value may be
// shared between goroutines.
type Calculator interface {
	// Compute returns the decimal text of F(k).
	//
	// Parameters:
	//   - k: The index, in [0, MaxIndex].
	//
	// Returns:
	//   - string: F(k) in base 10 without leading zeros.
	//   - error: ErrInvalidIndex for out-of-range k, or a wrapped
	//     bigdecimal error if the arithmetic fails.
	Compute(k int64) (string, error)

	// Name returns the display name of the algorithm.
	Name() string
}

// Compute returns F(k) using Fast Doubling.
func Compute(k int64) (string, error) {
	return FastDoubling{}.Compute(k)
}

// ops chains bigdecimal operations and keeps the first error, so a sequence
// of arithmetic steps can be written without checking after each one.
type ops struct {
	err error
}

func (o *ops) add(a, b bigdecimal.Decimal) bigdecimal.Decimal {
	return o.apply("add", bigdecimal.Add, a, b)
}

func (o *ops) sub(a, b bigdecimal.Decimal) bigdecimal.Decimal {
	return o.apply("sub", bigdecimal.Sub, a, b)
}

func (o *ops) mul(a, b bigdecimal.Decimal) bigdecimal.Decimal {
	return o.apply("mul", bigdecimal.Mul, a, b)
}

func (o *ops) apply(name string, fn func(a, b bigdecimal.Decimal) (bigdecimal.Decimal, error), a, b bigdecimal.Decimal) bigdecimal.Decimal {
	if o.err != nil {
		return bigdecimal.Decimal{}
	}
	c, err := fn(a, b)
	if err != nil {
		o.err = &opError{op: name, err: err}
	}
	return c
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
