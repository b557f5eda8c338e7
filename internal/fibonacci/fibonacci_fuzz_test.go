package fibonacci

import (
	"errors"
	"math/big"
	"testing"
)

// FuzzFastDoublingConsistency checks the decimal engine against math/big for
// every index the fuzzer produces. Indices outside [0, MaxIndex] must fail
// with ErrInvalidIndex.
func FuzzFastDoublingConsistency(f *testing.F) {
	for _, k := range []int64{0, 1, 2, 10, 93, 94, 300, MaxIndex - 1, MaxIndex, MaxIndex + 1, -1} {
		f.Add(k)
	}

	f.Fuzz(func(t *testing.T, k int64) {
		got, err := FastDoubling{}.Compute(k)
		if k < 0 || k > MaxIndex {
			if !errors.Is(err, ErrInvalidIndex) {
				t.Fatalf("Compute(%d) error = %v, want ErrInvalidIndex", k, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Compute(%d) failed: %v", k, err)
		}

		a, b := big.NewInt(0), big.NewInt(1)
		for i := int64(0); i < k; i++ {
			a.Add(a, b)
			a, b = b, a
		}
		if got != a.String() {
			t.Errorf("Compute(%d) = %s, want %s", k, got, a.String())
		}
		if len(got) > Capacity {
			t.Errorf("Compute(%d) has %d digits, capacity is %d", k, len(got), Capacity)
		}
	})
}

// FuzzIterativeMatchesFastDoubling checks that both registered calculators
// agree.
func FuzzIterativeMatchesFastDoubling(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(77))
	f.Add(int64(MaxIndex))

	f.Fuzz(func(t *testing.T, k int64) {
		if k < 0 || k > MaxIndex {
			return
		}
		fd, err := FastDoubling{}.Compute(k)
		if err != nil {
			t.Fatal(err)
		}
		it, err := Iterative{}.Compute(k)
		if err != nil {
			t.Fatal(err)
		}
		if fd != it {
			t.Errorf("F(%d): fast doubling %s, iterative %s", k, fd, it)
		}
	})
}
