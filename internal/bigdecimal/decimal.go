package bigdecimal

import (
	"errors"
	"fmt"
	"strings"
)

// Capacity is the number of decimal digits a Decimal can hold.
const Capacity = 128

var (
	// ErrCapacityOverflow is returned when a value needs more than Capacity digits.
	ErrCapacityOverflow = errors.New("bigdecimal: capacity overflow")
	// ErrNegativeResult is returned by Sub when the subtrahend exceeds the minuend.
	ErrNegativeResult = errors.New("bigdecimal: negative result")
	// ErrNegativeValue is returned by FromInt for negative inputs.
	ErrNegativeValue = errors.New("bigdecimal: negative value")
	// ErrSyntax is returned by Parse for text that is not a decimal integer.
	ErrSyntax = errors.New("bigdecimal: invalid syntax")
)

// Decimal is a non-negative integer of at most Capacity decimal digits.
// The zero value is 0 and is ready to use.
type Decimal struct {
	digits [Capacity]uint8
}

// Zero returns the Decimal 0.
func Zero() Decimal { return Decimal{} }

// One returns the Decimal 1.
func One() Decimal {
	var d Decimal
	d.digits[0] = 1
	return d
}

// FromInt converts a non-negative machine integer into a Decimal.
//
// Parameters:
//   - v: The value to convert. Must be >= 0.
//
// Returns:
//   - Decimal: The decimal representation of v.
//   - error: ErrNegativeValue for v < 0, ErrCapacityOverflow if v has more
//     than Capacity digits.
func FromInt(v int64) (Decimal, error) {
	var d Decimal
	if v < 0 {
		return d, fmt.Errorf("%w: %d", ErrNegativeValue, v)
	}
	for i := 0; v > 0; i++ {
		if i >= Capacity {
			return Decimal{}, ErrCapacityOverflow
		}
		d.digits[i] = uint8(v % 10)
		v /= 10
	}
	return d, nil
}

// Parse reads a base-10 integer. Leading zeros are accepted.
func Parse(s string) (Decimal, error) {
	var d Decimal
	if s == "" {
		return d, fmt.Errorf("%w: empty string", ErrSyntax)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return d, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}
	s = strings.TrimLeft(s, "0")
	if len(s) > Capacity {
		return d, fmt.Errorf("%w: %d digits", ErrCapacityOverflow, len(s))
	}
	for i := 0; i < len(s); i++ {
		d.digits[i] = s[len(s)-1-i] - '0'
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Digit returns the digit at position i (0 is the least significant).
// Positions outside [0, Capacity) read as 0.
func (d Decimal) Digit(i int) uint8 {
	if i < 0 || i >= Capacity {
		return 0
	}
	return d.digits[i]
}

// Len returns the number of significant decimal digits. Len of 0 is 0.
func (d Decimal) Len() int {
	for i := Capacity - 1; i >= 0; i-- {
		if d.digits[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool { return d.Len() == 0 }

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b Decimal) int {
	for i := Capacity - 1; i >= 0; i-- {
		switch {
		case a.digits[i] < b.digits[i]:
			return -1
		case a.digits[i] > b.digits[i]:
			return 1
		}
	}
	return 0
}

// String renders d from the most significant digit down, without leading
// zeros. The zero value renders as "0".
func (d Decimal) String() string {
	n := d.Len()
	if n == 0 {
		return "0"
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = d.digits[n-1-i] + '0'
	}
	return string(buf)
}
