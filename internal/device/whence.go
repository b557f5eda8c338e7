package device

import (
	"fmt"
	"io"
)

// Whence selects how Seek interprets its target.
type Whence int

const (
	// Absolute sets the position to the target.
	Absolute Whence = iota
	// RelativeToCurrent adds the target to the current position.
	RelativeToCurrent
	// RelativeToBound sets the position to MaxIndex minus the target.
	RelativeToBound
)

// String returns the short name used in flags and query strings.
func (w Whence) String() string {
	switch w {
	case Absolute:
		return "set"
	case RelativeToCurrent:
		return "cur"
	case RelativeToBound:
		return "end"
	default:
		return fmt.Sprintf("Whence(%d)", int(w))
	}
}

// ParseWhence converts "set", "cur" or "end" to a Whence.
func ParseWhence(s string) (Whence, error) {
	switch s {
	case "set", "":
		return Absolute, nil
	case "cur":
		return RelativeToCurrent, nil
	case "end":
		return RelativeToBound, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWhence, s)
	}
}

// whenceFromIO maps io.SeekStart, io.SeekCurrent and io.SeekEnd.
func whenceFromIO(whence int) (Whence, error) {
	switch whence {
	case io.SeekStart:
		return Absolute, nil
	case io.SeekCurrent:
		return RelativeToCurrent, nil
	case io.SeekEnd:
		return RelativeToBound, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
}
