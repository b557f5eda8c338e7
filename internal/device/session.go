package device

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/agbru/fibdrv/internal/fibonacci"
)

// Session is the exclusive-access state of the device. The zero value is not
// usable; create sessions with NewSession.
//
// The lock is a compare-and-swap flag: Acquire never waits and there is no
// queue of waiters. Only the holder may call Seek, Query and Submit; the
// position is atomic only so that Position can be read by observers.
type Session struct {
	locked atomic.Bool
	pos    atomic.Int64
	max    int64
	calc   fibonacci.Calculator
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCalculator replaces the Fast Doubling calculator used by Query.
func WithCalculator(calc fibonacci.Calculator) SessionOption {
	return func(s *Session) { s.calc = calc }
}

// NewSession returns a Free session at position 0.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{max: fibonacci.MaxIndex, calc: fibonacci.FastDoubling{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire moves the session from Free to Locked, or fails with ErrBusy.
func (s *Session) Acquire() error {
	if !s.locked.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

// Release moves the session from Locked to Free. Releasing a Free session
// returns ErrReleaseWithoutAcquire and leaves it Free. The position is kept.
func (s *Session) Release() error {
	if !s.locked.CompareAndSwap(true, false) {
		return ErrReleaseWithoutAcquire
	}
	return nil
}

// Locked reports whether the session is currently held.
func (s *Session) Locked() bool { return s.locked.Load() }

// MaxIndex returns the largest position the session can hold.
func (s *Session) MaxIndex() int64 { return s.max }

// Position returns the current position.
func (s *Session) Position() int64 { return s.pos.Load() }

// Seek moves the position and returns the clamped result.
//
// Absolute sets the position to target, RelativeToCurrent adds target to
// the current position and RelativeToBound sets it to MaxIndex - target.
// The result is clamped to [0, MaxIndex]; intermediate overflow saturates.
func (s *Session) Seek(target int64, whence Whence) (int64, error) {
	cur := s.pos.Load()
	if !s.Locked() {
		return cur, ErrNotHeld
	}
	var next int64
	switch whence {
	case Absolute:
		next = target
	case RelativeToCurrent:
		next = addSaturating(cur, target)
	case RelativeToBound:
		next = subSaturating(s.max, target)
	default:
		return cur, fmt.Errorf("%w: %d", ErrInvalidWhence, int(whence))
	}
	next = clamp(next, 0, s.max)
	s.pos.Store(next)
	return next, nil
}

// Query computes F(position) from scratch. requestedSize is ignored; the
// whole value is always returned and the position does not change.
func (s *Session) Query(requestedSize int) (string, error) {
	_ = requestedSize
	if !s.Locked() {
		return "", ErrNotHeld
	}
	return s.calc.Compute(s.pos.Load())
}

// Submit accepts and discards data, reporting one unit accepted.
func (s *Session) Submit(data []byte) (int, error) {
	_ = data
	if !s.Locked() {
		return 0, ErrNotHeld
	}
	return 1, nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func addSaturating(a, b int64) int64 {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt64
	case b < 0 && sum > a:
		return math.MinInt64
	}
	return sum
}

func subSaturating(a, b int64) int64 {
	diff := a - b
	switch {
	case b < 0 && diff < a:
		return math.MaxInt64
	case b > 0 && diff > a:
		return math.MinInt64
	}
	return diff
}
