package device

import "errors"

// busyError reports Busy so that callers can classify contention without
// importing this package.
type busyError struct{}

func (busyError) Error() string { return "device: busy" }
func (busyError) Busy() bool    { return true }

var (
	// ErrBusy is returned by Acquire and Open when the session is already held.
	ErrBusy error = busyError{}
	// ErrReleaseWithoutAcquire is returned when releasing a session that is
	// not held, or closing a handle twice. The session state is unchanged.
	ErrReleaseWithoutAcquire = errors.New("device: release without acquire")
	// ErrNotHeld is returned by operations that require a held session, and by
	// every operation on a closed handle.
	ErrNotHeld = errors.New("device: session not held")
	// ErrInvalidWhence is returned by Seek for an unknown seek mode.
	ErrInvalidWhence = errors.New("device: invalid whence")
)
