package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3 // calculators disagree in verify mode
	ExitErrorConfig   = 4
	ExitErrorBusy     = 5 // the device is held by another session
	ExitErrorCanceled = 130
)

// ConfigError reports an invalid flag, environment variable or combination
// of settings.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError is a failed seek or read of the device. Offset is the
// position that was being reached or computed.
type CalculationError struct {
	Offset int64
	Cause  error
}

func (e CalculationError) Error() string {
	return fmt.Sprintf("reading offset %d: %v", e.Offset, e.Cause)
}

// Unwrap exposes Cause to errors.Is and errors.As.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError is an operation, such as a graceful shutdown, that exceeded
// its limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %s", e.Operation, e.Limit)
}

// ValidationError rejects one request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from a canceled or expired
// context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit code. Contention is checked
// first so that a busy device wrapped in any other type still exits with
// ExitErrorBusy.
func ExitCode(err error) int {
	var configErr ConfigError
	var timeoutErr TimeoutError
	switch {
	case err == nil:
		return ExitSuccess
	case IsBusy(err):
		return ExitErrorBusy
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// busy is implemented by errors reporting that an exclusive resource is
// held by someone else.
type busy interface {
	Busy() bool
}

// IsBusy reports whether any error in err's chain reports contention.
func IsBusy(err error) bool {
	var b busy
	return errors.As(err, &b) && b.Busy()
}
