package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	cause := errors.New("capacity overflow")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("unknown mode %q", "x"), `unknown mode "x"`},
		{"calculation", CalculationError{Offset: 614, Cause: cause}, "reading offset 614: capacity overflow"},
		{"timeout", TimeoutError{Operation: "shutdown", Limit: 5 * time.Second}, "shutdown did not finish within 5s"},
		{"validation", ValidationError{Field: "offset", Message: "must be an integer"}, "invalid offset: must be an integer"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCalculationError_Unwrap(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("sweep: %w", CalculationError{Offset: 3, Cause: io.ErrUnexpectedEOF})

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should reach the cause")
	}
	var ce CalculationError
	if !errors.As(err, &ce) || ce.Offset != 3 {
		t.Errorf("errors.As = %+v", ce)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "listen on %s", ":8080") != nil {
		t.Error("wrapping nil should return nil")
	}
	base := errors.New("address in use")
	err := WrapError(base, "listen on %s", ":8080")
	if err.Error() != "listen on :8080: address in use" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match its cause")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, true},
		{fmt.Errorf("read: %w", context.DeadlineExceeded), true},
		{errors.New("other"), false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsBusy(t *testing.T) {
	t.Parallel()
	if !IsBusy(fmt.Errorf("open /dev/fibonacci: %w", testBusy{})) {
		t.Error("wrapped contention should be busy")
	}
	if IsBusy(errors.New("held elsewhere")) {
		t.Error("a plain error with the same text is not busy")
	}
	if IsBusy(nil) {
		t.Error("nil is not busy")
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"busy", testBusy{}, ExitErrorBusy},
		{"busy inside calculation", CalculationError{Offset: 1, Cause: testBusy{}}, ExitErrorBusy},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"wrapped config", WrapError(NewConfigError("bad"), "parse"), ExitErrorConfig},
		{"timeout", TimeoutError{Operation: "shutdown"}, ExitErrorTimeout},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", fmt.Errorf("sweep: %w", context.Canceled), ExitErrorCanceled},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodes_Distinct(t *testing.T) {
	t.Parallel()
	codes := []int{ExitSuccess, ExitErrorGeneric, ExitErrorTimeout, ExitErrorMismatch,
		ExitErrorConfig, ExitErrorBusy, ExitErrorCanceled}
	seen := map[int]bool{}
	for _, c := range codes {
		if seen[c] {
			t.Errorf("exit code %d is used twice", c)
		}
		seen[c] = true
	}
	if !strings.Contains(fmt.Sprint(codes), "130") {
		t.Error("cancellation should use the conventional SIGINT code")
	}
}
