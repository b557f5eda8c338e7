// Package apperrors defines structured application error types and the
// process exit codes, allowing a clear distinction between error classes
// (configuration, calculation, device contention, timeouts) while carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types that carry a cause implement Unwrap() to support errors.Is()
// and errors.As().
package apperrors
