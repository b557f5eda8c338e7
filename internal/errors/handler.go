package apperrors

import (
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used when printing errors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// HandleCalculationError prints a one-line description of err to out and
// returns the matching exit code. A nil err prints nothing and returns
// ExitSuccess. colors may be nil.
//
// Parameters:
//   - err: The error to report.
//   - duration: How long the operation ran before failing; zero omits it.
//   - out: The writer for the message.
//   - colors: Escape codes for the message, or nil for plain text.
//
// Returns:
//   - int: The exit code, as computed by ExitCode.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}
	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorBusy:
		fmt.Fprintf(out, "%sDevice busy%s: %v\n", colors.Yellow(), colors.Reset(), err)
	case ExitErrorTimeout:
		fmt.Fprintf(out, "%sTimed out%s%s: %v\n", colors.Red(), suffix, colors.Reset(), err)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled%s%s\n", colors.Yellow(), suffix, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error%s: %v\n", colors.Red(), colors.Reset(), err)
	default:
		fmt.Fprintf(out, "%sError%s%s: %v\n", colors.Red(), suffix, colors.Reset(), err)
	}
	return code
}
