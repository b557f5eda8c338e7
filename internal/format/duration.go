package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// Durations under a millisecond are shown in microseconds, durations under a
// second in milliseconds, and anything longer with time.Duration's own
// representation.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatNanoseconds renders a duration as an integer count of nanoseconds,
// the unit of the exerciser's timing file.
func FormatNanoseconds(d time.Duration) string {
	return fmt.Sprintf("%d", d.Nanoseconds())
}
