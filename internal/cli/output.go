// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Write* functions write data to files on the filesystem, creating
//     missing directories.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibdrv/internal/client"
	"github.com/agbru/fibdrv/internal/format"
	"github.com/agbru/fibdrv/internal/ui"
)

// WriteTimingsFile writes the read durations of an exerciser run to path,
// one nanosecond count per line. An empty path writes nothing.
//
// Parameters:
//   - path: The destination file.
//   - timings: The durations, in sweep order.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteTimingsFile(path string, timings []time.Duration) (err error) {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create timing file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close timing file: %w", cerr)
		}
	}()

	return client.WriteTimings(file, timings)
}

// DisplayRunSummary prints the totals of an exerciser run and its slowest
// read.
func DisplayRunSummary(out io.Writer, name string, report client.Report, elapsed time.Duration) {
	fmt.Fprintf(out, "\n%s%s%s: %d writes, %d reads in %s\n",
		ui.ColorBold(), name, ui.ColorReset(),
		report.Writes, len(report.Readings), format.FormatExecutionDuration(elapsed))

	var slowest *client.Reading
	for i := range report.Readings {
		if slowest == nil || report.Readings[i].Elapsed > slowest.Elapsed {
			slowest = &report.Readings[i]
		}
	}
	if slowest != nil {
		fmt.Fprintf(out, "Slowest read: offset %d (%d digits) in %s%s%s\n",
			slowest.Offset, len(slowest.Value),
			ui.ColorYellow(), format.FormatExecutionDuration(slowest.Elapsed), ui.ColorReset())
	}
}

// DisplayTimingsSaved confirms where timings were written.
func DisplayTimingsSaved(out io.Writer, path string, count int) {
	fmt.Fprintf(out, "%sSaved %d timings to %s%s%s\n", ui.ColorGreen(), count, ui.ColorCyan(), path, ui.ColorReset())
}
