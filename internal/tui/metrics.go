package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/fibdrv/internal/format"
	"github.com/agbru/fibdrv/internal/metrics"
)

// StatsModel renders the line under the value: digit count, compute time,
// heap usage and host load.
type StatsModel struct {
	digits  int
	elapsed time.Duration
	mem     metrics.MemorySnapshot
	sys     metrics.SystemSnapshot
}

// SetReading records the last read.
func (s *StatsModel) SetReading(value string, elapsed time.Duration) {
	s.digits = len(value)
	s.elapsed = elapsed
}

// SetSample records runtime and host snapshots.
func (s *StatsModel) SetSample(mem metrics.MemorySnapshot, sys metrics.SystemSnapshot) {
	s.mem = mem
	s.sys = sys
}

// View renders the stats line.
func (s StatsModel) View() string {
	cols := []string{
		formatMetric("digits", fmt.Sprintf("%d", s.digits)),
		formatMetric("compute", format.FormatExecutionDuration(s.elapsed)),
		formatMetric("heap", formatBytes(s.mem.HeapAlloc)),
		formatMetric("gc", fmt.Sprintf("%d", s.mem.NumGC)),
		formatMetric("cpu", fmt.Sprintf("%.0f%%", s.sys.CPUPercent)),
		formatMetric("mem", fmt.Sprintf("%.0f%%", s.sys.MemPercent)),
	}
	return strings.Join(cols, "  ")
}

func formatMetric(label, value string) string {
	return metricLabelStyle.Render(label+":") + " " + metricValueStyle.Render(value)
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
