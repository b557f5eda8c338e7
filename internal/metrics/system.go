package metrics

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemSnapshot holds host-wide usage, both in percent.
type SystemSnapshot struct {
	CPUPercent float64
	MemPercent float64
}

// SystemCollector samples host CPU and memory usage.
type SystemCollector struct{}

// NewSystemCollector creates a new system collector.
func NewSystemCollector() *SystemCollector {
	return &SystemCollector{}
}

// Snapshot reads current host usage. CPU usage is the delta since the
// previous call, so the first reading may be zero. Fields stay zero when the
// platform does not report them.
func (sc *SystemCollector) Snapshot() SystemSnapshot {
	var s SystemSnapshot
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}
