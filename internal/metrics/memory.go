// Package metrics samples runtime and host resource usage for the
// interactive browser.
package metrics

import "runtime"

// MemorySnapshot is a runtime memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64
	HeapObjects uint64
	NumGC       uint32
	Goroutines  int
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot stops the world briefly to read runtime.MemStats.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapObjects: m.HeapObjects,
		NumGC:       m.NumGC,
		Goroutines:  runtime.NumGoroutine(),
	}
}
