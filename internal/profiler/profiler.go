// Package profiler measures allocations for operations expected to be
// allocation-free once their inputs are already prepared. It is trimmed to
// that single concern rather than a general-purpose memory-snapshot
// profiler with continuous sampling.
package profiler

import (
	"fmt"
	"runtime"
)

// AllocationTracker brackets an operation with forced GCs and reports the
// net heap growth and allocation count between NewAllocationTracker and
// Stop via a
// before/after runtime.MemStats delta.
type AllocationTracker struct {
	name       string
	startStats runtime.MemStats
}

// NewAllocationTracker starts tracking allocations under name.
func NewAllocationTracker(name string) *AllocationTracker {
	tracker := &AllocationTracker{name: name}
	runtime.GC()
	runtime.ReadMemStats(&tracker.startStats)
	return tracker
}

// Stop stops tracking and returns the allocation delta since NewAllocationTracker.
func (at *AllocationTracker) Stop() AllocationStats {
	var end runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&end)

	return AllocationStats{
		Name:             at.name,
		AllocatedBytes:   end.TotalAlloc - at.startStats.TotalAlloc,
		AllocatedObjects: end.Mallocs - at.startStats.Mallocs,
		FreedObjects:     end.Frees - at.startStats.Frees,
		NetObjects:       (end.Mallocs - at.startStats.Mallocs) - (end.Frees - at.startStats.Frees),
		HeapGrowth:       int64(end.HeapAlloc) - int64(at.startStats.HeapAlloc),
	}
}

// AllocationStats summarizes one AllocationTracker run.
type AllocationStats struct {
	Name             string
	AllocatedBytes   uint64
	AllocatedObjects uint64
	FreedObjects     uint64
	NetObjects       uint64
	HeapGrowth       int64
}

func (as AllocationStats) String() string {
	return fmt.Sprintf("%s: %d bytes, %d objects allocated, heap growth %d",
		as.Name, as.AllocatedBytes, as.AllocatedObjects, as.HeapGrowth)
}
