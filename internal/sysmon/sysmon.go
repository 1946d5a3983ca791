// Package sysmon samples host CPU and memory usage for the verbose
// execution banner.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	// Available is false when neither value could be read.
	Available bool
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since the previous call). Fields that cannot be
// read stay zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
		s.Available = true
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.Available = true
	}
	return s
}

// String renders the snapshot as "CPU 12.5%, memory 40.1%".
func (s Stats) String() string {
	if !s.Available {
		return "unavailable"
	}
	return fmt.Sprintf("CPU %.1f%%, memory %.1f%%", s.CPUPercent, s.MemPercent)
}
