// Package gopsutil probes host resources through the gopsutil library.
package gopsutil

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
)

// Ensure Probe implements the interface.
var _ driven.ResourceProbe = (*Probe)(nil)

// Probe reads memory availability from the host OS.
type Probe struct{}

// NewProbe creates a new resource probe.
func NewProbe() *Probe {
	return &Probe{}
}

// AvailableMemory returns the bytes of memory currently available,
// as estimated by the OS (free plus reclaimable caches on Linux).
func (p *Probe) AvailableMemory(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read virtual memory: %w", err)
	}
	return vm.Available, nil
}
