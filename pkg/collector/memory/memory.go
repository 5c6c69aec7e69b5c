// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package memory collects physical memory totals.
package memory

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/shirou/gopsutil/v4/mem"
)

// Collector reports total, available and used physical memory.
type Collector struct {
	VirtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// NewCollector returns a Collector backed by gopsutil.
func NewCollector() *Collector {
	return &Collector{VirtualMemory: mem.VirtualMemoryWithContext}
}

// Collect returns *facts.MemoryFacts with used and available clamped to total.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting memory facts")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	read := c.VirtualMemory
	if read == nil {
		read = mem.VirtualMemoryWithContext
	}

	vm, err := read(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, "failed to read virtual memory statistics", err)
	}

	mf := &facts.MemoryFacts{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
		UsedBytes:      vm.Used,
	}
	if mf.UsedBytes > mf.TotalBytes || mf.AvailableBytes > mf.TotalBytes {
		slog.Warn("memory statistics exceed total, clamping",
			slog.Uint64("total", vm.Total),
			slog.Uint64("available", vm.Available),
			slog.Uint64("used", vm.Used))
	}
	mf.Clamp()

	return mf, nil
}
