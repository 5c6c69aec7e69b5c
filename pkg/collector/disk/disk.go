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

// Package disk collects mounted partitions and their usage.
package disk

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/shirou/gopsutil/v4/disk"
)

// Source enumerates partitions and reads their usage.
type Source interface {
	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	Usage(ctx context.Context, mountpoint string) (*disk.UsageStat, error)
}

// Collector reports every readable mounted partition.
type Collector struct {
	Source Source
}

// NewCollector returns a Collector backed by gopsutil.
func NewCollector() *Collector {
	return &Collector{Source: HostSource{}}
}

// Collect returns *facts.DiskFacts in enumeration order. A partition whose
// usage query is denied is dropped without a trace; any other usage error
// drops the partition with a warning. Enumeration warnings that still list
// partitions are logged; only an enumeration that yields nothing is an error.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting disk facts")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := c.Source
	if src == nil {
		src = HostSource{}
	}

	parts, err := src.Partitions(ctx)
	var warnings *disk.Warnings
	if err != nil && len(parts) > 0 && stderrors.As(err, &warnings) {
		// some volumes could not be inspected; keep the ones that were listed
		for _, w := range warnings.List {
			slog.Warn("partial partition enumeration",
				slog.Int("partitions", len(parts)),
				slog.String("warning", w.Error()))
		}
		err = nil
	}
	if err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			return nil, errors.Wrap(errors.ErrCodePermissionDenied, "failed to enumerate partitions", err)
		}
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, "failed to enumerate partitions", err)
	}

	df := &facts.DiskFacts{Partitions: make([]facts.DiskPartitionFacts, 0, len(parts))}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		u, err := src.Usage(ctx, p.Mountpoint)
		if err != nil {
			if stderrors.Is(err, fs.ErrPermission) {
				slog.Debug("skipping partition, access denied", slog.String("mountpoint", p.Mountpoint))
			} else {
				slog.Warn("skipping partition, usage unavailable",
					slog.String("mountpoint", p.Mountpoint),
					slog.String("error", err.Error()))
			}
			continue
		}

		df.Partitions = append(df.Partitions, facts.DiskPartitionFacts{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			FSType:     p.Fstype,
			TotalBytes: u.Total,
			UsedBytes:  u.Used,
			FreeBytes:  u.Free,
		})
	}

	return df, nil
}

// HostSource reads the running host. Only physical partitions are listed.
type HostSource struct{}

// Partitions delegates to gopsutil.
func (HostSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

// Usage delegates to gopsutil.
func (HostSource) Usage(ctx context.Context, mountpoint string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, mountpoint)
}
