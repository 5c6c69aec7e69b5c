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

package cpu

import (
	"context"
	"log/slog"
	"strings"

	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/klauspost/cpuid/v2"
	gopsutil "github.com/shirou/gopsutil/v4/cpu"
	"k8s.io/utils/ptr"
)

// BrandUnavailable is reported when the CPU identification primitive
// returns no brand string.
const BrandUnavailable = "N/A"

// Source supplies raw processor figures.
type Source interface {
	// Brand returns the CPU brand string, or "" when unknown.
	Brand() string
	// Counts returns the number of logical or physical cores.
	Counts(ctx context.Context, logical bool) (int, error)
	// FrequencyMHz returns the current clock, or 0 when unknown.
	FrequencyMHz(ctx context.Context) (float64, error)
}

// Collector reports processor identity and topology.
type Collector struct {
	Source Source
}

// NewCollector returns a Collector backed by cpuid and gopsutil.
func NewCollector() *Collector {
	return &Collector{Source: HostSource{}}
}

// Collect returns *facts.CPUFacts. Only a failure to count logical cores is
// an error; physical cores and frequency are optional.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting cpu facts")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := c.Source
	if src == nil {
		src = HostSource{}
	}

	cf := &facts.CPUFacts{Brand: strings.TrimSpace(src.Brand())}
	if cf.Brand == "" {
		cf.Brand = BrandUnavailable
	}

	logical, err := src.Counts(ctx, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, "failed to count logical cores", err)
	}
	cf.LogicalCores = max(logical, 0)

	physical, err := src.Counts(ctx, false)
	switch {
	case err != nil:
		slog.Debug("physical core count unavailable", slog.String("error", err.Error()))
	case physical > 0:
		cf.PhysicalCores = ptr.To(physical)
	}

	mhz, err := src.FrequencyMHz(ctx)
	switch {
	case err != nil:
		slog.Debug("cpu frequency unavailable", slog.String("error", err.Error()))
	case mhz > 0:
		cf.FrequencyMHz = ptr.To(mhz)
	}

	return cf, nil
}

// HostSource reads the running host.
type HostSource struct{}

// Brand returns the brand string from CPUID.
func (HostSource) Brand() string {
	return cpuid.CPU.BrandName
}

// Counts delegates to gopsutil.
func (HostSource) Counts(ctx context.Context, logical bool) (int, error) {
	return gopsutil.CountsWithContext(ctx, logical)
}

// FrequencyMHz returns the clock of the first reported processor.
func (HostSource) FrequencyMHz(ctx context.Context) (float64, error) {
	infos, err := gopsutil.InfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if len(infos) == 0 {
		return 0, nil
	}
	return infos[0].Mhz, nil
}
