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

// Package usage samples live CPU and RAM utilization and, where present, the
// battery charge.
package usage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/header"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// APIVersion is the schema version written into usage headers.
const APIVersion = "hwfacts.nvidia.com/v1alpha1"

// UnknownCPUModel is reported when the processor brand cannot be read.
const UnknownCPUModel = "Unknown CPU Model"

// Usage is one utilization sample.
type Usage struct {
	header.Header `json:",inline" yaml:",inline"`

	CPUModel   string  `json:"cpuModel" yaml:"cpuModel"`
	CPUPercent float64 `json:"cpuPercent" yaml:"cpuPercent"`
	RAMPercent float64 `json:"ramPercent" yaml:"ramPercent"`

	// BatteryPercent is nil on machines without a battery.
	BatteryPercent *float64 `json:"batteryPercent,omitempty" yaml:"batteryPercent,omitempty"`
}

// RenderText writes the sample as labeled lines, with a Battery line only
// when a battery was found.
func (u *Usage) RenderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "CPU Model: %s\nCPU Usage: %s\nRAM Usage: %s\n",
		u.CPUModel, Percent(u.CPUPercent), Percent(u.RAMPercent)); err != nil {
		return err
	}
	if u.BatteryPercent == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "Battery: %s\n", Percent(*u.BatteryPercent))
	return err
}

// Percent formats a utilization figure, e.g. "12.5%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Sampler takes utilization samples. Zero-valued fields use host defaults,
// except Battery, which is skipped when nil.
type Sampler struct {
	// Version is recorded in the sample metadata.
	Version string

	// Interval is how long CPU utilization is averaged over.
	Interval time.Duration

	CPUPercent    func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	VirtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	Brand         func() string

	// Battery returns nil, nil when the machine has no battery.
	Battery func(ctx context.Context) (*float64, error)
}

// NewSampler returns a Sampler backed by gopsutil and cpuid.
func NewSampler(version string) *Sampler {
	return &Sampler{
		Version:       version,
		Interval:      defaults.CPUUsageSampleInterval,
		CPUPercent:    cpu.PercentWithContext,
		VirtualMemory: mem.VirtualMemoryWithContext,
		Brand:         func() string { return cpuid.CPU.BrandName },
		Battery:       hostBattery,
	}
}

// Sample blocks for Interval while CPU utilization is measured.
func (s *Sampler) Sample(ctx context.Context) (*Usage, error) {
	interval := s.Interval
	if interval <= 0 {
		interval = defaults.CPUUsageSampleInterval
	}
	percent := s.CPUPercent
	if percent == nil {
		percent = cpu.PercentWithContext
	}
	vmem := s.VirtualMemory
	if vmem == nil {
		vmem = mem.VirtualMemoryWithContext
	}

	slog.Debug("sampling utilization", slog.Duration("interval", interval))

	cpus, err := percent(ctx, interval, false)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "cpu sampling interrupted", err)
		}
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, "failed to sample cpu utilization", err)
	}
	if len(cpus) == 0 {
		return nil, errors.New(errors.ErrCodeNotAvailable, "no cpu utilization reported")
	}

	vm, err := vmem(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, "failed to read virtual memory statistics", err)
	}

	u := &Usage{
		CPUModel:   UnknownCPUModel,
		CPUPercent: cpus[0],
		RAMPercent: vm.UsedPercent,
	}
	if s.Brand != nil {
		if b := strings.TrimSpace(s.Brand()); b != "" {
			u.CPUModel = b
		}
	}
	if s.Battery != nil {
		if pct, err := s.Battery(ctx); err != nil {
			slog.Debug("battery charge unavailable", slog.String("error", err.Error()))
		} else {
			u.BatteryPercent = pct
		}
	}
	u.Init(header.KindUsage, APIVersion, s.Version)

	return u, nil
}
