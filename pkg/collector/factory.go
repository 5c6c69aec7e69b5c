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

package collector

import (
	"log/slog"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/collector/board"
	"github.com/NVIDIA/hwfacts/pkg/collector/cpu"
	"github.com/NVIDIA/hwfacts/pkg/collector/disk"
	"github.com/NVIDIA/hwfacts/pkg/collector/driver"
	"github.com/NVIDIA/hwfacts/pkg/collector/gpu"
	"github.com/NVIDIA/hwfacts/pkg/collector/memory"
	"github.com/NVIDIA/hwfacts/pkg/collector/mgmt"
	"github.com/NVIDIA/hwfacts/pkg/collector/system"
	"github.com/NVIDIA/hwfacts/pkg/command"
	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/platform"
)

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithPlatform overrides the detected OS family, e.g. "linux" or "windows".
func WithPlatform(goos string) Option {
	return func(f *DefaultFactory) {
		f.Family = platform.FromGOOS(goos)
	}
}

// WithCommandTimeout bounds every external command run by collectors.
func WithCommandTimeout(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CommandTimeout = d
	}
}

// WithRunner replaces the external command runner.
func WithRunner(r command.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithManagement replaces the management interface probe result.
func WithManagement(q mgmt.Querier, c platform.Capability) Option {
	return func(f *DefaultFactory) {
		f.Management = q
		f.ManagementCapability = c
		f.managementSet = true
	}
}

// WithSMICapability replaces the nvidia-smi probe result.
func WithSMICapability(c platform.Capability) Option {
	return func(f *DefaultFactory) {
		f.SMICapability = c
		f.smiSet = true
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Family         platform.Family
	CommandTimeout time.Duration
	Runner         command.Runner

	Management           mgmt.Querier
	ManagementCapability platform.Capability
	SMICapability        platform.Capability

	managementSet bool
	smiSet        bool
}

// NewDefaultFactory detects the platform and probes optional data sources
// (nvidia-smi, the management interface) exactly once.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Family:         platform.Detect(),
		CommandTimeout: defaults.CommandTimeout,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.Runner == nil {
		f.Runner = command.NewExecRunner(f.CommandTimeout)
	}
	if !f.smiSet {
		f.SMICapability = gpu.ProbeSMI()
	}
	if !f.managementSet {
		if f.Family == platform.FamilyWindows {
			f.Management, f.ManagementCapability = mgmt.New()
		} else {
			f.ManagementCapability = platform.Unavailable(mgmt.MessageNotInstalled)
		}
	}

	slog.Debug("collector factory initialized",
		slog.String("family", f.Family.String()),
		slog.String("smi", f.SMICapability.String()),
		slog.String("management", f.ManagementCapability.String()))

	return f
}

// CreatePlatformCollector creates an OS identity collector.
func (f *DefaultFactory) CreatePlatformCollector() Collector {
	return system.NewCollector(f.Family)
}

// CreateCPUCollector creates a processor collector.
func (f *DefaultFactory) CreateCPUCollector() Collector {
	return cpu.NewCollector()
}

// CreateMemoryCollector creates a physical memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return memory.NewCollector()
}

// CreateDiskCollector creates a partition collector.
func (f *DefaultFactory) CreateDiskCollector() Collector {
	return disk.NewCollector()
}

// CreateGPUCollector creates a GPU collector with the fallback for the platform.
func (f *DefaultFactory) CreateGPUCollector() Collector {
	c := &gpu.Collector{
		Runner: f.Runner,
		SMI:    f.SMICapability,
	}
	switch f.Family {
	case platform.FamilyWindows:
		c.Fallback = &gpu.WMIFallback{Querier: f.Management, Capability: f.ManagementCapability}
	case platform.FamilyLinux:
		c.Fallback = gpu.NewLSPCIFallback(f.Runner)
	}
	return c
}

// CreateMotherboardCollector creates a baseboard and firmware collector.
func (f *DefaultFactory) CreateMotherboardCollector() Collector {
	return board.NewCollector(f.Family, f.Management, f.ManagementCapability)
}

// CreateDriverCollector creates a driver listing collector.
func (f *DefaultFactory) CreateDriverCollector() Collector {
	return driver.NewCollector(f.Family, f.Runner)
}
