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

package gpu

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/hwfacts/pkg/collector/mgmt"
	"github.com/NVIDIA/hwfacts/pkg/command"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
	"k8s.io/utils/ptr"
)

// DefaultLSPCIPath is where the Linux fallback expects lspci.
const DefaultLSPCIPath = "/usr/bin/lspci"

const bytesPerMB = 1 << 20

// Fallback is a platform-specific secondary GPU source.
type Fallback interface {
	Name() string
	Detect(ctx context.Context) ([]facts.GPUEntry, error)
}

// WMIFallback lists Win32_VideoController records.
type WMIFallback struct {
	Querier    mgmt.Querier
	Capability platform.Capability
}

// Name implements Fallback.
func (f *WMIFallback) Name() string { return facts.GPUSourceWMI }

// Detect implements Fallback.
func (f *WMIFallback) Detect(ctx context.Context) ([]facts.GPUEntry, error) {
	if !f.Capability.IsAvailable() || f.Querier == nil {
		return nil, errors.New(errors.ErrCodeDependencyMissing, f.Capability.Reason())
	}

	controllers, err := f.Querier.VideoControllers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]facts.GPUEntry, 0, len(controllers))
	for _, vc := range controllers {
		e := facts.GPUEntry{
			Source:        facts.GPUSourceWMI,
			Name:          strings.TrimSpace(vc.Name),
			DriverVersion: strings.TrimSpace(vc.DriverVersion),
		}
		if vc.AdapterRAMBytes != nil {
			e.MemoryTotalMB = ptr.To(float64(*vc.AdapterRAMBytes) / bytesPerMB)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LSPCIFallback keeps the display controller lines of lspci.
type LSPCIFallback struct {
	Path   string
	Runner command.Runner
	Stat   func(name string) (fs.FileInfo, error)
}

// NewLSPCIFallback returns a fallback that runs lspci from DefaultLSPCIPath.
func NewLSPCIFallback(runner command.Runner) *LSPCIFallback {
	return &LSPCIFallback{Path: DefaultLSPCIPath, Runner: runner, Stat: os.Stat}
}

// Name implements Fallback.
func (f *LSPCIFallback) Name() string { return facts.GPUSourceLSPCI }

// Detect implements Fallback. A missing lspci yields no entries and no error.
func (f *LSPCIFallback) Detect(ctx context.Context) ([]facts.GPUEntry, error) {
	stat := f.Stat
	if stat == nil {
		stat = os.Stat
	}
	if _, err := stat(f.Path); err != nil {
		slog.Debug("lspci not present", slog.String("path", f.Path), slog.String("error", err.Error()))
		return nil, nil
	}

	out, err := f.Runner.Run(ctx, f.Path)
	if err != nil {
		return nil, err
	}

	var entries []facts.GPUEntry
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(strings.ToLower(line), "vga") {
			continue
		}
		entries = append(entries, facts.GPUEntry{Source: facts.GPUSourceLSPCI, Description: line})
	}
	return entries, nil
}
