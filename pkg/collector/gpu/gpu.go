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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/command"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
)

// Status notes recorded in facts.GPUFacts.Notes.
const (
	NoteNotInstalled = "nvidia-smi not installed"
	NoteNoGPUs       = "No GPUs detected"
	NoteUndetected   = "Could not detect GPU information."
)

// Collector queries nvidia-smi first and falls back to a platform source.
type Collector struct {
	Runner command.Runner

	// SMI is the nvidia-smi capability probed when the collector was built.
	SMI platform.Capability

	// Fallback is nil on platforms without a secondary source.
	Fallback Fallback
}

// Collect always returns *facts.GPUFacts; source failures become notes.
//
// When nvidia-smi runs and reports zero GPUs the collector stops there:
// the fallback is not consulted.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting gpu facts", slog.String("smi", c.SMI.String()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gf := &facts.GPUFacts{}

	if c.SMI.IsAvailable() && c.Runner != nil {
		devices, err := querySMI(ctx, c.Runner)
		switch {
		case err != nil:
			slog.Warn("nvidia-smi query failed", slog.String("error", err.Error()))
			gf.Notes = append(gf.Notes, fmt.Sprintf("nvidia-smi query failed: %s", errors.MessageOf(err)))
		case len(devices) == 0:
			gf.Notes = append(gf.Notes, NoteNoGPUs)
			return gf, nil
		default:
			gf.Devices = devices
			return gf, nil
		}
	} else {
		reason := c.SMI.Reason()
		if reason == "" {
			reason = NoteNotInstalled
		}
		gf.Notes = append(gf.Notes, reason)
	}

	if c.Fallback != nil {
		entries, err := c.Fallback.Detect(ctx)
		if err != nil {
			slog.Debug("gpu fallback failed", slog.String("source", c.Fallback.Name()), slog.String("error", err.Error()))
			gf.Notes = append(gf.Notes, fmt.Sprintf("%s query failed: %s", c.Fallback.Name(), errors.MessageOf(err)))
		} else {
			gf.Devices = entries
		}
	}

	if len(gf.Devices) == 0 {
		gf.Notes = append(gf.Notes, NoteUndetected)
	}

	return gf, nil
}
