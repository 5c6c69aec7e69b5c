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

// Package driver captures the platform driver listing verbatim.
//
// Windows runs driverquery, Linux runs lspci -v. The output is not parsed.
// Other platforms report "not supported on this platform" without running
// anything, and a failing command reports only "Failed to fetch drivers
// information".
package driver

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/command"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
)

// Placeholder messages reported instead of facts.
const (
	MessageUnsupported = "not supported on this platform"
	MessageFailed      = "Failed to fetch drivers information"
)

// Command is an external driver listing invocation.
type Command struct {
	Name string
	Args []string
}

// CommandFor returns the driver listing command for family, or false when
// the platform has none.
func CommandFor(family platform.Family) (Command, bool) {
	switch family {
	case platform.FamilyWindows:
		return Command{Name: "driverquery"}, true
	case platform.FamilyLinux:
		return Command{Name: "lspci", Args: []string{"-v"}}, true
	default:
		return Command{}, false
	}
}

// Collector runs the driver listing command for its platform.
type Collector struct {
	Family platform.Family
	Runner command.Runner
}

// NewCollector returns a Collector for family.
func NewCollector(family platform.Family, runner command.Runner) *Collector {
	return &Collector{Family: family, Runner: runner}
}

// Collect returns *facts.DriverFacts holding the raw command output.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting driver facts", slog.String("family", c.Family.String()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd, ok := CommandFor(c.Family)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedPlatform, MessageUnsupported)
	}

	runner := c.Runner
	if runner == nil {
		runner = command.NewExecRunner(0)
	}

	out, err := runner.Run(ctx, cmd.Name, cmd.Args...)
	if err != nil {
		slog.Debug("driver listing failed", slog.String("command", cmd.Name), slog.String("error", err.Error()))
		code := errors.CodeOf(err)
		if code != errors.ErrCodeTimeout {
			code = errors.ErrCodeCommandFailed
		}
		return nil, errors.Wrap(code, MessageFailed, err)
	}

	return &facts.DriverFacts{Output: string(out)}, nil
}
