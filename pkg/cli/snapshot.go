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

package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hwfacts/pkg/collector"
	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/snapshotter"
)

// newFactory builds the collector factory for the running host.
var newFactory = func(cmd *cli.Command) collector.Factory {
	return collector.NewDefaultFactory(
		collector.WithPlatform(runtime.GOOS),
		collector.WithCommandTimeout(cmd.Duration("command-timeout")),
	)
}

func commandTimeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:    "command-timeout",
		Usage:   "timeout for each external query command (nvidia-smi, lspci, ...)",
		Value:   defaults.CommandTimeout,
		Sources: cli.EnvVars(envPrefix + "COMMAND_TIMEOUT"),
	}
}

func newSnapshotter(cmd *cli.Command) *snapshotter.NodeSnapshotter {
	return &snapshotter.NodeSnapshotter{
		Version: version,
		Factory: newFactory(cmd),
	}
}

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Collect a hardware snapshot",
		Description: `Collect every hardware category once:
  - Platform (OS, kernel, architecture, hostname)
  - CPU (model, cores, frequency)
  - Memory (total, available, used)
  - Disk (partitions and their usage)
  - GPU (nvidia-smi, with a per-OS fallback)
  - Motherboard (baseboard and BIOS)
  - Driver (installed drivers listing)

A category that cannot be collected is reported with its error; the
command still succeeds. The default output is the text report.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
			commandTimeoutFlag(),
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for the whole collection",
				Value:   defaults.CLISnapshotTimeout,
				Sources: cli.EnvVars(envPrefix + "TIMEOUT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, release, err := newOutput(cmd)
			if err != nil {
				return err
			}
			defer release()

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			ns := newSnapshotter(cmd)
			ns.Serializer = s

			if err := ns.Measure(ctx); err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}
			return nil
		},
	}
}
