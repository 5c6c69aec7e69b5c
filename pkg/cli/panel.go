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
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hwfacts/pkg/logging"
	"github.com/NVIDIA/hwfacts/pkg/panel"
	"github.com/NVIDIA/hwfacts/pkg/report"
)

func panelCmd() *cli.Command {
	return &cli.Command{
		Name:                  "panel",
		EnableShellCompletion: true,
		Usage:                 "Show the hardware report in a scrollable terminal panel",
		Description: `Open a full-screen view of the text report.

  up/down, pgup/pgdown, home/end   scroll
  r                                re-collect every category
  q                                quit`,
		Flags: []cli.Flag{
			commandTimeoutFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// log records would corrupt the alternate screen
			slog.SetDefault(logging.NewStructuredLoggerTo(io.Discard, name, version, cmd.String("log-level")))

			ns := newSnapshotter(cmd)
			return panel.Run(ctx, func(ctx context.Context) string {
				return report.String(ns.Snapshot(ctx).Reports)
			})
		},
	}
}
