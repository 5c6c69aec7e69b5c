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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hwfacts/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve snapshots and usage over HTTP",
		Description: `Start the hwfacts HTTP server:

  GET /              usage page
  GET /v1/snapshot   hardware snapshot (JSON, or ?format=text)
  GET /v1/usage      utilization sample
  GET /health, /ready, /metrics

Runs until interrupted.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port (default: $PORT or 8080)",
				Sources: cli.EnvVars(envPrefix + "PORT"),
			},
			&cli.StringFlag{
				Name:    "address",
				Usage:   "listen address",
				Sources: cli.EnvVars(envPrefix + "ADDRESS"),
			},
			commandTimeoutFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Config{
				Version:  version,
				Address:  cmd.String("address"),
				Port:     int(cmd.Int("port")),
				Snapshot: newSnapshotter(cmd),
				Usage:    sampler,
			})
		},
	}
}
