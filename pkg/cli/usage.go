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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/usage"
)

// sampler is the usage source, replaced in tests.
var sampler interface {
	Sample(ctx context.Context) (*usage.Usage, error)
} = usage.NewSampler(version)

func usageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "usage",
		EnableShellCompletion: true,
		Usage:                 "Sample current CPU and RAM utilization",
		Description: `Report the CPU model, CPU utilization averaged over a one second
window, and the share of RAM in use.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.UsageHandlerTimeout)
			defer cancel()

			u, err := sampler.Sample(ctx)
			if err != nil {
				return fmt.Errorf("usage: %w", err)
			}
			return writeDoc(ctx, cmd, u)
		},
	}
}
