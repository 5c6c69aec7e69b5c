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
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hwfacts/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
		Sources: cli.EnvVars(envPrefix + "OUTPUT"),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatText),
		Sources: cli.EnvVars(envPrefix + "FORMAT"),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// newOutput returns the serializer for --format/--output and a func that
// releases it.
func newOutput(cmd *cli.Command) (serializer.Serializer, func(), error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, nil, err
	}

	var s serializer.Serializer = serializer.NewWriter(format, stdout(cmd))
	if path := cmd.String("output"); path != "" {
		s = serializer.NewFileWriterOrStdout(format, path)
	}

	release := func() {
		if c, ok := s.(serializer.Closer); ok {
			_ = c.Close()
		}
	}
	return s, release, nil
}

func writeDoc(ctx context.Context, cmd *cli.Command, doc any) error {
	s, release, err := newOutput(cmd)
	if err != nil {
		return err
	}
	defer release()

	if err := s.Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
