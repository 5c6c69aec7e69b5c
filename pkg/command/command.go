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

// Package command runs external diagnostic tools with a bounded timeout.
package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/errors"
)

// Runner executes a command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec, each bounded by Timeout.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner returns an ExecRunner. A non-positive timeout selects
// defaults.CommandTimeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}
	return &ExecRunner{Timeout: timeout}
}

// Run executes name with args. Errors are *errors.StructuredError:
// ErrCodeDependencyMissing when the binary cannot be found, ErrCodeTimeout
// when Timeout elapses, ErrCodeCommandFailed on a non-zero exit.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaults.CommandTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	slog.Debug("running command", slog.String("command", cmdline), slog.Duration("timeout", timeout))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	errCtx := map[string]any{"command": cmdline}
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		errCtx["timeout"] = timeout.String()
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
			fmt.Sprintf("%s did not finish within %s", name, timeout), ctx.Err(), errCtx)
	case stderrors.Is(err, exec.ErrNotFound):
		return nil, errors.WrapWithContext(errors.ErrCodeDependencyMissing,
			fmt.Sprintf("%s not installed", name), err, errCtx)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		errCtx["exitCode"] = exitErr.ExitCode()
		errCtx["stderr"] = strings.TrimSpace(stderr.String())
	}
	return nil, errors.WrapWithContext(errors.ErrCodeCommandFailed,
		fmt.Sprintf("%s failed", name), err, errCtx)
}

// LookPath reports whether name resolves to an executable on PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RunnerFunc adapts an ordinary function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f(ctx, name, args...).
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}
