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

package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/server"
	"github.com/NVIDIA/hwfacts/pkg/snapshotter"
	"github.com/NVIDIA/hwfacts/pkg/usage"
)

const name = "hwfacts"

// Config selects where and as what version the API is served.
type Config struct {
	Version string
	Address string
	Port    int

	// Snapshot overrides the snapshot source, mainly for tests.
	Snapshot SnapshotSource
	// Usage overrides the usage source, mainly for tests.
	Usage UsageSource
}

// NewHandlers returns handlers backed by the host collectors unless cfg
// overrides them.
func NewHandlers(cfg Config) *Handlers {
	h := &Handlers{
		Name:     name,
		Version:  cfg.Version,
		Snapshot: cfg.Snapshot,
		Usage:    cfg.Usage,
	}
	if h.Snapshot == nil {
		h.Snapshot = &snapshotter.NodeSnapshotter{Version: cfg.Version}
	}
	if h.Usage == nil {
		h.Usage = usage.NewSampler(cfg.Version)
	}
	return h
}

// Serve starts the API server and blocks until ctx is done or a shutdown
// signal arrives.
func Serve(ctx context.Context, cfg Config) error {
	h := NewHandlers(cfg)

	s := server.New(
		server.WithName(name),
		server.WithVersion(cfg.Version),
		server.WithAddress(cfg.Address),
		server.WithPort(cfg.Port),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
