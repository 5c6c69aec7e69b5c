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

package snapshotter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/collector"
	"github.com/NVIDIA/hwfacts/pkg/serializer"
)

// NodeSnapshotter assembles a hardware snapshot of the current host and
// serializes it.
type NodeSnapshotter struct {
	// Version is the snapshotter version.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Snapshot assembles a fresh snapshot without serializing it.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) *Snapshot {
	f := n.Factory
	if f == nil {
		f = collector.NewDefaultFactory()
	}
	a := &Assembler{Factory: f, Version: n.Version}
	return a.Assemble(ctx)
}

// Measure assembles a snapshot and serializes it with the configured
// Serializer. Collector failures are reported inside the snapshot; only a
// serialization failure is returned.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap := n.Snapshot(ctx)

	s := n.Serializer
	if s == nil {
		s = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}
