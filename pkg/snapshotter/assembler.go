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
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/collector"
	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/header"
)

const (
	statusComplete = "complete"
	statusDegraded = "degraded"
)

// Assembler runs every collector once, in facts.Types order, and merges the
// outcomes into a Snapshot. It has no error path.
type Assembler struct {
	// Factory supplies the collectors. If nil, the default factory is used.
	Factory collector.Factory

	// Version is recorded in the snapshot metadata.
	Version string

	// CollectorTimeout bounds each collector. Zero means defaults.CollectorTimeout.
	CollectorTimeout time.Duration
}

// Assemble collects all categories sequentially. A failing, timed-out, or
// panicking collector becomes a placeholder for its category; the others run.
func (a *Assembler) Assemble(ctx context.Context) *Snapshot {
	if a.Factory == nil {
		a.Factory = collector.NewDefaultFactory()
	}
	timeout := a.CollectorTimeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}

	slog.Debug("starting hardware snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, FullAPIVersion, a.Version)

	for _, t := range facts.Types {
		snap.Reports = append(snap.Reports, a.run(ctx, t, timeout))
	}

	if r, ok := snap.Report(facts.TypePlatform); ok && r.OK() {
		if pf, ok := r.Facts.(*facts.PlatformFacts); ok {
			snap.SetMetadata(header.MetadataHostname, pf.NodeName)
		}
	}

	degraded := snap.Degraded()
	if len(degraded) > 0 {
		snapshotCollectionTotal.WithLabelValues(statusDegraded).Inc()
	} else {
		snapshotCollectionTotal.WithLabelValues(statusComplete).Inc()
	}

	slog.Debug("snapshot collection complete",
		slog.Int("reports", len(snap.Reports)),
		slog.Int("degraded", len(degraded)))

	return snap
}

func (a *Assembler) run(ctx context.Context, t facts.Type, timeout time.Duration) (report facts.Report) {
	report.Type = t

	collectorStart := time.Now()
	defer func() {
		snapshotCollectorDuration.WithLabelValues(t.String()).Observe(time.Since(collectorStart).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("collector panicked",
				slog.String("collector", t.String()),
				slog.Any("panic", r))
			report.Facts = nil
			report.Error = placeholder(t, errors.New(errors.ErrCodeInternal, fmt.Sprintf("collector panicked: %v", r)))
		}
	}()

	c := collector.Create(a.Factory, t)
	if c == nil {
		report.Error = placeholder(t, errors.New(errors.ErrCodeInternal, "no collector registered"))
		return report
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("collecting", slog.String("collector", t.String()))
	f, err := c.Collect(cctx)
	switch {
	case err != nil:
		report.Error = placeholder(t, err)
	case f == nil:
		report.Error = placeholder(t, errors.New(errors.ErrCodeNotAvailable, "no data"))
	default:
		report.Facts = f
	}
	return report
}

// placeholder converts a collector error into the category's CollectorError.
func placeholder(t facts.Type, err error) *facts.CollectorError {
	code := errors.CodeOf(err)
	msg := errors.MessageOf(err)
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		switch {
		case stderrors.Is(err, context.DeadlineExceeded):
			code, msg = errors.ErrCodeTimeout, "collection timed out"
		case stderrors.Is(err, context.Canceled):
			code, msg = errors.ErrCodeTimeout, "collection canceled"
		}
	}

	slog.Warn("collector degraded",
		slog.String("collector", t.String()),
		slog.String("code", string(code)),
		slog.String("error", err.Error()))
	snapshotCollectorErrors.WithLabelValues(t.String(), string(code)).Inc()

	return &facts.CollectorError{
		Category: t,
		Code:     string(code),
		Message:  msg,
	}
}
