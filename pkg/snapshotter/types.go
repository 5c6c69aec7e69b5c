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
	"io"

	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/header"
	"github.com/NVIDIA/hwfacts/pkg/report"
)

// FullAPIVersion is the schema version written into every snapshot header.
const FullAPIVersion = "hwfacts.nvidia.com/v1alpha1"

// Snapshotter defines the interface for collecting hardware snapshots.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot creates a new Snapshot instance with an initialized Reports slice.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Reports: make([]facts.Report, 0, len(facts.Types)),
	}
}

// Snapshot is the assembled outcome of one collection run: one report per
// category, in facts.Types order. It is never cached; every run re-collects.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Reports holds one entry per category, populated or placeholder.
	Reports []facts.Report `json:"reports" yaml:"reports"`
}

// Report returns the report for t and true, or a zero Report and false.
func (s *Snapshot) Report(t facts.Type) (facts.Report, bool) {
	for _, r := range s.Reports {
		if r.Type == t {
			return r, true
		}
	}
	return facts.Report{}, false
}

// Degraded returns the categories that carry an error placeholder.
func (s *Snapshot) Degraded() []facts.Type {
	var out []facts.Type
	for _, r := range s.Reports {
		if !r.OK() {
			out = append(out, r.Type)
		}
	}
	return out
}

// RenderText writes the console report of the snapshot.
func (s *Snapshot) RenderText(w io.Writer) error {
	return report.Write(w, s.Reports)
}
