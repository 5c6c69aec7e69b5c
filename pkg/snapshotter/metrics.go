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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot collection metrics
	snapshotCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hwfacts_snapshot_collection_duration_seconds",
			Help:    "Time taken to assemble a complete hardware snapshot",
			Buckets: []float64{0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	snapshotCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwfacts_snapshot_collection_total",
			Help: "Total number of snapshots assembled",
		},
		[]string{"status"}, // complete or degraded
	)

	snapshotCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hwfacts_snapshot_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"},
	)

	snapshotCollectorErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwfacts_snapshot_collector_errors_total",
			Help: "Categories reported as placeholders, by collector and error code",
		},
		[]string{"collector", "code"},
	)
)
