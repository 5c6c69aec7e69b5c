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

package defaults

import "time"

// Collector timeouts for fact collection operations.
const (
	// CollectorTimeout bounds a single collector invocation.
	// It must exceed CommandTimeout so command expiry is reported by the
	// collector that ran the command.
	CollectorTimeout = 45 * time.Second

	// CommandTimeout bounds every external query command (nvidia-smi, lspci,
	// driverquery).
	CommandTimeout = 30 * time.Second

	// CPUUsageSampleInterval is the blocking window used to measure CPU usage.
	CPUUsageSampleInterval = 1 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// SnapshotHandlerTimeout is the timeout for snapshot requests.
	// Covers every collector running in sequence.
	SnapshotHandlerTimeout = 5 * time.Minute

	// UsageHandlerTimeout is the timeout for usage requests.
	UsageHandlerTimeout = 10 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Snapshots are slow, so this is sized to SnapshotHandlerTimeout.
	ServerWriteTimeout = SnapshotHandlerTimeout + 10*time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 2 * ServerWriteTimeout

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISnapshotTimeout is the default timeout for snapshot operations.
	CLISnapshotTimeout = 5 * time.Minute

	// PanelRefreshTimeout bounds one refresh of the interactive panel.
	PanelRefreshTimeout = 5 * time.Minute
)
