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

// Package logging configures log/slog for hwfacts.
//
// Records are JSON on stderr and carry the module and version of the
// binary. Debug records also carry their source location.
//
// # Log Levels
//
// Names are case-insensitive: debug, info (default), warn or warning, error.
// An empty level falls back to LOG_LEVEL.
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("hwfacts", version, cmd.String("log-level"))
//
//	slog.Debug("collecting", "category", "GPU")
//	slog.Warn("category degraded", "category", "Disk", "code", "PERMISSION_DENIED")
//
// The interactive panel owns the terminal, so it discards records:
//
//	slog.SetDefault(logging.NewStructuredLoggerTo(io.Discard, "hwfacts", version, "info"))
//
// http.Server errors are routed through slog with NewLogLogger.
//
// # Output Format
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"WARN","msg":"collector failed",
//	 "module":"hwfacts","version":"v1.0.0","category":"GPU","code":"DEPENDENCY_MISSING"}
package logging
