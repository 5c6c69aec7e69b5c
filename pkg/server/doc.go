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

// Package server provides the HTTP server infrastructure behind `hwfacts serve`.
//
// The server is route-agnostic: API handlers are registered by the caller
// (see pkg/api) and wrapped in a shared middleware chain. System endpoints
// are registered directly.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("hwfacts"),
//	    server.WithVersion(version),
//	    server.WithPort(8080),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/snapshot": snapshotHandler,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or SIGINT/SIGTERM arrives, then shuts
// down gracefully within Config.ShutdownTimeout.
//
// # Middleware
//
// Registered handlers run behind, outermost first:
//
//   - metrics: request count, latency and in-flight gauge
//   - version: API version negotiation via Accept
//     (application/vnd.nvidia.hwfacts.v1+json), echoed in X-API-Version
//   - request ID: X-Request-Id is kept when it is a UUID, otherwise generated
//   - panic recovery: 500 with an ErrorResponse
//   - rate limit: token bucket (golang.org/x/time/rate), 429 with Retry-After
//   - logging: debug-level request start and completion
//
// # System Endpoints
//
//	GET /health   liveness
//	GET /ready    readiness (503 until the listener is up)
//	GET /metrics  Prometheus exposition
//
// # Errors
//
// Every API error is an ErrorResponse:
//
//	{
//	  "code": "TIMEOUT",
//	  "message": "collection timed out",
//	  "details": {"error": "context deadline exceeded"},
//	  "requestId": "7c5e...",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr derives the status and retryability from the code of a
// pkg/errors StructuredError.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment;
// options passed to New override them.
package server
