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

// Package api wires the hwfacts HTTP routes into pkg/server.
//
// # Endpoints
//
//	GET /                            usage page (CPU model, CPU and RAM utilization)
//	GET /v1/snapshot[?format=text]   full hardware snapshot, re-collected per request
//	GET /v1/usage[?format=text]      one utilization sample (blocks ~1s)
//
// System endpoints (/health, /ready, /metrics) come from pkg/server.
//
// A snapshot request never fails because of a collector: categories that
// could not be collected carry an error placeholder in the body. A usage
// request that cannot sample returns an ErrorResponse.
//
// # Usage
//
//	if err := api.Serve(ctx, api.Config{Version: version, Port: 8080}); err != nil {
//	    log.Fatal(err)
//	}
package api
