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

// Package header provides the common document header for hwfacts output.
//
// Snapshots and usage samples both start with a Header so consumers can tell
// what they are reading before decoding the rest:
//
//	kind: Snapshot
//	apiVersion: hwfacts.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindSnapshot, "hwfacts.nvidia.com/v1alpha1", version)
//
// Extra metadata is added after Init:
//
//	h.SetMetadata(header.MetadataHostname, host)
//
// Timestamps are RFC3339 in UTC.
package header
