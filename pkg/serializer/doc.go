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

// Package serializer writes hwfacts documents in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented
//   - Used by the HTTP API and as the default
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE rows for terminal viewing
//
// Text:
//   - The console report; documents opt in by implementing TextRenderer
//
// # Usage
//
// Write to stdout:
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, snap); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when path is empty or "-":
//
//	s := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if c, ok := s.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//
// HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, snap)
//	serializer.RespondText(w, http.StatusOK, snap)
//
// Both encode into a buffer before writing headers, so an encoding failure
// becomes a 500 rather than a truncated 200.
package serializer
