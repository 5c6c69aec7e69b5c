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

package serializer

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// RespondJSON writes data as indented JSON with statusCode.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	respond(w, statusCode, contentTypeJSON, func(b io.Writer) error {
		enc := json.NewEncoder(b)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	})
}

// RespondText writes the text rendering of data with statusCode. Values that
// do not implement TextRenderer are written with %v.
func RespondText(w http.ResponseWriter, statusCode int, data any) {
	respond(w, statusCode, contentTypeText, func(b io.Writer) error {
		return writeText(b, data)
	})
}

// respond renders the body into memory first; a rendering failure becomes a
// 500 instead of a truncated success.
func respond(w http.ResponseWriter, statusCode int, contentType string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("response rendering failed", "contentType", contentType, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}
