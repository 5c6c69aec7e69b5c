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

package api

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/serializer"
	"github.com/NVIDIA/hwfacts/pkg/server"
	"github.com/NVIDIA/hwfacts/pkg/snapshotter"
	"github.com/NVIDIA/hwfacts/pkg/usage"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"percent": usage.Percent}).
		ParseFS(templates, "templates/index.html"),
)

// SnapshotSource assembles a fresh hardware snapshot.
type SnapshotSource interface {
	Snapshot(ctx context.Context) *snapshotter.Snapshot
}

// UsageSource takes a utilization sample.
type UsageSource interface {
	Sample(ctx context.Context) (*usage.Usage, error)
}

// Handlers serves the hwfacts API routes.
type Handlers struct {
	Name     string
	Version  string
	Snapshot SnapshotSource
	Usage    UsageSource

	SnapshotTimeout time.Duration
	UsageTimeout    time.Duration
}

// Routes returns the API routes keyed by path.
func (h *Handlers) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/":            h.HandleIndex,
		"/v1/snapshot": h.HandleSnapshot,
		"/v1/usage":    h.HandleUsage,
	}
}

// HandleSnapshot handles GET /v1/snapshot[?format=json|text].
// Every request re-collects; collector failures are part of the body.
func (h *Handlers) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), orDefault(h.SnapshotTimeout, defaults.SnapshotHandlerTimeout))
	defer cancel()

	snap := h.Snapshot.Snapshot(ctx)
	slog.Debug("snapshot served",
		slog.String("requestID", server.RequestID(r.Context())),
		slog.Int("degraded", len(snap.Degraded())))

	respond(w, format, snap)
}

// HandleUsage handles GET /v1/usage[?format=json|text].
func (h *Handlers) HandleUsage(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	u, err := h.sample(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to sample usage", nil)
		return
	}

	respond(w, format, u)
}

// HandleIndex renders the usage page at "/". Other unmatched paths are 404.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"route not found", false, map[string]any{"path": r.URL.Path})
		return
	}
	if !allowGet(w, r) {
		return
	}

	u, err := h.sample(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to sample usage", nil)
		return
	}

	var buf bytes.Buffer
	data := struct {
		Name    string
		Version string
		Usage   *usage.Usage
	}{h.Name, h.Version, u}
	if err := indexTemplate.Execute(&buf, data); err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to render page", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

func (h *Handlers) sample(r *http.Request) (*usage.Usage, error) {
	ctx, cancel := context.WithTimeout(r.Context(), orDefault(h.UsageTimeout, defaults.UsageHandlerTimeout))
	defer cancel()
	return h.Usage.Sample(ctx)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func parseFormat(w http.ResponseWriter, r *http.Request) (serializer.Format, bool) {
	f := serializer.Format(r.URL.Query().Get("format"))
	switch f {
	case "":
		return serializer.FormatJSON, true
	case serializer.FormatJSON, serializer.FormatText:
		return f, true
	default:
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"unsupported format", false, map[string]any{
				"format":    string(f),
				"supported": []string{string(serializer.FormatJSON), string(serializer.FormatText)},
			})
		return "", false
	}
}

func respond(w http.ResponseWriter, format serializer.Format, data any) {
	if format == serializer.FormatText {
		serializer.RespondText(w, http.StatusOK, data)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, data)
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
