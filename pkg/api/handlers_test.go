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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/header"
	"github.com/NVIDIA/hwfacts/pkg/server"
	"github.com/NVIDIA/hwfacts/pkg/snapshotter"
	"github.com/NVIDIA/hwfacts/pkg/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

type fakeSnapshot struct {
	calls int
}

func (f *fakeSnapshot) Snapshot(ctx context.Context) *snapshotter.Snapshot {
	f.calls++
	s := snapshotter.NewSnapshot()
	s.Init(header.KindSnapshot, snapshotter.FullAPIVersion, "test")
	s.Reports = append(s.Reports, facts.Report{
		Type: facts.TypeCPU,
		Error: &facts.CollectorError{
			Category: facts.TypeCPU,
			Code:     string(errors.ErrCodeNotAvailable),
			Message:  "cpu unreadable",
		},
	})
	return s
}

type fakeUsage struct {
	err     error
	battery *float64
}

func (f *fakeUsage) Sample(ctx context.Context) (*usage.Usage, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := &usage.Usage{CPUModel: "Test CPU <x>", CPUPercent: 12.5, RAMPercent: 40, BatteryPercent: f.battery}
	u.Init(header.KindUsage, usage.APIVersion, "test")
	return u, nil
}

func newTestHandlers(usageErr error) (*Handlers, *fakeSnapshot) {
	snap := &fakeSnapshot{}
	return NewHandlers(Config{
		Version:  "test",
		Snapshot: snap,
		Usage:    &fakeUsage{err: usageErr},
	}), snap
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		contentType string
		contains    string
	}{
		{"default json", "", http.StatusOK, "application/json", `"type": "CPU"`},
		{"explicit json", "?format=json", http.StatusOK, "application/json", `"cpu unreadable"`},
		{"text", "?format=text", http.StatusOK, "text/plain", "=== CPU Info ==="},
		{"unsupported", "?format=xml", http.StatusBadRequest, "application/json", string(errors.ErrCodeInvalidRequest)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandlers(nil)
			req := httptest.NewRequest(http.MethodGet, "/v1/snapshot"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.HandleSnapshot(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestHandleSnapshot_RecollectsPerRequest(t *testing.T) {
	h, snap := newTestHandlers(nil)

	for range 3 {
		rec := httptest.NewRecorder()
		h.HandleSnapshot(rec, httptest.NewRequest(http.MethodGet, "/v1/snapshot", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3, snap.calls)
}

func TestHandlers_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandlers(nil)

	for path, fn := range h.Routes() {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fn(rec, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
			assert.Equal(t, string(errors.ErrCodeMethodNotAllowed), decodeError(t, rec).Code)
		})
	}
}

func TestHandleUsage(t *testing.T) {
	h, _ := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleUsage(rec, httptest.NewRequest(http.MethodGet, "/v1/usage", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var u usage.Usage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "Test CPU <x>", u.CPUModel)
	assert.InDelta(t, 12.5, u.CPUPercent, 0.001)

	rec = httptest.NewRecorder()
	h.HandleUsage(rec, httptest.NewRequest(http.MethodGet, "/v1/usage?format=text", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CPU Model: Test CPU <x>\nCPU Usage: 12.5%\nRAM Usage: 40.0%\n", rec.Body.String())
}

func TestHandleUsage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ErrorCode
	}{
		{"not available", errors.New(errors.ErrCodeNotAvailable, "no cpu"), http.StatusServiceUnavailable, errors.ErrCodeNotAvailable},
		{"timeout", errors.New(errors.ErrCodeTimeout, "interrupted"), http.StatusGatewayTimeout, errors.ErrCodeTimeout},
		{"plain error", assert.AnError, http.StatusInternalServerError, errors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandlers(tt.err)
			rec := httptest.NewRecorder()

			h.HandleUsage(rec, httptest.NewRequest(http.MethodGet, "/v1/usage", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, string(tt.wantCode), decodeError(t, rec).Code)
		})
	}
}

func TestHandleIndex(t *testing.T) {
	h, _ := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Test CPU &lt;x&gt;")
	assert.Contains(t, body, "12.5%")
	assert.Contains(t, body, "40.0%")
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.NotContains(t, body, "Battery")
}

func TestHandleIndex_Battery(t *testing.T) {
	h := NewHandlers(Config{
		Version:  "test",
		Snapshot: &fakeSnapshot{},
		Usage:    &fakeUsage{battery: ptr.To(91.5)},
	})

	rec := httptest.NewRecorder()
	h.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<tr><th>Battery</th><td>91.5%</td></tr>")
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	h, _ := newTestHandlers(nil)

	rec := httptest.NewRecorder()
	h.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, string(errors.ErrCodeNotFound), decodeError(t, rec).Code)
}

func TestHandleIndex_SampleFailure(t *testing.T) {
	h, _ := newTestHandlers(errors.New(errors.ErrCodeNotAvailable, "no cpu"))

	rec := httptest.NewRecorder()
	h.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewHandlers_Defaults(t *testing.T) {
	h := NewHandlers(Config{Version: "v1"})

	assert.Equal(t, "hwfacts", h.Name)
	assert.IsType(t, &snapshotter.NodeSnapshotter{}, h.Snapshot)
	assert.IsType(t, &usage.Sampler{}, h.Usage)
}
