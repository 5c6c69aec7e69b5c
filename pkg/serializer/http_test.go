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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type textOnly struct {
	body string
	err  error
}

func (t textOnly) RenderText(w io.Writer) error {
	if t.err != nil {
		return t.err
	}
	_, err := io.WriteString(w, t.body)
	return err
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testData{Message: "success", Code: 200}

	RespondJSON(w, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result testData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"NotFound", http.StatusNotFound},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondJSON(w, tt.statusCode, testData{Message: tt.name, Code: tt.statusCode})
			assert.Equal(t, tt.statusCode, w.Code)
		})
	}
}

func TestRespondJSON_EncodingErrorBuffersBeforeHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON
	RespondJSON(w, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRespondJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, nil)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestRespondText(t *testing.T) {
	t.Run("renderer", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondText(w, http.StatusOK, textOnly{body: "=== CPU Info ===\n"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "=== CPU Info ===\n", w.Body.String())
	})

	t.Run("plain value", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondText(w, http.StatusOK, 42)
		assert.Equal(t, "42\n", w.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondText(w, http.StatusOK, textOnly{err: assert.AnError})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
