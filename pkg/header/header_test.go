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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindSnapshot, true},
		{KindUsage, true},
		{Kind("Inventory"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestHeader_Init(t *testing.T) {
	h := Header{Metadata: map[string]string{"stale": "value"}}
	h.Init(KindSnapshot, "hwfacts.nvidia.com/v1alpha1", "1.0.0")

	assert.Equal(t, KindSnapshot, h.Kind)
	assert.Equal(t, "hwfacts.nvidia.com/v1alpha1", h.APIVersion)
	assert.Equal(t, "1.0.0", h.Metadata[MetadataVersion])
	assert.NotContains(t, h.Metadata, "stale")
	assert.WithinDuration(t, time.Now(), h.Timestamp(), time.Minute)
}

func TestHeader_InitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindUsage, "v1", "")

	assert.NotContains(t, h.Metadata, MetadataVersion)
	assert.Contains(t, h.Metadata, MetadataTimestamp)
}

func TestHeader_SetMetadata(t *testing.T) {
	var h Header
	h.SetMetadata(MetadataHostname, "gpu-node-1")
	h.SetMetadata("empty", "")

	assert.Equal(t, map[string]string{MetadataHostname: "gpu-node-1"}, h.Metadata)
}

func TestHeader_TimestampUnset(t *testing.T) {
	var h Header
	assert.True(t, h.Timestamp().IsZero())
}
