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

package usage

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestSysfsBattery(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		want    *float64
		wantErr bool
	}{
		{
			name: "battery after mains",
			fsys: fstest.MapFS{
				"AC/type":        {Data: []byte("Mains\n")},
				"AC/online":      {Data: []byte("1\n")},
				"BAT0/type":      {Data: []byte("Battery\n")},
				"BAT0/capacity":  {Data: []byte("76\n")},
				"hidpp/type":     {Data: []byte("Battery")},
				"hidpp/capacity": {Data: []byte("5")},
			},
			want: ptr.To(76.0),
		},
		{
			name: "mains only",
			fsys: fstest.MapFS{
				"AC/type": {Data: []byte("Mains\n")},
			},
		},
		{
			name: "empty class",
			fsys: fstest.MapFS{},
		},
		{
			name: "missing capacity",
			fsys: fstest.MapFS{
				"BAT0/type": {Data: []byte("Battery\n")},
			},
			wantErr: true,
		},
		{
			name: "garbled capacity",
			fsys: fstest.MapFS{
				"BAT0/type":     {Data: []byte("Battery\n")},
				"BAT0/capacity": {Data: []byte("full\n")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sysfsBattery(tt.fsys)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsage_BatteryOmittedWhenAbsent(t *testing.T) {
	b, err := json.Marshal(&Usage{CPUModel: "x"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "batteryPercent")

	b, err = json.Marshal(&Usage{CPUModel: "x", BatteryPercent: ptr.To(50.0)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"batteryPercent":50`)
}
