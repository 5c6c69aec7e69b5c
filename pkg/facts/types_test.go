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

package facts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		got, ok := ParseType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}

	_, ok := ParseType("Battery")
	assert.False(t, ok)
}

func TestTypesOrder(t *testing.T) {
	assert.Equal(t, []Type{
		TypePlatform, TypeCPU, TypeMemory, TypeDisk, TypeGPU, TypeMotherboard, TypeDriver,
	}, Types)
}

func TestFactType(t *testing.T) {
	tests := []struct {
		facts Facts
		want  Type
	}{
		{&PlatformFacts{}, TypePlatform},
		{&CPUFacts{}, TypeCPU},
		{&MemoryFacts{}, TypeMemory},
		{&DiskFacts{}, TypeDisk},
		{&GPUFacts{}, TypeGPU},
		{&MotherboardFacts{}, TypeMotherboard},
		{&DriverFacts{}, TypeDriver},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.facts.FactType())
		})
	}
}

func TestMemoryFacts_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   MemoryFacts
		want MemoryFacts
	}{
		{
			name: "consistent values unchanged",
			in:   MemoryFacts{TotalBytes: 100, AvailableBytes: 40, UsedBytes: 60},
			want: MemoryFacts{TotalBytes: 100, AvailableBytes: 40, UsedBytes: 60},
		},
		{
			name: "used above total",
			in:   MemoryFacts{TotalBytes: 100, AvailableBytes: 10, UsedBytes: 120},
			want: MemoryFacts{TotalBytes: 100, AvailableBytes: 10, UsedBytes: 100},
		},
		{
			name: "available above total",
			in:   MemoryFacts{TotalBytes: 100, AvailableBytes: 150, UsedBytes: 0},
			want: MemoryFacts{TotalBytes: 100, AvailableBytes: 100, UsedBytes: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.in
			m.Clamp()
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestCollectorError(t *testing.T) {
	err := &CollectorError{Category: TypeMotherboard, Code: "UNSUPPORTED_PLATFORM", Message: "requires Windows or Linux"}
	assert.Equal(t, "Motherboard: requires Windows or Linux", err.Error())
}

func TestReport_OK(t *testing.T) {
	assert.True(t, Report{Type: TypeDriver, Facts: &DriverFacts{Output: "x"}}.OK())
	assert.False(t, Report{Type: TypeDriver, Error: &CollectorError{Category: TypeDriver}}.OK())
	assert.False(t, Report{Type: TypeDriver}.OK())
}

func TestCPUFacts_OptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(&CPUFacts{Brand: "N/A", LogicalCores: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"brand":"N/A","logicalCores":4}`, string(data))

	data, err = json.Marshal(&CPUFacts{Brand: "Xeon", LogicalCores: 8, PhysicalCores: ptr.To(4), FrequencyMHz: ptr.To(2400.0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"brand":"Xeon","logicalCores":8,"physicalCores":4,"frequencyMHz":2400}`, string(data))
}

func TestGPUEntry_UnsupportedFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(GPUEntry{Source: GPUSourceLSPCI, Description: "00:02.0 VGA compatible controller: Intel"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"lspci","description":"00:02.0 VGA compatible controller: Intel"}`, string(data))
}
