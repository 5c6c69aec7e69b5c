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

package report

import (
	"bytes"
	"testing"

	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestGiB(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.00 GB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{16 * 1024 * 1024 * 1024, "16.00 GB"},
		{1610612736, "1.50 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GiB(tt.in))
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "System Information", Title(facts.TypePlatform))
	assert.Equal(t, "Driver Info", Title(facts.TypeDriver))
	assert.Equal(t, "Battery", Title(facts.Type("Battery")))
}

func TestWrite_SectionOrderAndSeparators(t *testing.T) {
	reports := []facts.Report{
		{Type: facts.TypePlatform, Facts: &facts.PlatformFacts{System: "Linux", NodeName: "node-1", Architecture: "64bit ELF"}},
		{Type: facts.TypeMemory, Facts: &facts.MemoryFacts{TotalBytes: 2 * bytesPerGiB, AvailableBytes: bytesPerGiB, UsedBytes: bytesPerGiB}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reports))

	want := "=== System Information ===\n" +
		"System: Linux\n" +
		"Node Name: node-1\n" +
		"Release: \n" +
		"Version: \n" +
		"Machine: \n" +
		"Processor: \n" +
		"Architecture: 64bit ELF\n" +
		"\n" +
		"=== Memory Info ===\n" +
		"Total: 2.00 GB\n" +
		"Available: 1.00 GB\n" +
		"Used: 1.00 GB\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_CPUOptionalLines(t *testing.T) {
	tests := []struct {
		name    string
		cpu     *facts.CPUFacts
		want    []string
		notWant []string
	}{
		{
			name:    "frequency omitted",
			cpu:     &facts.CPUFacts{Brand: "N/A", LogicalCores: 4, PhysicalCores: ptr.To(2)},
			want:    []string{"Brand: N/A", "Cores (logical): 4", "Cores (physical): 2"},
			notWant: []string{"Frequency"},
		},
		{
			name:    "all fields",
			cpu:     &facts.CPUFacts{Brand: "AMD EPYC", LogicalCores: 64, PhysicalCores: ptr.To(32), FrequencyMHz: ptr.To(2450.5)},
			want:    []string{"Frequency: 2450.50 MHz"},
			notWant: nil,
		},
		{
			name:    "physical cores unknown",
			cpu:     &facts.CPUFacts{Brand: "ARM", LogicalCores: 8},
			notWant: []string{"Cores (physical)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := String([]facts.Report{{Type: facts.TypeCPU, Facts: tt.cpu}})
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestWrite_Disk(t *testing.T) {
	out := String([]facts.Report{{
		Type: facts.TypeDisk,
		Facts: &facts.DiskFacts{Partitions: []facts.DiskPartitionFacts{
			{Device: "/dev/sda1", Mountpoint: "/", FSType: "ext4", TotalBytes: 10 * bytesPerGiB, UsedBytes: 4 * bytesPerGiB, FreeBytes: 6 * bytesPerGiB},
		}},
	}})

	assert.Contains(t, out, "Device: /dev/sda1\n  Mountpoint: /\n  File system type: ext4\n")
	assert.Contains(t, out, "  Total Size: 10.00 GB\n  Used: 4.00 GB\n  Free: 6.00 GB\n")
}

func TestWrite_GPU(t *testing.T) {
	g := &facts.GPUFacts{
		Notes: []string{"nvidia-smi not installed"},
		Devices: []facts.GPUEntry{
			{Source: facts.GPUSourceSMI, Name: "NVIDIA H100", DriverVersion: "570.1", MemoryTotalMB: ptr.To(81559.0), TemperatureC: ptr.To(34.0)},
			{Source: facts.GPUSourceWMI, Name: "Intel UHD", MemoryTotalMB: ptr.To(1024.0)},
			{Source: facts.GPUSourceLSPCI, Description: "00:02.0 VGA compatible controller: Intel"},
		},
	}
	out := String([]facts.Report{{Type: facts.TypeGPU, Facts: g}})

	assert.Contains(t, out, "nvidia-smi not installed\n")
	assert.Contains(t, out, "GPU 0: NVIDIA H100\n  Driver Version: 570.1\n  Memory Total: 81559 MB\n  Temperature: 34 C\n")
	assert.NotContains(t, out, "Memory Free")
	assert.Contains(t, out, "GPU: Intel UHD\n  Adapter RAM: 1.00 GB\n")
	assert.Contains(t, out, "00:02.0 VGA compatible controller: Intel\n")
}

func TestWrite_Motherboard(t *testing.T) {
	m := &facts.MotherboardFacts{
		Boards: []facts.Board{{Manufacturer: "ACME", Product: "X1", SerialNumber: "S1", Version: "1.0"}},
		BIOS:   []facts.BIOS{{Vendor: "AMI", Version: "F20"}},
	}
	out := String([]facts.Report{{Type: facts.TypeMotherboard, Facts: m}})

	assert.Contains(t, out, "Manufacturer: ACME\nProduct: X1\nSerial Number: S1\nVersion: 1.0\n")
	assert.Contains(t, out, "BIOS Vendor: AMI\nBIOS Version: F20\n")
	assert.NotContains(t, out, "Release Date")
}

func TestWrite_PlaceholderAndDriver(t *testing.T) {
	reports := []facts.Report{
		{Type: facts.TypeMotherboard, Error: &facts.CollectorError{Category: facts.TypeMotherboard, Code: "NOT_AVAILABLE", Message: "DMI information not available"}},
		{Type: facts.TypeDriver, Facts: &facts.DriverFacts{Output: "line1\nline2\n\n"}},
	}
	out := String(reports)

	assert.Equal(t, "=== Motherboard Info ===\nDMI information not available\n\n=== Driver Info ===\nline1\nline2\n", out)
}
