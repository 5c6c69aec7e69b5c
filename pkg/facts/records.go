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

// PlatformFacts identifies the operating system and host.
// Fields that cannot be determined hold "Unknown".
type PlatformFacts struct {
	System       string `json:"system" yaml:"system"`
	NodeName     string `json:"nodeName" yaml:"nodeName"`
	Release      string `json:"release" yaml:"release"`
	Version      string `json:"version" yaml:"version"`
	Machine      string `json:"machine" yaml:"machine"`
	Processor    string `json:"processor" yaml:"processor"`
	Architecture string `json:"architecture" yaml:"architecture"`
}

// FactType implements Facts.
func (*PlatformFacts) FactType() Type { return TypePlatform }

// CPUFacts describes the processor. PhysicalCores and FrequencyMHz are nil
// when the host does not report them.
type CPUFacts struct {
	Brand         string   `json:"brand" yaml:"brand"`
	LogicalCores  int      `json:"logicalCores" yaml:"logicalCores"`
	PhysicalCores *int     `json:"physicalCores,omitempty" yaml:"physicalCores,omitempty"`
	FrequencyMHz  *float64 `json:"frequencyMHz,omitempty" yaml:"frequencyMHz,omitempty"`
}

// FactType implements Facts.
func (*CPUFacts) FactType() Type { return TypeCPU }

// MemoryFacts holds physical memory figures in bytes.
type MemoryFacts struct {
	TotalBytes     uint64 `json:"totalBytes" yaml:"totalBytes"`
	AvailableBytes uint64 `json:"availableBytes" yaml:"availableBytes"`
	UsedBytes      uint64 `json:"usedBytes" yaml:"usedBytes"`
}

// FactType implements Facts.
func (*MemoryFacts) FactType() Type { return TypeMemory }

// Clamp caps used and available at total. Some kernels briefly report
// figures above total while memory is being reclaimed.
func (m *MemoryFacts) Clamp() {
	if m.UsedBytes > m.TotalBytes {
		m.UsedBytes = m.TotalBytes
	}
	if m.AvailableBytes > m.TotalBytes {
		m.AvailableBytes = m.TotalBytes
	}
}

// DiskPartitionFacts describes one mounted filesystem.
type DiskPartitionFacts struct {
	Device     string `json:"device" yaml:"device"`
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	FSType     string `json:"fstype" yaml:"fstype"`
	TotalBytes uint64 `json:"totalBytes" yaml:"totalBytes"`
	UsedBytes  uint64 `json:"usedBytes" yaml:"usedBytes"`
	FreeBytes  uint64 `json:"freeBytes" yaml:"freeBytes"`
}

// DiskFacts lists partitions in enumeration order. Partitions whose usage
// could not be read are absent.
type DiskFacts struct {
	Partitions []DiskPartitionFacts `json:"partitions" yaml:"partitions"`
}

// FactType implements Facts.
func (*DiskFacts) FactType() Type { return TypeDisk }

// GPU sources.
const (
	GPUSourceSMI   = "nvidia-smi"
	GPUSourceWMI   = "wmi"
	GPUSourceLSPCI = "lspci"
)

// GPUEntry is one detected graphics adapter. Only the fields the source
// reports are set.
type GPUEntry struct {
	Source        string   `json:"source" yaml:"source"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	DriverVersion string   `json:"driverVersion,omitempty" yaml:"driverVersion,omitempty"`
	MemoryTotalMB *float64 `json:"memoryTotalMB,omitempty" yaml:"memoryTotalMB,omitempty"`
	MemoryFreeMB  *float64 `json:"memoryFreeMB,omitempty" yaml:"memoryFreeMB,omitempty"`
	MemoryUsedMB  *float64 `json:"memoryUsedMB,omitempty" yaml:"memoryUsedMB,omitempty"`
	TemperatureC  *float64 `json:"temperatureC,omitempty" yaml:"temperatureC,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// GPUFacts lists detected adapters plus status notes explaining which
// sources were tried.
type GPUFacts struct {
	Devices []GPUEntry `json:"devices,omitempty" yaml:"devices,omitempty"`
	Notes   []string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// FactType implements Facts.
func (*GPUFacts) FactType() Type { return TypeGPU }

// Board identifies a baseboard.
type Board struct {
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`
	Product      string `json:"product" yaml:"product"`
	SerialNumber string `json:"serialNumber" yaml:"serialNumber"`
	Version      string `json:"version" yaml:"version"`
}

// BIOS identifies system firmware.
type BIOS struct {
	Vendor      string `json:"vendor" yaml:"vendor"`
	Version     string `json:"version" yaml:"version"`
	ReleaseDate string `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
}

// MotherboardFacts holds baseboard identity and, where the source offers it,
// firmware identity.
type MotherboardFacts struct {
	Boards []Board `json:"boards" yaml:"boards"`
	BIOS   []BIOS  `json:"bios,omitempty" yaml:"bios,omitempty"`
}

// FactType implements Facts.
func (*MotherboardFacts) FactType() Type { return TypeMotherboard }

// DriverFacts is the verbatim output of the platform driver listing command.
type DriverFacts struct {
	Output string `json:"output" yaml:"output"`
}

// FactType implements Facts.
func (*DriverFacts) FactType() Type { return TypeDriver }
