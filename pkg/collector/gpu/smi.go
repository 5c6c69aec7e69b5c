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

package gpu

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/hwfacts/pkg/command"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
	"k8s.io/utils/ptr"
)

const nvidiaSMICommand = "nvidia-smi"

var nvidiaSMIArgs = []string{"-q", "-x"}

// NVSMIDevice is the subset of `nvidia-smi -q -x` output hwfacts reads.
type NVSMIDevice struct {
	Timestamp     string     `xml:"timestamp"`
	DriverVersion string     `xml:"driver_version"`
	CudaVersion   string     `xml:"cuda_version"`
	AttachedGPUs  string     `xml:"attached_gpus"`
	GPUs          []NVSMIGPU `xml:"gpu"`
}

// NVSMIGPU is one <gpu> element.
type NVSMIGPU struct {
	ID                  string `xml:"id,attr"`
	ProductName         string `xml:"product_name"`
	ProductArchitecture string `xml:"product_architecture"`
	Serial              string `xml:"serial"`
	UUID                string `xml:"uuid"`
	FbMemoryUsage       struct {
		Total    string `xml:"total"`
		Reserved string `xml:"reserved"`
		Used     string `xml:"used"`
		Free     string `xml:"free"`
	} `xml:"fb_memory_usage"`
	Temperature struct {
		GPUTemp string `xml:"gpu_temp"`
	} `xml:"temperature"`
}

// ProbeSMI reports whether nvidia-smi is on PATH.
func ProbeSMI() platform.Capability {
	if command.LookPath(nvidiaSMICommand) {
		return platform.Available()
	}
	return platform.Unavailable(NoteNotInstalled)
}

func parseSMIDevice(data []byte) (*NVSMIDevice, error) {
	var d NVSMIDevice
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse nvidia-smi output: %w", err)
	}
	return &d, nil
}

// querySMI runs nvidia-smi and converts every reported GPU to an entry.
func querySMI(ctx context.Context, runner command.Runner) ([]facts.GPUEntry, error) {
	out, err := runner.Run(ctx, nvidiaSMICommand, nvidiaSMIArgs...)
	if err != nil {
		return nil, err
	}

	d, err := parseSMIDevice(out)
	if err != nil {
		return nil, err
	}

	entries := make([]facts.GPUEntry, 0, len(d.GPUs))
	for _, g := range d.GPUs {
		entries = append(entries, facts.GPUEntry{
			Source:        facts.GPUSourceSMI,
			Name:          strings.TrimSpace(g.ProductName),
			DriverVersion: strings.TrimSpace(d.DriverVersion),
			MemoryTotalMB: quantity(g.FbMemoryUsage.Total),
			MemoryFreeMB:  quantity(g.FbMemoryUsage.Free),
			MemoryUsedMB:  quantity(g.FbMemoryUsage.Used),
			TemperatureC:  quantity(g.Temperature.GPUTemp),
		})
	}
	return entries, nil
}

// quantity parses values such as "81559 MiB" or "34 C". Unsupported
// readings ("N/A", "[N/A]", "") yield nil.
func quantity(s string) *float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil
	}
	return ptr.To(v)
}
