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

// Package report renders hardware facts as the human-readable console report.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/NVIDIA/hwfacts/pkg/facts"
)

const bytesPerGiB = 1024 * 1024 * 1024

// Section titles, in report order.
var titles = map[facts.Type]string{
	facts.TypePlatform:    "System Information",
	facts.TypeCPU:         "CPU Info",
	facts.TypeMemory:      "Memory Info",
	facts.TypeDisk:        "Disk Info",
	facts.TypeGPU:         "GPU Info",
	facts.TypeMotherboard: "Motherboard Info",
	facts.TypeDriver:      "Driver Info",
}

// Title returns the section title for t.
func Title(t facts.Type) string {
	if s, ok := titles[t]; ok {
		return s
	}
	return t.String()
}

// GiB formats a byte count in GiB with two decimals.
func GiB(b uint64) string {
	return fmt.Sprintf("%.2f GB", float64(b)/bytesPerGiB)
}

// Write renders reports as titled blocks separated by a blank line.
// A placeholder report renders its message in place of the facts.
func Write(w io.Writer, reports []facts.Report) error {
	bw := bufio.NewWriter(w)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "=== %s ===\n", Title(r.Type))
		if !r.OK() {
			writePlaceholder(bw, r)
			continue
		}
		writeFacts(bw, r.Facts)
	}
	return bw.Flush()
}

// String renders reports into a string.
func String(reports []facts.Report) string {
	var sb strings.Builder
	_ = Write(&sb, reports)
	return sb.String()
}

func writePlaceholder(w io.Writer, r facts.Report) {
	if r.Error == nil {
		fmt.Fprintln(w, "No data")
		return
	}
	fmt.Fprintln(w, r.Error.Message)
}

func writeFacts(w io.Writer, f facts.Facts) {
	switch v := f.(type) {
	case *facts.PlatformFacts:
		writePlatform(w, v)
	case *facts.CPUFacts:
		writeCPU(w, v)
	case *facts.MemoryFacts:
		writeMemory(w, v)
	case *facts.DiskFacts:
		writeDisk(w, v)
	case *facts.GPUFacts:
		writeGPU(w, v)
	case *facts.MotherboardFacts:
		writeMotherboard(w, v)
	case *facts.DriverFacts:
		writeDriver(w, v)
	default:
		fmt.Fprintf(w, "%v\n", v)
	}
}

func writePlatform(w io.Writer, p *facts.PlatformFacts) {
	fmt.Fprintf(w, "System: %s\n", p.System)
	fmt.Fprintf(w, "Node Name: %s\n", p.NodeName)
	fmt.Fprintf(w, "Release: %s\n", p.Release)
	fmt.Fprintf(w, "Version: %s\n", p.Version)
	fmt.Fprintf(w, "Machine: %s\n", p.Machine)
	fmt.Fprintf(w, "Processor: %s\n", p.Processor)
	fmt.Fprintf(w, "Architecture: %s\n", p.Architecture)
}

func writeCPU(w io.Writer, c *facts.CPUFacts) {
	fmt.Fprintf(w, "Brand: %s\n", c.Brand)
	fmt.Fprintf(w, "Cores (logical): %d\n", c.LogicalCores)
	if c.PhysicalCores != nil {
		fmt.Fprintf(w, "Cores (physical): %d\n", *c.PhysicalCores)
	}
	if c.FrequencyMHz != nil {
		fmt.Fprintf(w, "Frequency: %.2f MHz\n", *c.FrequencyMHz)
	}
}

func writeMemory(w io.Writer, m *facts.MemoryFacts) {
	fmt.Fprintf(w, "Total: %s\n", GiB(m.TotalBytes))
	fmt.Fprintf(w, "Available: %s\n", GiB(m.AvailableBytes))
	fmt.Fprintf(w, "Used: %s\n", GiB(m.UsedBytes))
}

func writeDisk(w io.Writer, d *facts.DiskFacts) {
	for _, p := range d.Partitions {
		fmt.Fprintf(w, "Device: %s\n", p.Device)
		fmt.Fprintf(w, "  Mountpoint: %s\n", p.Mountpoint)
		fmt.Fprintf(w, "  File system type: %s\n", p.FSType)
		fmt.Fprintf(w, "  Total Size: %s\n", GiB(p.TotalBytes))
		fmt.Fprintf(w, "  Used: %s\n", GiB(p.UsedBytes))
		fmt.Fprintf(w, "  Free: %s\n", GiB(p.FreeBytes))
	}
}

func writeGPU(w io.Writer, g *facts.GPUFacts) {
	for _, n := range g.Notes {
		fmt.Fprintln(w, n)
	}
	for i, d := range g.Devices {
		switch d.Source {
		case facts.GPUSourceLSPCI:
			fmt.Fprintln(w, d.Description)
		case facts.GPUSourceWMI:
			fmt.Fprintf(w, "GPU: %s\n", d.Name)
			if d.MemoryTotalMB != nil {
				fmt.Fprintf(w, "  Adapter RAM: %.2f GB\n", *d.MemoryTotalMB/1024)
			}
			if d.DriverVersion != "" {
				fmt.Fprintf(w, "  Driver Version: %s\n", d.DriverVersion)
			}
		default:
			fmt.Fprintf(w, "GPU %d: %s\n", i, d.Name)
			if d.DriverVersion != "" {
				fmt.Fprintf(w, "  Driver Version: %s\n", d.DriverVersion)
			}
			writeMB(w, "Memory Total", d.MemoryTotalMB)
			writeMB(w, "Memory Free", d.MemoryFreeMB)
			writeMB(w, "Memory Used", d.MemoryUsedMB)
			if d.TemperatureC != nil {
				fmt.Fprintf(w, "  Temperature: %.0f C\n", *d.TemperatureC)
			}
		}
	}
}

func writeMB(w io.Writer, label string, v *float64) {
	if v != nil {
		fmt.Fprintf(w, "  %s: %.0f MB\n", label, *v)
	}
}

func writeMotherboard(w io.Writer, m *facts.MotherboardFacts) {
	for _, b := range m.Boards {
		fmt.Fprintf(w, "Manufacturer: %s\n", b.Manufacturer)
		fmt.Fprintf(w, "Product: %s\n", b.Product)
		fmt.Fprintf(w, "Serial Number: %s\n", b.SerialNumber)
		fmt.Fprintf(w, "Version: %s\n", b.Version)
	}
	for _, b := range m.BIOS {
		fmt.Fprintf(w, "BIOS Vendor: %s\n", b.Vendor)
		fmt.Fprintf(w, "BIOS Version: %s\n", b.Version)
		if b.ReleaseDate != "" {
			fmt.Fprintf(w, "BIOS Release Date: %s\n", b.ReleaseDate)
		}
	}
}

func writeDriver(w io.Writer, d *facts.DriverFacts) {
	out := strings.TrimRight(d.Output, "\n")
	if out != "" {
		fmt.Fprintln(w, out)
	}
}
