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

// Package collector provides the hardware fact collectors and the factory
// that binds them to the host platform.
//
// # Core Interface
//
//	type Collector interface {
//	    Collect(ctx context.Context) (facts.Facts, error)
//	}
//
// A collector owns its failures: it returns either a populated facts record
// or an error (normally an *errors.StructuredError) that the snapshot
// assembler turns into a placeholder for that category. Collectors never
// panic on missing data sources.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithPlatform("linux"),
//	    collector.WithCommandTimeout(10*time.Second),
//	)
//	gpu := factory.CreateGPUCollector()
//
// NewDefaultFactory resolves everything platform-dependent once: the OS
// family, whether nvidia-smi is installed, and whether the Windows
// management interface answers. Each Create method then returns a collector
// already bound to the right strategy.
//
// # Available Collectors
//
//   - collector/system - OS name, hostname, kernel release and version, machine, bitness
//   - collector/cpu - brand string, logical and physical cores, frequency
//   - collector/memory - total, available, used bytes
//   - collector/disk - partitions and usage, skipping unreadable mounts
//   - collector/gpu - nvidia-smi, then WMI (Windows) or lspci (Linux)
//   - collector/board - baseboard and BIOS via WMI (Windows) or DMI sysfs (Linux)
//   - collector/driver - driverquery (Windows) or lspci -v (Linux), verbatim
//
// Supporting packages:
//   - collector/file - attribute file reader with fs.FS support
//   - collector/mgmt - Windows management interface queries
package collector
