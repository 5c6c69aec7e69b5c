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

// Package facts defines the typed records produced by hardware collectors.
//
// Each of the seven categories (Platform, CPU, Memory, Disk, GPU,
// Motherboard, Driver) has its own record type implementing Facts. A
// Report pairs a category with either its record or a CollectorError
// placeholder; a snapshot is the seven Reports in Types order.
//
// Optional values are pointers (CPUFacts.PhysicalCores, GPUEntry.TemperatureC,
// ...) so "not reported" is distinguishable from zero and is omitted when
// serialized.
package facts
