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

// Package cpu collects processor brand, core counts and clock frequency.
//
// The brand string comes from CPUID (github.com/klauspost/cpuid/v2) and is
// "N/A" when the processor does not report one. Core counts and frequency
// come from gopsutil. Physical cores and frequency are optional: a host
// that cannot report them yields nil fields, never zero.
package cpu
