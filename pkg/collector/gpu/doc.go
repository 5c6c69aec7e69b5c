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

// Package gpu collects graphics adapter inventory.
//
// Sources are tried in a fixed order:
//
//  1. nvidia-smi (`nvidia-smi -q -x`), parsed from XML. Each GPU yields
//     name, driver version, framebuffer total/free/used MB and temperature.
//     Readings nvidia-smi marks "N/A" are omitted.
//  2. Windows: Win32_VideoController through the management interface
//     (name, adapter RAM, driver version).
//  3. Linux: /usr/bin/lspci, keeping lines that mention "vga"
//     (case-insensitive) verbatim.
//
// If nvidia-smi runs and reports no GPUs the collector stops with the note
// "No GPUs detected" and does not try the platform source. If nvidia-smi is
// missing or fails, a note is recorded and the platform source is tried.
// When nothing produced an entry the note "Could not detect GPU
// information." is added.
//
// The collector never returns an error for a failing source; every
// failure is described in GPUFacts.Notes.
//
// # nvidia-smi Dependency
//
// Availability is probed once with ProbeSMI when the collector factory is
// built:
//
//	which nvidia-smi
//	# Output: /usr/bin/nvidia-smi
//
// Execution is bounded by the runner timeout (defaults.CommandTimeout).
//
// # Containerized Collection
//
// When running in containers, ensure the NVIDIA Container Toolkit is
// installed and the container has GPU access (--gpus all).
package gpu
