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

// Package mgmt queries the Windows management interface (WMI) for the
// hardware classes hwfacts reports: video controllers, baseboards and BIOS.
//
// On every other OS New returns an unavailable capability and a nil Querier.
package mgmt

import (
	"context"
)

// MessageNotInstalled is the reason reported when the management interface
// cannot be used on this host.
const MessageNotInstalled = "WMI module not installed"

// VideoController is one Win32_VideoController record.
type VideoController struct {
	Name            string
	AdapterRAMBytes *uint64
	DriverVersion   string
}

// BaseBoard is one Win32_BaseBoard record.
type BaseBoard struct {
	Manufacturer string
	Product      string
	SerialNumber string
	Version      string
}

// BIOS is one Win32_BIOS record.
type BIOS struct {
	Manufacturer string
	Version      string
	ReleaseDate  string
}

// Querier reads management-interface classes.
type Querier interface {
	VideoControllers(ctx context.Context) ([]VideoController, error)
	BaseBoards(ctx context.Context) ([]BaseBoard, error)
	BIOS(ctx context.Context) ([]BIOS, error)
}
