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

// Package platform resolves the host OS family and describes optional
// data-source capabilities.
package platform

import (
	"runtime"
	"strings"
)

// Family groups operating systems by which data sources they offer.
type Family string

const (
	// FamilyWindows hosts offer the management interface (WMI) and driverquery.
	FamilyWindows Family = "Windows"
	// FamilyLinux hosts offer sysfs firmware tables and lspci.
	FamilyLinux Family = "Linux"
	// FamilyOther covers every other OS, including macOS and the BSDs.
	FamilyOther Family = "Other"
)

// String returns the string representation of the Family.
func (f Family) String() string {
	return string(f)
}

// FromGOOS maps a GOOS value (or a user-supplied platform name) to a Family.
// Matching is case-insensitive; anything unrecognized is FamilyOther.
func FromGOOS(goos string) Family {
	switch strings.ToLower(strings.TrimSpace(goos)) {
	case "windows":
		return FamilyWindows
	case "linux":
		return FamilyLinux
	default:
		return FamilyOther
	}
}

// Detect returns the Family of the running process.
func Detect() Family {
	return FromGOOS(runtime.GOOS)
}

// Capability is the result of probing an optional data source once, at
// construction time.
type Capability struct {
	available bool
	reason    string
}

// Available reports a usable data source.
func Available() Capability {
	return Capability{available: true}
}

// Unavailable reports an unusable data source with a human-readable reason.
func Unavailable(reason string) Capability {
	return Capability{reason: reason}
}

// IsAvailable reports whether the data source can be used.
func (c Capability) IsAvailable() bool {
	return c.available
}

// Reason explains why the data source is unavailable. Empty when available.
func (c Capability) Reason() string {
	return c.reason
}

// String returns "available" or "unavailable: <reason>".
func (c Capability) String() string {
	if c.available {
		return "available"
	}
	return "unavailable: " + c.reason
}
