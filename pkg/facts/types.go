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

import "fmt"

// Type represents a hardware fact category.
type Type string

// String returns the string representation of the fact Type.
func (t Type) String() string {
	return string(t)
}

const (
	TypePlatform    Type = "Platform"
	TypeCPU         Type = "CPU"
	TypeMemory      Type = "Memory"
	TypeDisk        Type = "Disk"
	TypeGPU         Type = "GPU"
	TypeMotherboard Type = "Motherboard"
	TypeDriver      Type = "Driver"
)

// Types lists every category in snapshot order.
var Types = []Type{
	TypePlatform,
	TypeCPU,
	TypeMemory,
	TypeDisk,
	TypeGPU,
	TypeMotherboard,
	TypeDriver,
}

// ParseType parses a string into a fact Type.
// Returns the Type and true if parsing succeeds, or empty Type and false if the string is invalid.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Facts is a populated record for one category.
type Facts interface {
	FactType() Type
}

// CollectorError is the placeholder recorded for a category that could not
// be collected. It never aborts a snapshot.
type CollectorError struct {
	Category Type   `json:"category" yaml:"category"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *CollectorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Report is the outcome of one collector: either Facts or Error is set.
type Report struct {
	Type  Type            `json:"type" yaml:"type"`
	Facts Facts           `json:"facts,omitempty" yaml:"facts,omitempty"`
	Error *CollectorError `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the category was populated.
func (r Report) OK() bool {
	return r.Error == nil && r.Facts != nil
}
