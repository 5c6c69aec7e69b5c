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

package collector

import (
	"context"

	"github.com/NVIDIA/hwfacts/pkg/facts"
)

// Collector gathers the facts of one category.
// A returned error becomes that category's placeholder in a snapshot.
type Collector interface {
	Collect(ctx context.Context) (facts.Facts, error)
}

// Factory creates collectors. Implementations resolve platform capabilities
// once, so every collector they return is already bound to its strategy.
type Factory interface {
	CreatePlatformCollector() Collector
	CreateCPUCollector() Collector
	CreateMemoryCollector() Collector
	CreateDiskCollector() Collector
	CreateGPUCollector() Collector
	CreateMotherboardCollector() Collector
	CreateDriverCollector() Collector
}

// Create returns the collector for t from f, or nil for an unknown type.
func Create(f Factory, t facts.Type) Collector {
	switch t {
	case facts.TypePlatform:
		return f.CreatePlatformCollector()
	case facts.TypeCPU:
		return f.CreateCPUCollector()
	case facts.TypeMemory:
		return f.CreateMemoryCollector()
	case facts.TypeDisk:
		return f.CreateDiskCollector()
	case facts.TypeGPU:
		return f.CreateGPUCollector()
	case facts.TypeMotherboard:
		return f.CreateMotherboardCollector()
	case facts.TypeDriver:
		return f.CreateDriverCollector()
	default:
		return nil
	}
}
