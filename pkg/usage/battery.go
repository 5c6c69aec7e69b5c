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

package usage

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/NVIDIA/hwfacts/pkg/collector/file"
	"k8s.io/utils/ptr"
)

const powerSupplyRoot = "/sys/class/power_supply"

// sysfsBattery returns the charge of the first supply whose type is Battery,
// or nil when there is none.
func sysfsBattery(fsys fs.FS) (*float64, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	p := file.NewParser(file.WithFS(fsys))
	for _, e := range entries {
		typ, err := p.GetValue(path.Join(e.Name(), "type"))
		if err != nil || typ != "Battery" {
			continue
		}

		v, err := p.GetValue(path.Join(e.Name(), "capacity"))
		if err != nil {
			return nil, err
		}
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid capacity %q for %s: %w", v, e.Name(), err)
		}
		return ptr.To(pct), nil
	}
	return nil, nil
}
