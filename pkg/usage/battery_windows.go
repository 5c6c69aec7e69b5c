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

//go:build windows

package usage

import (
	"context"

	"github.com/yusufpapurcu/wmi"
	"k8s.io/utils/ptr"
)

type win32Battery struct {
	EstimatedChargeRemaining *uint16
}

func hostBattery(ctx context.Context) (*float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []win32Battery
	if err := wmi.Query("SELECT EstimatedChargeRemaining FROM Win32_Battery", &rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.EstimatedChargeRemaining != nil {
			return ptr.To(float64(*r.EstimatedChargeRemaining)), nil
		}
	}
	return nil, nil
}
