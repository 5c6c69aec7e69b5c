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

package mgmt

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/platform"
	"github.com/yusufpapurcu/wmi"
)

type win32VideoController struct {
	Name          string
	AdapterRAM    *uint32
	DriverVersion string
}

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	SerialNumber string
	Version      string
}

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
	ReleaseDate       string
}

type win32OperatingSystem struct {
	Caption string
}

type wmiQuerier struct{}

// New probes the management interface once and returns a Querier when it
// answers.
func New() (Querier, platform.Capability) {
	var probe []win32OperatingSystem
	if err := wmi.Query("SELECT Caption FROM Win32_OperatingSystem", &probe); err != nil {
		slog.Debug("management interface probe failed", slog.String("error", err.Error()))
		return nil, platform.Unavailable(MessageNotInstalled)
	}
	return wmiQuerier{}, platform.Available()
}

func query(ctx context.Context, q string, dst any) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "management query canceled", err)
	}
	if err := wmi.Query(q, dst); err != nil {
		return errors.WrapWithContext(errors.ErrCodeNotAvailable, "management query failed", err,
			map[string]any{"query": q})
	}
	return nil
}

func (wmiQuerier) VideoControllers(ctx context.Context) ([]VideoController, error) {
	var rows []win32VideoController
	if err := query(ctx, "SELECT Name, AdapterRAM, DriverVersion FROM Win32_VideoController", &rows); err != nil {
		return nil, err
	}

	result := make([]VideoController, 0, len(rows))
	for _, r := range rows {
		vc := VideoController{Name: r.Name, DriverVersion: r.DriverVersion}
		if r.AdapterRAM != nil {
			b := uint64(*r.AdapterRAM)
			vc.AdapterRAMBytes = &b
		}
		result = append(result, vc)
	}
	return result, nil
}

func (wmiQuerier) BaseBoards(ctx context.Context) ([]BaseBoard, error) {
	var rows []win32BaseBoard
	if err := query(ctx, "SELECT Manufacturer, Product, SerialNumber, Version FROM Win32_BaseBoard", &rows); err != nil {
		return nil, err
	}

	result := make([]BaseBoard, len(rows))
	for i, r := range rows {
		result[i] = BaseBoard(r)
	}
	return result, nil
}

func (wmiQuerier) BIOS(ctx context.Context) ([]BIOS, error) {
	var rows []win32BIOS
	if err := query(ctx, "SELECT Manufacturer, SMBIOSBIOSVersion, ReleaseDate FROM Win32_BIOS", &rows); err != nil {
		return nil, err
	}

	result := make([]BIOS, len(rows))
	for i, r := range rows {
		result[i] = BIOS{
			Manufacturer: r.Manufacturer,
			Version:      r.SMBIOSBIOSVersion,
			ReleaseDate:  r.ReleaseDate,
		}
	}
	return result, nil
}
