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

package board

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/hwfacts/pkg/collector/file"
	"github.com/NVIDIA/hwfacts/pkg/collector/mgmt"
	"github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
)

// Placeholder messages reported instead of facts.
const (
	MessageUnsupported    = "requires Windows or Linux"
	MessageDMIUnavailable = "DMI information not available"
	MessageQueryFailed    = "Failed to fetch motherboard information"
	DefaultDMIPath        = "/sys/class/dmi/id"
)

// Source produces motherboard facts for one OS family.
type Source interface {
	Collect(ctx context.Context) (*facts.MotherboardFacts, error)
}

// Collector delegates to the Source chosen for the host platform.
type Collector struct {
	Source Source
}

// NewCollector picks the source for family. querier and capability describe
// the management interface and only matter on Windows.
func NewCollector(family platform.Family, querier mgmt.Querier, capability platform.Capability) *Collector {
	switch family {
	case platform.FamilyWindows:
		return &Collector{Source: &WMISource{Querier: querier, Capability: capability}}
	case platform.FamilyLinux:
		return &Collector{Source: NewDMISource(file.NewRootedParser(DefaultDMIPath))}
	default:
		return &Collector{Source: UnsupportedSource{}}
	}
}

// Collect returns *facts.MotherboardFacts or a placeholder error.
func (c *Collector) Collect(ctx context.Context) (facts.Facts, error) {
	slog.Debug("collecting motherboard facts")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := c.Source
	if src == nil {
		src = UnsupportedSource{}
	}

	mf, err := src.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return mf, nil
}

// UnsupportedSource is used on platforms with no motherboard data source.
type UnsupportedSource struct{}

// Collect always fails with MessageUnsupported.
func (UnsupportedSource) Collect(context.Context) (*facts.MotherboardFacts, error) {
	return nil, errors.New(errors.ErrCodeUnsupportedPlatform, MessageUnsupported)
}

// DMISource reads the baseboard attributes Linux exposes under
// /sys/class/dmi/id.
type DMISource struct {
	parser *file.Parser
}

// NewDMISource returns a DMISource reading attribute files through parser.
func NewDMISource(parser *file.Parser) *DMISource {
	return &DMISource{parser: parser}
}

// Collect reads board_vendor, board_name, board_serial and board_version in
// that order. The first file that cannot be read fails the whole category.
func (s *DMISource) Collect(ctx context.Context) (*facts.MotherboardFacts, error) {
	var b facts.Board
	attrs := []struct {
		name string
		dst  *string
	}{
		{"board_vendor", &b.Manufacturer},
		{"board_name", &b.Product},
		{"board_serial", &b.SerialNumber},
		{"board_version", &b.Version},
	}

	for _, a := range attrs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := s.parser.GetValue(a.name)
		if err != nil {
			slog.Debug("dmi attribute unreadable", slog.String("attribute", a.name), slog.String("error", err.Error()))
			return nil, errors.WrapWithContext(errors.ErrCodeNotAvailable, MessageDMIUnavailable, err,
				map[string]any{"attribute": a.name})
		}
		*a.dst = v
	}

	return &facts.MotherboardFacts{Boards: []facts.Board{b}}, nil
}

// WMISource queries Win32_BaseBoard and Win32_BIOS.
type WMISource struct {
	Querier    mgmt.Querier
	Capability platform.Capability
}

// Collect keeps every baseboard and BIOS record returned.
func (s *WMISource) Collect(ctx context.Context) (*facts.MotherboardFacts, error) {
	if !s.Capability.IsAvailable() || s.Querier == nil {
		reason := s.Capability.Reason()
		if reason == "" {
			reason = mgmt.MessageNotInstalled
		}
		return nil, errors.New(errors.ErrCodeDependencyMissing, reason)
	}

	boards, err := s.Querier.BaseBoards(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, MessageQueryFailed, err)
	}
	bios, err := s.Querier.BIOS(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotAvailable, MessageQueryFailed, err)
	}

	mf := &facts.MotherboardFacts{Boards: make([]facts.Board, 0, len(boards))}
	for _, b := range boards {
		mf.Boards = append(mf.Boards, facts.Board{
			Manufacturer: b.Manufacturer,
			Product:      b.Product,
			SerialNumber: b.SerialNumber,
			Version:      b.Version,
		})
	}
	for _, b := range bios {
		mf.BIOS = append(mf.BIOS, facts.BIOS{
			Vendor:      b.Manufacturer,
			Version:     b.Version,
			ReleaseDate: b.ReleaseDate,
		})
	}
	return mf, nil
}
