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
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/NVIDIA/hwfacts/pkg/collector/file"
	"github.com/NVIDIA/hwfacts/pkg/collector/mgmt"
	hwerrors "github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/NVIDIA/hwfacts/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dmiFS() fstest.MapFS {
	return fstest.MapFS{
		"board_vendor":  {Data: []byte("ASUSTeK COMPUTER INC.\n")},
		"board_name":    {Data: []byte("PRIME Z790-P WIFI\n")},
		"board_serial":  {Data: []byte("230414751201234\n")},
		"board_version": {Data: []byte("Rev 1.xx\n")},
	}
}

func dmiCollector(fsys fs.FS) *Collector {
	return &Collector{Source: NewDMISource(file.NewParser(file.WithFS(fsys)))}
}

func TestCollector_DMI(t *testing.T) {
	got, err := dmiCollector(dmiFS()).Collect(context.Background())
	require.NoError(t, err)

	mf := got.(*facts.MotherboardFacts)
	assert.Equal(t, []facts.Board{{
		Manufacturer: "ASUSTeK COMPUTER INC.",
		Product:      "PRIME Z790-P WIFI",
		SerialNumber: "230414751201234",
		Version:      "Rev 1.xx",
	}}, mf.Boards)
	assert.Nil(t, mf.BIOS)
}

func TestCollector_DMIMissingFile(t *testing.T) {
	for _, missing := range []string{"board_vendor", "board_name", "board_serial", "board_version"} {
		t.Run(missing, func(t *testing.T) {
			fsys := dmiFS()
			delete(fsys, missing)

			got, err := dmiCollector(fsys).Collect(context.Background())
			assert.Nil(t, got)
			require.Error(t, err)
			assert.Equal(t, MessageDMIUnavailable, hwerrors.MessageOf(err))
			assert.Equal(t, hwerrors.ErrCodeNotAvailable, hwerrors.CodeOf(err))
		})
	}
}

type countingFS struct {
	fs.FS
	opened []string
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opened = append(c.opened, name)
	return c.FS.Open(name)
}

func TestCollector_DMIShortCircuits(t *testing.T) {
	fsys := dmiFS()
	delete(fsys, "board_name")
	counting := &countingFS{FS: fsys}

	_, err := dmiCollector(counting).Collect(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"board_vendor", "board_name"}, counting.opened)
}

func TestCollector_Unsupported(t *testing.T) {
	c := NewCollector(platform.FamilyOther, nil, platform.Unavailable(mgmt.MessageNotInstalled))

	got, err := c.Collect(context.Background())
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Equal(t, MessageUnsupported, hwerrors.MessageOf(err))
	assert.Equal(t, hwerrors.ErrCodeUnsupportedPlatform, hwerrors.CodeOf(err))
}

func TestNewCollector_SelectsSource(t *testing.T) {
	tests := []struct {
		family platform.Family
		want   Source
	}{
		{platform.FamilyWindows, &WMISource{}},
		{platform.FamilyLinux, &DMISource{}},
		{platform.FamilyOther, UnsupportedSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			c := NewCollector(tt.family, nil, platform.Unavailable("x"))
			assert.IsType(t, tt.want, c.Source)
		})
	}
}

type fakeQuerier struct {
	boards    []mgmt.BaseBoard
	bios      []mgmt.BIOS
	boardsErr error
	biosErr   error
}

func (f *fakeQuerier) VideoControllers(context.Context) ([]mgmt.VideoController, error) {
	return nil, nil
}

func (f *fakeQuerier) BaseBoards(context.Context) ([]mgmt.BaseBoard, error) {
	return f.boards, f.boardsErr
}

func (f *fakeQuerier) BIOS(context.Context) ([]mgmt.BIOS, error) { return f.bios, f.biosErr }

func TestCollector_WMI(t *testing.T) {
	q := &fakeQuerier{
		boards: []mgmt.BaseBoard{
			{Manufacturer: "Dell Inc.", Product: "0K240Y", SerialNumber: "/7XJ2N93/CNWS20012300AB/", Version: "A02"},
			{Manufacturer: "Dell Inc.", Product: "Riser", SerialNumber: "", Version: ""},
		},
		bios: []mgmt.BIOS{{Manufacturer: "Dell Inc.", Version: "2.19.0", ReleaseDate: "20240312000000.000000+000"}},
	}
	c := NewCollector(platform.FamilyWindows, q, platform.Available())

	got, err := c.Collect(context.Background())
	require.NoError(t, err)

	mf := got.(*facts.MotherboardFacts)
	require.Len(t, mf.Boards, 2)
	assert.Equal(t, "0K240Y", mf.Boards[0].Product)
	assert.Equal(t, []facts.BIOS{{Vendor: "Dell Inc.", Version: "2.19.0", ReleaseDate: "20240312000000.000000+000"}}, mf.BIOS)
}

func TestCollector_WMIErrors(t *testing.T) {
	tests := []struct {
		name     string
		querier  mgmt.Querier
		cap      platform.Capability
		wantCode hwerrors.ErrorCode
		wantMsg  string
	}{
		{
			name:     "not installed",
			cap:      platform.Unavailable(mgmt.MessageNotInstalled),
			wantCode: hwerrors.ErrCodeDependencyMissing,
			wantMsg:  mgmt.MessageNotInstalled,
		},
		{
			name:     "baseboard query fails",
			querier:  &fakeQuerier{boardsErr: errors.New("access denied")},
			cap:      platform.Available(),
			wantCode: hwerrors.ErrCodeNotAvailable,
			wantMsg:  MessageQueryFailed,
		},
		{
			name:     "bios query fails",
			querier:  &fakeQuerier{biosErr: errors.New("invalid class")},
			cap:      platform.Available(),
			wantCode: hwerrors.ErrCodeNotAvailable,
			wantMsg:  MessageQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollector(platform.FamilyWindows, tt.querier, tt.cap).Collect(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, hwerrors.CodeOf(err))
			assert.Equal(t, tt.wantMsg, hwerrors.MessageOf(err))
		})
	}
}
