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

package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	hwerrors "github.com/NVIDIA/hwfacts/pkg/errors"
	"github.com/NVIDIA/hwfacts/pkg/facts"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	parts    []disk.PartitionStat
	partsErr error
	usage    map[string]*disk.UsageStat
	usageErr map[string]error
}

func (f *fakeSource) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return f.parts, f.partsErr
}

func (f *fakeSource) Usage(_ context.Context, mountpoint string) (*disk.UsageStat, error) {
	if err := f.usageErr[mountpoint]; err != nil {
		return nil, err
	}
	return f.usage[mountpoint], nil
}

func threeMounts() *fakeSource {
	return &fakeSource{
		parts: []disk.PartitionStat{
			{Device: "/dev/nvme0n1p2", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/nvme0n1p1", Mountpoint: "/boot/efi", Fstype: "vfat"},
			{Device: "/dev/sda1", Mountpoint: "/data", Fstype: "xfs"},
		},
		usage: map[string]*disk.UsageStat{
			"/":         {Total: 500, Used: 200, Free: 300},
			"/boot/efi": {Total: 1, Used: 0, Free: 1},
			"/data":     {Total: 4000, Used: 1000, Free: 3000},
		},
		usageErr: map[string]error{},
	}
}

func mountpoints(df *facts.DiskFacts) []string {
	out := make([]string, 0, len(df.Partitions))
	for _, p := range df.Partitions {
		out = append(out, p.Mountpoint)
	}
	return out
}

func TestCollector_Collect(t *testing.T) {
	got, err := (&Collector{Source: threeMounts()}).Collect(context.Background())
	require.NoError(t, err)

	df := got.(*facts.DiskFacts)
	require.Len(t, df.Partitions, 3)
	assert.Equal(t, facts.DiskPartitionFacts{
		Device: "/dev/nvme0n1p2", Mountpoint: "/", FSType: "ext4",
		TotalBytes: 500, UsedBytes: 200, FreeBytes: 300,
	}, df.Partitions[0])
	assert.Equal(t, []string{"/", "/boot/efi", "/data"}, mountpoints(df))
}

func TestCollector_SkipsUnreadablePartitions(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"permission denied", fs.ErrPermission},
		{"wrapped permission denied", fmt.Errorf("statfs /boot/efi: %w", fs.ErrPermission)},
		{"device not ready", errors.New("the device is not ready")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := threeMounts()
			src.usageErr["/boot/efi"] = tt.err

			got, err := (&Collector{Source: src}).Collect(context.Background())
			require.NoError(t, err)

			df := got.(*facts.DiskFacts)
			assert.Len(t, df.Partitions, len(src.parts)-1)
			assert.Equal(t, []string{"/", "/data"}, mountpoints(df))
		})
	}
}

func TestCollector_NoPartitions(t *testing.T) {
	got, err := (&Collector{Source: &fakeSource{}}).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.(*facts.DiskFacts).Partitions)
}

func TestCollector_EnumerationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want hwerrors.ErrorCode
	}{
		{"permission", fs.ErrPermission, hwerrors.ErrCodePermissionDenied},
		{"other", errors.New("no mtab"), hwerrors.ErrCodeNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Collector{Source: &fakeSource{partsErr: tt.err}}).Collect(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.want, hwerrors.CodeOf(err))
		})
	}
}

func TestCollector_EnumerationWarnings(t *testing.T) {
	warnings := (&disk.Warnings{List: []error{errors.New("GetVolumeInformation E: access denied")}}).Reference()

	t.Run("partial list kept", func(t *testing.T) {
		src := threeMounts()
		src.partsErr = warnings

		got, err := (&Collector{Source: src}).Collect(context.Background())
		require.NoError(t, err)

		df := got.(*facts.DiskFacts)
		assert.Len(t, df.Partitions, len(src.parts))
		assert.Equal(t, []string{"/", "/boot/efi", "/data"}, mountpoints(df))
	})

	t.Run("nothing listed", func(t *testing.T) {
		_, err := (&Collector{Source: &fakeSource{partsErr: warnings}}).Collect(context.Background())
		require.Error(t, err)
		assert.Equal(t, hwerrors.ErrCodeNotAvailable, hwerrors.CodeOf(err))
	})

	t.Run("other error with partitions", func(t *testing.T) {
		src := threeMounts()
		src.partsErr = fmt.Errorf("mount table: %w", fs.ErrPermission)

		_, err := (&Collector{Source: src}).Collect(context.Background())
		require.Error(t, err)
		assert.Equal(t, hwerrors.ErrCodePermissionDenied, hwerrors.CodeOf(err))
	})
}

func TestCollector_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	got, err := NewCollector().Collect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got.(*facts.DiskFacts).Partitions)
}
