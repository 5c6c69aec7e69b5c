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

package panel

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedReport(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n") + "\n"
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model of height h showing a report of n lines.
func loaded(t *testing.T, n, h int) Model {
	t.Helper()
	calls := 0
	model := NewModel(context.Background(), func(context.Context) string {
		calls++
		return numberedReport(n)
	})

	msg := model.Init()()
	report, ok := msg.(reportMsg)
	require.True(t, ok)
	require.Equal(t, 1, calls)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: h})
	model = updated.(Model)
	updated, _ = model.Update(report)
	return updated.(Model)
}

func TestModel_Scrolling(t *testing.T) {
	model := loaded(t, 10, 5) // body of 3 lines, max offset 7

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"down", runes("j"), 1},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, 2},
		{"up", runes("k"), 1},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, 4},
		{"end", runes("G"), 7},
		{"down past end", runes("j"), 7},
		{"home", runes("g"), 0},
		{"up past start", runes("k"), 0},
	}

	for _, tt := range tests {
		updated, cmd := model.Update(tt.msg)
		model = updated.(Model)
		assert.Nil(t, cmd, tt.name)
		assert.Equal(t, tt.want, model.offset, tt.name)
	}
}

func TestModel_ViewShowsVisibleSlice(t *testing.T) {
	model := loaded(t, 10, 5)
	updated, _ := model.Update(runes("j"))
	model = updated.(Model)

	view := model.View()
	assert.Contains(t, view, "line 2")
	assert.Contains(t, view, "line 4")
	assert.NotContains(t, view, "line 1\n")
	assert.NotContains(t, view, "line 5")
	assert.Contains(t, view, "2-4/10")
	assert.Contains(t, view, "r refresh")
}

func TestModel_ResizeClampsOffset(t *testing.T) {
	model := loaded(t, 10, 5)
	updated, _ := model.Update(runes("G"))
	model = updated.(Model)
	require.Equal(t, 7, model.offset)

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	model = updated.(Model)
	assert.Equal(t, 0, model.offset)
}

func TestModel_Refresh(t *testing.T) {
	calls := 0
	model := NewModel(context.Background(), func(context.Context) string {
		calls++
		return fmt.Sprintf("run %d\n", calls)
	})
	updated, _ := model.Update(model.Init()())
	model = updated.(Model)
	require.False(t, model.loading)
	assert.Equal(t, []string{"run 1"}, model.lines)

	updated, cmd := model.Update(runes("r"))
	model = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, model.loading)
	assert.Contains(t, model.View(), "collecting...")

	// A second press while collecting is ignored.
	_, again := model.Update(runes("r"))
	assert.Nil(t, again)

	updated, _ = model.Update(cmd())
	model = updated.(Model)
	assert.False(t, model.loading)
	assert.Equal(t, []string{"run 2"}, model.lines)
	assert.Equal(t, 2, calls)
}

func TestModel_Quit(t *testing.T) {
	model := loaded(t, 3, 10)

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := model.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}
