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

// Package panel is a refreshable terminal view over the hardware report.
package panel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NVIDIA/hwfacts/pkg/defaults"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Source produces the report text. Each call is a full re-collection.
type Source func(ctx context.Context) string

// reportMsg delivers a finished collection to the model.
type reportMsg struct {
	text string
	at   time.Time
}

// chromeHeight is the title bar plus the help bar.
const chromeHeight = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("76"))
)

// Model is the bubbletea model of the panel.
type Model struct {
	ctx    context.Context
	source Source
	keys   KeyMap

	lines     []string
	offset    int
	width     int
	height    int
	loading   bool
	refreshed time.Time
}

// NewModel returns a panel model that collects from source.
func NewModel(ctx context.Context, source Source) Model {
	return Model{
		ctx:     ctx,
		source:  source,
		keys:    DefaultKeyMap,
		loading: true,
	}
}

// Init starts the first collection.
func (m Model) Init() tea.Cmd {
	return m.collect()
}

func (m Model) collect() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		cctx, cancel := context.WithTimeout(ctx, defaults.PanelRefreshTimeout)
		defer cancel()
		return reportMsg{text: source(cctx), at: time.Now()}
	}
}

// Update handles key presses, resizes and finished collections.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clamp()
		return m, nil

	case reportMsg:
		m.lines = strings.Split(strings.TrimRight(msg.text, "\n"), "\n")
		m.refreshed = msg.at
		m.loading = false
		m.clamp()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.collect()
		case key.Matches(msg, m.keys.Up):
			m.offset--
		case key.Matches(msg, m.keys.Down):
			m.offset++
		case key.Matches(msg, m.keys.PageUp):
			m.offset -= m.bodyHeight()
		case key.Matches(msg, m.keys.PageDown):
			m.offset += m.bodyHeight()
		case key.Matches(msg, m.keys.Home):
			m.offset = 0
		case key.Matches(msg, m.keys.End):
			m.offset = m.maxOffset()
		}
		m.clamp()
	}
	return m, nil
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.bodyHeight(), 0)
}

func (m *Model) clamp() {
	m.offset = min(max(m.offset, 0), m.maxOffset())
}

// View renders the title bar, the visible slice of the report and the help bar.
func (m Model) View() string {
	var b strings.Builder

	status := "collecting..."
	if !m.loading {
		status = "refreshed " + m.refreshed.Format(time.TimeOnly)
	}
	b.WriteString(titleStyle.Render("hwfacts") + " " + statusStyle.Render(status))
	b.WriteString("\n")

	end := min(m.offset+m.bodyHeight(), len(m.lines))
	for i := m.offset; i < end; i++ {
		line := m.lines[i]
		if strings.HasPrefix(line, "=== ") {
			line = headerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - m.offset; i < m.bodyHeight(); i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, 6)
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	if len(m.lines) > 0 {
		parts = append(parts, fmt.Sprintf("%d-%d/%d",
			m.offset+1, min(m.offset+m.bodyHeight(), len(m.lines)), len(m.lines)))
	}
	return helpStyle.Render(" " + strings.Join(parts, "  "))
}

// Run shows the panel until the user quits or ctx is done.
func Run(ctx context.Context, source Source) error {
	program := tea.NewProgram(NewModel(ctx, source), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}
