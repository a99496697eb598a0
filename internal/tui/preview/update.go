package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/visdev-lib/color/pkg/palette"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.cursor = (m.cursor + 1) % len(m.roles)

	case key.Matches(msg, m.keys.Prev):
		m.cursor = (m.cursor - 1 + len(m.roles)) % len(m.roles)

	case key.Matches(msg, m.keys.Grow):
		if m.size < MaxSize {
			m.size++
		}

	case key.Matches(msg, m.keys.Shrink):
		if m.size > palette.MinSize {
			m.size--
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
