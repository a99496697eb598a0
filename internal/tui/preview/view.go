package preview

import (
	"fmt"
	"strings"

	"github.com/visdev-lib/color/internal/render"
)

const blockWidth = 14

// View implements tea.Model.
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("Theme preview · %s · %d shades", m.theme.Primary(), m.size)))
	content.WriteString("\n")
	content.WriteString(m.renderTabs())
	content.WriteString("\n\n")
	content.WriteString(m.renderPalette())
	content.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return content.String()
}

func (m Model) renderTabs() string {
	var tabs strings.Builder
	tabs.WriteString("  ")
	for i, role := range m.roles {
		if i == m.cursor {
			tabs.WriteString(activeTabStyle.Render(role))
			continue
		}
		tabs.WriteString(tabStyle.Render(role))
	}
	return tabs.String()
}

func (m Model) renderPalette() string {
	p, err := m.currentPalette()
	if err != nil {
		return rowStyle.Render(errorStyle.Render(err.Error())) + "\n"
	}

	swatches, err := render.PaletteSwatches(p)
	if err != nil {
		return rowStyle.Render(errorStyle.Render(err.Error())) + "\n"
	}

	var rows strings.Builder
	for _, s := range swatches {
		rows.WriteString(rowStyle.Render(labelStyle.Render(s.Label) + render.Block(s, blockWidth)))
		rows.WriteString("\n")
	}
	return rows.String()
}
