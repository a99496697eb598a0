package preview

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingRight(2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Underline(true).
			PaddingRight(2)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Width(6).
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			MarginTop(1).
			PaddingLeft(2)
)
