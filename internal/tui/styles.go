// ABOUTME: lipgloss styles shared by every view of the dashboard.
// ABOUTME: Colors are ANSI 256 so they degrade on plain terminals.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	flashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Italic(true)

	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	barGoalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
	phaseStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	countdownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
)
