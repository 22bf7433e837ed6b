package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("205")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(12).Foreground(mutedColor)
	focusedLabel = lipgloss.NewStyle().Width(12).Foreground(accentColor).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	enabledStyle = lipgloss.NewStyle().Foreground(successColor)

	unitStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(mutedColor)
	selectedUnitStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(primaryColor).Bold(true)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(accentColor).
			Padding(1, 3).
			Bold(true)

	alertErrorStyle = alertStyle.BorderForeground(errorColor).Foreground(errorColor)
)
