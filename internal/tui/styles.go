package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#0072B2")
	mutedColor  = lipgloss.Color("240")
	errorColor  = lipgloss.Color("#e53935")
	okColor     = lipgloss.Color("#8BC34A")

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(accentColor).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 1)

	answerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(okColor).
			Padding(0, 1)

	warnAnswerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	errorViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errorColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)
