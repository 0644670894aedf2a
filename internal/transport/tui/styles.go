package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#A78BFA") // violet
	maleColor    = lipgloss.Color("#60A5FA") // blue
	femaleColor  = lipgloss.Color("#F472B6") // pink
	mutedColor   = lipgloss.Color("#9CA3AF")
	borderColor  = lipgloss.Color("#6B7280")
	accentColor  = lipgloss.Color("#FBBF24")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	rouletteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Padding(0, 2)

	teamBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Width(teamBoxWidth)

	teamTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)
)

const teamBoxWidth = 26

func genderStyle(g string) lipgloss.Style {
	if g == "F" {
		return lipgloss.NewStyle().Foreground(femaleColor)
	}
	return lipgloss.NewStyle().Foreground(maleColor)
}
