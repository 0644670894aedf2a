// Package tui renders team assignments in the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// BoardColumns is how many team boxes share one row.
const BoardColumns = 4

// RenderBoard draws every team with all of its members.
func RenderBoard(a entities.Assignment) string {
	return renderBoard(a.Teams, nil)
}

// RenderLeaders draws empty team boxes holding only their leaders.
func RenderLeaders(leaders []entities.Person) string {
	teams := make([]entities.Team, len(leaders))
	for i, l := range leaders {
		teams[i] = entities.Team{Index: i, Leader: l}
	}
	return renderBoard(teams, nil)
}

// renderBoard draws teams in rows of BoardColumns. When shown is non-nil only members
// with shown[team][member] set are listed.
func renderBoard(teams []entities.Team, shown [][]bool) string {
	rows := make([]string, 0, (len(teams)+BoardColumns-1)/BoardColumns)
	for start := 0; start < len(teams); start += BoardColumns {
		end := min(start+BoardColumns, len(teams))
		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			var visible []bool
			if shown != nil {
				visible = shown[i]
			}
			boxes = append(boxes, renderTeam(teams[i], visible))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTeam(t entities.Team, visible []bool) string {
	var b strings.Builder
	b.WriteString(teamTitleStyle.Render(t.Label()))
	b.WriteString("\n")
	b.WriteString(genderStyle(string(t.Leader.Gender)).Render(
		fmt.Sprintf("[LEADER] %s (%s)", t.Leader.Name, t.Leader.Gender)))

	for i, m := range t.Members {
		if visible != nil && !visible[i] {
			continue
		}
		b.WriteString("\n")
		b.WriteString(genderStyle(string(m.Gender)).Render(fmt.Sprintf("- %s [%s]", m.Name, m.Category)))
	}
	return teamBoxStyle.Render(b.String())
}

// RenderSummary is the one-line roster head count shown after loading.
func RenderSummary(s entities.RosterSummary) string {
	return mutedStyle.Render(fmt.Sprintf("Leaders: %d, OB: %d, YB: %d, Girls: %d", s.Leaders, s.OB, s.YB, s.Girls))
}
