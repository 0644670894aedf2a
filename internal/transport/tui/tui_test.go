package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/grape-tasting-acid/workshop-team-drawer/internal/drawer"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

func drawn(t *testing.T, seed int64) entities.Assignment {
	t.Helper()

	var leaders, ob, girls []entities.Person
	for i := 0; i < 4; i++ {
		g := entities.GenderMale
		if i%2 == 1 {
			g = entities.GenderFemale
		}
		leaders = append(leaders, entities.NewLeader(fmt.Sprintf("L%d", i+1), g))
	}
	for i := 0; i < 5; i++ {
		ob = append(ob, entities.NewMember(fmt.Sprintf("OB%d", i+1), entities.CategoryOB))
	}
	for i := 0; i < 3; i++ {
		girls = append(girls, entities.NewMember(fmt.Sprintf("G%d", i+1), entities.CategoryGirl))
	}

	a, err := drawer.Draw(leaders, ob, nil, girls, &seed)
	require.NoError(t, err)
	return *a
}

func TestRevealOrderCoversEverySlotOnce(t *testing.T) {
	a := drawn(t, 11)

	order := RevealOrder(a)
	require.Len(t, order, a.MemberCount())

	seen := map[Slot]bool{}
	for _, s := range order {
		require.False(t, seen[s])
		seen[s] = true
		require.Less(t, s.Member, len(a.Teams[s.Team].Members))
	}
	require.Equal(t, order, RevealOrder(a))
}

func TestModelRevealsEveryMember(t *testing.T) {
	a := drawn(t, 5)
	m := NewModel(a, RevealOptions{SpinFrames: 2})
	require.NotNil(t, m.Init())

	ticks := 0
	for !m.Done() {
		_, cmd := m.Update(tickMsg{})
		require.NotNil(t, cmd)
		ticks++
		require.Less(t, ticks, 1000)
	}
	require.Equal(t, a.MemberCount()*3, ticks)

	for _, row := range m.shown {
		for _, v := range row {
			require.True(t, v)
		}
	}

	view := m.View()
	require.Contains(t, view, "Draw complete!")
	for _, team := range a.Teams {
		for _, p := range team.Members {
			require.Contains(t, view, p.Name)
		}
	}
}

func TestModelSkipRevealsAll(t *testing.T) {
	a := drawn(t, 6)
	m := NewModel(a, RevealOptions{})
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)
	require.True(t, m.Done())
	require.Equal(t, RenderBoard(a), renderBoard(a.Teams, m.shown))
}

func TestModelQuitKeepsPartialState(t *testing.T) {
	a := drawn(t, 7)
	m := NewModel(a, RevealOptions{})
	m.Init()

	m.Update(tickMsg{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.False(t, m.Done())
	require.Equal(t, 1, m.next)
}

func TestModelEmptyAssignmentQuitsImmediately(t *testing.T) {
	m := NewModel(entities.Assignment{Teams: []entities.Team{{Leader: entities.NewLeader("Kim", entities.GenderMale)}}}, RevealOptions{})
	require.NotNil(t, m.Init())
	require.True(t, m.Done())
}

func TestRenderLeaders(t *testing.T) {
	view := RenderLeaders([]entities.Person{
		entities.NewLeader("Kim", entities.GenderMale),
		entities.NewLeader("Lee", entities.GenderFemale),
	})
	require.Contains(t, view, "Team 1")
	require.Contains(t, view, "[LEADER] Lee (F)")
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(entities.RosterSummary{Leaders: 8, OB: 9, YB: 8, Girls: 8})
	require.Contains(t, out, "Leaders: 8, OB: 9, YB: 8, Girls: 8")
}
