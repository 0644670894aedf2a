package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/drawer"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
)

// revealSalt keeps the reveal order independent of the draw's own random stream.
const revealSalt = 0x5eed

// RevealOptions controls animation pacing.
type RevealOptions struct {
	RevealInterval time.Duration
	SpinInterval   time.Duration
	SpinFrames     int
}

// OptionsFrom maps UI configuration to reveal options.
func OptionsFrom(cfg config.UIConfig) RevealOptions {
	return RevealOptions{
		RevealInterval: cfg.RevealInterval,
		SpinInterval:   cfg.SpinInterval,
		SpinFrames:     cfg.SpinFrames,
	}
}

// Slot addresses one member of one team.
type Slot struct {
	Team   int
	Member int
}

// RevealOrder lists every member slot in a shuffled order derived from the assignment seed,
// so replaying a seed replays the same show.
func RevealOrder(a entities.Assignment) []Slot {
	slots := make([]Slot, 0, a.MemberCount())
	for ti, t := range a.Teams {
		for mi := range t.Members {
			slots = append(slots, Slot{Team: ti, Member: mi})
		}
	}

	seed := a.Seed ^ revealSalt
	src, _ := drawer.NewSource(&seed)
	src.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})
	return slots
}

type tickMsg struct{}

// Model reveals an assignment one member at a time, spinning through names before each pick.
type Model struct {
	a     entities.Assignment
	opts  RevealOptions
	order []Slot
	shown [][]bool
	rng   *rand.Rand

	next  int
	frame int
	spin  string
	done  bool
}

var _ tea.Model = (*Model)(nil)

// NewModel creates a reveal model with nothing shown yet.
func NewModel(a entities.Assignment, opts RevealOptions) *Model {
	shown := make([][]bool, len(a.Teams))
	for i, t := range a.Teams {
		shown[i] = make([]bool, len(t.Members))
	}
	seed := a.Seed
	rng, _ := drawer.NewSource(&seed)

	return &Model{
		a:     a,
		opts:  opts,
		order: RevealOrder(a),
		shown: shown,
		rng:   rng,
	}
}

// Done reports whether every member has been revealed.
func (m *Model) Done() bool {
	return m.done
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if len(m.order) == 0 {
		m.done = true
		return tea.Quit
	}
	return m.tick(m.opts.RevealInterval)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ", "enter", "s":
			m.revealAll()
			return m, tea.Quit
		}
	case tickMsg:
		return m.step()
	}
	return m, nil
}

func (m *Model) step() (tea.Model, tea.Cmd) {
	if m.next >= len(m.order) {
		m.done = true
		return m, tea.Quit
	}

	if m.frame < m.opts.SpinFrames {
		m.frame++
		m.spin = m.randomPending()
		return m, m.tick(m.opts.SpinInterval)
	}

	slot := m.order[m.next]
	m.shown[slot.Team][slot.Member] = true
	m.spin = fmt.Sprintf("%s → %s", m.a.Teams[slot.Team].Members[slot.Member].Name, m.a.Teams[slot.Team].Label())
	m.next++
	m.frame = 0

	if m.next == len(m.order) {
		m.done = true
		return m, tea.Quit
	}
	return m, m.tick(m.opts.RevealInterval)
}

func (m *Model) revealAll() {
	for _, s := range m.order[m.next:] {
		m.shown[s.Team][s.Member] = true
	}
	m.next = len(m.order)
	m.spin = ""
	m.done = true
}

func (m *Model) randomPending() string {
	pending := m.order[m.next:]
	s := pending[m.rng.IntN(len(pending))]
	return m.a.Teams[s.Team].Members[s.Member].Name
}

func (m *Model) tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Team Draw"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  seed %d  ·  %d/%d", m.a.Seed, m.next, len(m.order))))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.a.Teams, m.shown))
	b.WriteString("\n")

	switch {
	case m.done:
		b.WriteString(titleStyle.Render("Draw complete!"))
	case m.spin != "":
		b.WriteString(rouletteStyle.Render(m.spin))
	default:
		b.WriteString(mutedStyle.Render("Drawing..."))
	}
	b.WriteString("\n")
	if !m.done {
		b.WriteString(mutedStyle.Render("space: reveal all · q: stop"))
		b.WriteString("\n")
	}
	return b.String()
}

// Run plays the reveal animation until every member is shown or the user stops it.
// It reports whether the animation ran to completion.
func Run(ctx context.Context, a entities.Assignment, opts RevealOptions, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(NewModel(a, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run reveal: %w", err)
	}
	fm, ok := final.(*Model)
	return ok && fm.Done(), nil
}
