package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BreathePhase is one leg of the 4-7-8 breathing pattern.
type BreathePhase int

const (
	PhaseInhale BreathePhase = iota
	PhaseHold
	PhaseExhale
)

func (p BreathePhase) Duration() int {
	switch p {
	case PhaseInhale:
		return 4
	case PhaseHold:
		return 7
	default:
		return 8
	}
}

func (p BreathePhase) Instruction() string {
	switch p {
	case PhaseInhale:
		return "Breathe in through your nose"
	case PhaseHold:
		return "Hold"
	default:
		return "Release slowly through your mouth"
	}
}

type breatheTickMsg time.Time

func breatheTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return breatheTickMsg(t)
	})
}

// BreatheModel runs a guided 4-7-8 breathing session. It works as a
// standalone bubbletea program and embedded as a tab in the main TUI.
type BreatheModel struct {
	phase        BreathePhase
	remaining    int
	cycle        int
	targetCycles int
	done         bool
	standalone   bool
	width        int
	height       int
}

func NewBreatheModel(cycles int) BreatheModel {
	if cycles < 1 {
		cycles = 1
	}
	m := newEmbeddedBreatheModel(cycles)
	m.standalone = true
	return m
}

func newEmbeddedBreatheModel(cycles int) BreatheModel {
	return BreatheModel{
		phase:        PhaseInhale,
		remaining:    PhaseInhale.Duration(),
		targetCycles: cycles,
	}
}

func (m BreatheModel) Init() tea.Cmd {
	return breatheTick()
}

// advance moves the session forward by one second.
func (m BreatheModel) advance() BreatheModel {
	if m.done {
		return m
	}
	m.remaining--
	if m.remaining > 0 {
		return m
	}
	switch m.phase {
	case PhaseInhale:
		m.phase = PhaseHold
	case PhaseHold:
		m.phase = PhaseExhale
	case PhaseExhale:
		m.cycle++
		if m.cycle >= m.targetCycles {
			m.done = true
			return m
		}
		m.phase = PhaseInhale
	}
	m.remaining = m.phase.Duration()
	return m
}

func (m BreatheModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case breatheTickMsg:
		m = m.advance()
		if m.done {
			return m, nil
		}
		return m, breatheTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.standalone {
				return m, tea.Quit
			}
		default:
			if m.done && m.standalone {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m BreatheModel) View() string {
	var body string
	if m.done {
		body = lipgloss.JoinVertical(lipgloss.Center,
			breatheStyle.Render("Well done."),
			"",
			fmt.Sprintf("%d full cycle(s) complete.", m.cycle),
			"",
			subtleStyle.Render("press any key to continue"),
		)
	} else {
		elapsed := m.phase.Duration() - m.remaining
		dots := strings.Repeat("●", elapsed) + strings.Repeat("○", m.remaining)
		body = lipgloss.JoinVertical(lipgloss.Center,
			breatheStyle.Render(m.phase.Instruction()),
			"",
			dots,
			"",
			subtleStyle.Render(fmt.Sprintf("cycle %d of %d", m.cycle+1, m.targetCycles)),
			"",
			subtleStyle.Render("q to stop"),
		)
	}

	if m.width == 0 || m.height == 0 {
		return docStyle.Render(body)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
