package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/logimap/internal/analysis"
	"github.com/san-kum/logimap/internal/logistic"
)

const (
	graphWidth      = 80
	graphHeight     = 14
	historyCapacity = 240
)

type TickMsg time.Time

// Model holds the live orbit state and UI context.
type Model struct {
	r       float64
	x0      float64
	x       float64
	step    int
	running bool
	history []float64

	showHelp bool
}

// NewModel starts an orbit at x0 for growth rate r.
func NewModel(r, x0 float64) Model {
	return Model{
		r:       r,
		x0:      x0,
		x:       x0,
		running: true,
		history: append(make([]float64, 0, historyCapacity), x0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/20, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the orbit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.restart()
		case "left":
			m.adjustR(-0.01)
		case "right":
			m.adjustR(0.01)
		case ",":
			m.adjustR(-0.001)
		case ".":
			m.adjustR(0.001)
		case "up":
			m.x0 = clamp(m.x0+0.05, 0, 1)
			m.restart()
		case "down":
			m.x0 = clamp(m.x0-0.05, 0, 1)
			m.restart()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(time.Second/20, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// advance performs one map iteration.
func (m *Model) advance() {
	m.x = m.r * m.x * (1 - m.x)
	m.step++
	m.history = append(m.history, m.x)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) adjustR(delta float64) {
	m.r = clamp(m.r+delta, 0, 4)
}

func (m *Model) restart() {
	m.x = m.x0
	m.step = 0
	m.history = append(m.history[:0], m.x0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the orbit graph and stats panel.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("LOGISTIC MAP ORBIT") + "\n")

	if !m.running {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n")
	}

	graph := asciigraph.Plot(m.history,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("x vs iteration (r=%.3f)", m.r)),
	)
	s.WriteString(graphStyle.Render(graph) + "\n\n")

	s.WriteString(m.statsView())

	if m.showHelp {
		s.WriteString(helpStyle.Render(
			"space pause  ←/→ r ±0.01  ,/. r ±0.001  ↑/↓ x0 ±0.05  r restart  q quit"))
	} else {
		s.WriteString(helpStyle.Render("? for help"))
	}

	return s.String()
}

func (m Model) statsView() string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, labelStyle.Render(label)+valueStyle.Render(value))
	}

	row("r", fmt.Sprintf("%.4f", m.r))
	row("x0", fmt.Sprintf("%.4f", m.x0))
	row("x", fmt.Sprintf("%.6f", m.x))
	row("iteration", fmt.Sprintf("%d", m.step))
	if m.r > 1 {
		row("fixed point", fmt.Sprintf("%.6f", logistic.FixedPoint(m.r)))
	}

	// Attractor estimate from the settled part of the visible orbit.
	if len(m.history) >= historyCapacity/2 {
		values := analysis.Attractor(m.history[len(m.history)/2:], 1e-3)
		if len(values) <= 8 {
			row("attractor", formatValues(values))
		} else {
			row("attractor", fmt.Sprintf("%d+ values (chaotic?)", len(values)))
		}
	}

	return statsStyle.Render(strings.Join(rows, "\n")) + "\n"
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return strings.Join(parts, ", ")
}
