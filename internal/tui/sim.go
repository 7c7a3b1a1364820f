package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifelab/internal/life"
)

const historyCapacity = 600

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

// canvas padding from canvasStyle, used to map mouse clicks onto cells
const (
	canvasPadX = 2
	canvasPadY = 1
)

type TickMsg time.Time

// Model runs one board interactively: ticks advance generations, mouse
// clicks paint cells, keys control playback.
type Model struct {
	grid        *life.Grid
	patternName string
	fps         int
	running     bool
	generation  int
	lastChanged int
	popHistory  []float64
	initial     []life.CellUpdate
	braille     bool
	showHelp    bool
	width       int
	height      int
}

// NewModel wraps a seeded grid. The initial live cells are remembered so
// the board can be reset.
func NewModel(g *life.Grid, patternName string, fps int) Model {
	if fps <= 0 {
		fps = 15
	}
	return Model{
		grid:        g,
		patternName: patternName,
		fps:         fps,
		running:     true,
		initial:     g.AliveUpdates(),
		popHistory:  make([]float64, 0, historyCapacity),
		width:       80,
		height:      24,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and steps the board.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "c":
			m.grid.Clear()
			m.generation, m.lastChanged = 0, 0
			m.popHistory = m.popHistory[:0]
		case "b":
			m.braille = !m.braille
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
			if msg.Button == tea.MouseButtonLeft {
				m.paint(msg.X, msg.Y)
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.running {
			ups := m.grid.Step()
			m.generation++
			m.lastChanged = len(ups)
			m.popHistory = append(m.popHistory, float64(m.grid.Population()))
			if len(m.popHistory) > historyCapacity {
				m.popHistory = m.popHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// paint toggles the cell under a terminal coordinate, if it lands on the
// board area.
func (m *Model) paint(sx, sy int) {
	x := sx - canvasPadX
	y := sy - canvasPadY
	if m.braille {
		return
	}
	if x < 0 || x >= m.grid.Width() || y < 0 || y >= m.grid.Height() {
		return
	}
	m.grid.Toggle(x+1, y+1)
}

func (m *Model) reset() {
	m.grid.Clear()
	for _, up := range m.initial {
		m.grid.Set(up.Y-1, up.X-1, life.Alive)
	}
	m.generation, m.lastChanged = 0, 0
	m.popHistory = m.popHistory[:0]
}

func (m Model) View() string {
	var board string
	if m.braille {
		board = FromGrid(m.grid).String()
	} else {
		board = m.renderBoard()
	}
	cell := lipgloss.NewStyle().Foreground(CurrentTheme.Cell)
	canvas := canvasStyle.Render(cell.Render(board))

	stats := m.renderStats()
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(stats))
}

func (m Model) renderBoard() string {
	var b strings.Builder
	for i := 0; i < m.grid.Height(); i++ {
		for j := 0; j < m.grid.Width(); j++ {
			if m.grid.State(i, j) == life.Alive {
				b.WriteByte('o')
			} else {
				b.WriteByte(' ')
			}
		}
		if i < m.grid.Height()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(m.patternName)) + "\n")

	status := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Running).Render("● RUNNING")
	if !m.running {
		status = lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Paused).Render("● PAUSED")
	}
	b.WriteString(status + "\n\n")

	pop := m.grid.Population()
	area := m.grid.Width() * m.grid.Height()
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("generation", fmt.Sprintf("%d", m.generation))
	row("population", fmt.Sprintf("%d", pop))
	row("changed", fmt.Sprintf("%d", m.lastChanged))
	row("density", fmt.Sprintf("%.1f%%", 100*float64(pop)/float64(area)))

	if len(m.popHistory) > 1 {
		graph := asciigraph.Plot(m.popHistory,
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("population"),
		)
		b.WriteString(graphStyle.Render(graph) + "\n")
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render("space pause  click paint\nr reset  c clear  b braille\nt theme  q quit"))
	} else {
		b.WriteString(helpStyle.Render("? help  q quit"))
	}
	return b.String()
}
