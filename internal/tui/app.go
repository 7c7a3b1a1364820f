package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
)

const (
	stateMenu = iota
	stateSim
)

const randomEntry = "random"

type app struct {
	state, cursor int
	entries       []string
	cfg           *config.Config
	width, height int
	sim           Model
}

// NewApp builds the pattern menu. Selecting an entry seeds a board and
// switches to the live view.
func NewApp(cfg *config.Config) *app {
	entries := append([]string{randomEntry}, pattern.List()...)
	return &app{
		state:   stateMenu,
		entries: entries,
		cfg:     cfg,
		width:   80, height: 24,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.state == stateSim {
			newSim, cmd := a.sim.Update(msg)
			a.sim = newSim.(Model)
			return a, cmd
		}
		return a, nil
	default:
		if a.state == stateSim {
			newSim, cmd := a.sim.Update(msg)
			a.sim = newSim.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == stateSim {
		if msg.String() == "esc" {
			a.state = stateMenu
			return a, nil
		}
		newSim, cmd := a.sim.Update(msg)
		a.sim = newSim.(Model)
		return a, cmd
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case "enter", " ":
		cmd := a.start(a.entries[a.cursor])
		return a, cmd
	}
	return a, nil
}

// start seeds a fresh board sized to the window, leaving room for the
// stats panel on the right.
func (a *app) start(name string) tea.Cmd {
	w, h := a.cfg.Width, a.cfg.Height
	if w <= 0 {
		w = a.width - 48
	}
	if h <= 0 {
		h = a.height - 3
	}
	if w < 10 {
		w = 10
	}
	if h < 10 {
		h = 10
	}

	g, err := life.NewGrid(w, h)
	if err != nil {
		return tea.Quit
	}
	if name == randomEntry {
		seed := a.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		pattern.Random(g, a.cfg.Density, seed)
	} else if p := pattern.Get(name); p != nil {
		p.PlaceCentered(g)
	}

	a.sim = NewModel(g, name, a.cfg.FPS)
	a.state = stateSim
	return a.sim.Init()
}

func (a app) View() string {
	if a.state == stateSim {
		return a.sim.View()
	}
	return a.viewMenu()
}

func (a app) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	mark := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)

	b.WriteString("\n\n    " + h.Render("LIFELAB") + "\n    " + sub.Render("cellular automata lab") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range a.entries {
		info := "uniform random soup"
		if p := pattern.Get(name); p != nil {
			info = p.Desc
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", mark.Render("▸"), sel.Render(fmt.Sprintf("%-12s", name)), desc.Render(info)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", sub.Render(fmt.Sprintf("%-12s", name)), sub.Render(info)))
		}
	}
	b.WriteString("\n    " + mark.Render("j/k") + sub.Render(" navigate  ") + mark.Render("enter") + sub.Render(" select  ") + mark.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// Run starts the full-screen app with mouse reporting enabled.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewApp(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
