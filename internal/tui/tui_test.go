package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lifelab/internal/config"
	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected bottom-right dot set, got %x", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("expected empty braille after clear, got %x", c.Grid[0][0])
	}
}

func TestFromGridSize(t *testing.T) {
	g, err := life.NewGrid(7, 9)
	if err != nil {
		t.Fatal(err)
	}
	c := FromGrid(g)
	if c.Width != 4 || c.Height != 3 {
		t.Errorf("expected 4x3 canvas for 7x9 grid, got %dx%d", c.Width, c.Height)
	}
}

func TestNextThemeCycles(t *testing.T) {
	start := CurrentTheme.Name
	seen := map[string]bool{}
	for i := 0; i < len(themes); i++ {
		seen[NextTheme().Name] = true
	}
	if CurrentTheme.Name != start {
		t.Errorf("expected cycle back to %s, got %s", start, CurrentTheme.Name)
	}
	if len(seen) != len(themes) {
		t.Errorf("expected %d distinct themes, got %d", len(themes), len(seen))
	}
}

func blinkerModel(t *testing.T) Model {
	t.Helper()
	g, err := life.NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	pattern.Get("blinker").PlaceCentered(g)
	return NewModel(g, "blinker", 15)
}

func TestModelTickAdvances(t *testing.T) {
	m := blinkerModel(t)

	newM, cmd := m.Update(TickMsg(time.Now()))
	m = newM.(Model)

	if m.generation != 1 {
		t.Errorf("expected generation 1, got %d", m.generation)
	}
	if m.lastChanged != 4 {
		t.Errorf("expected 4 changed cells for a blinker, got %d", m.lastChanged)
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestModelPauseStopsTicks(t *testing.T) {
	m := blinkerModel(t)

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = newM.(Model)
	if m.running {
		t.Fatal("expected paused after space")
	}

	newM, _ = m.Update(TickMsg(time.Now()))
	m = newM.(Model)
	if m.generation != 0 {
		t.Errorf("expected generation unchanged while paused, got %d", m.generation)
	}
}

func TestModelPaintTogglesCell(t *testing.T) {
	m := blinkerModel(t)

	click := tea.MouseMsg{
		X:      canvasPadX,
		Y:      canvasPadY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	newM, _ := m.Update(click)
	m = newM.(Model)

	if m.grid.State(0, 0) != life.Alive {
		t.Error("expected click at board origin to revive cell (0,0)")
	}

	newM, _ = m.Update(click)
	m = newM.(Model)
	if m.grid.State(0, 0) != life.Dead {
		t.Error("expected second click to kill cell (0,0)")
	}
}

func TestModelPaintIgnoresOutside(t *testing.T) {
	m := blinkerModel(t)
	pop := m.grid.Population()

	outside := tea.MouseMsg{
		X:      canvasPadX + m.grid.Width() + 5,
		Y:      canvasPadY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	newM, _ := m.Update(outside)
	m = newM.(Model)

	if m.grid.Population() != pop {
		t.Error("expected click outside the board to leave it untouched")
	}
}

func TestModelResetRestoresSeed(t *testing.T) {
	m := blinkerModel(t)
	want := m.grid.Population()

	for i := 0; i < 3; i++ {
		newM, _ := m.Update(TickMsg(time.Now()))
		m = newM.(Model)
	}

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = newM.(Model)

	if m.generation != 0 {
		t.Errorf("expected generation 0 after reset, got %d", m.generation)
	}
	if m.grid.Population() != want {
		t.Errorf("expected population %d after reset, got %d", want, m.grid.Population())
	}

	ups := m.grid.Step()
	if len(ups) != 4 {
		t.Errorf("expected restored blinker to oscillate, got %d changes", len(ups))
	}
}

func TestModelClear(t *testing.T) {
	m := blinkerModel(t)

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = newM.(Model)

	if m.grid.Population() != 0 {
		t.Errorf("expected empty board after clear, got %d cells", m.grid.Population())
	}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.FPS = 15
	return cfg
}

func TestMenuNavigation(t *testing.T) {
	a := NewApp(testConfig())

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	newA, _ := a.Update(down)
	got := newA.(app)
	if got.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", got.cursor)
	}

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
	newA, _ = got.Update(up)
	got = newA.(app)
	if got.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", got.cursor)
	}
}

func TestMenuSelectStartsSim(t *testing.T) {
	a := NewApp(testConfig())

	// move off "random" onto the first named pattern
	newA, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	got := newA.(app)
	newA, cmd := got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = newA.(app)

	if got.state != stateSim {
		t.Fatal("expected sim state after enter")
	}
	if cmd == nil {
		t.Error("expected tick command on sim start")
	}
	if got.sim.grid.Population() == 0 {
		t.Error("expected seeded board")
	}
}
