package life

import (
	"testing"
)

func TestNewGridInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.w, tt.h); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestToroidalNeighbors(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}

	// The full wrap-around neighbor set of cell (0,0) on a 4x4 torus.
	positions := [][2]int{
		{3, 3}, {3, 0}, {3, 1},
		{0, 3}, {0, 1},
		{1, 3}, {1, 0}, {1, 1},
	}
	for _, p := range positions {
		g.cells[p[0]][p[1]].prev = Alive
	}

	if n := g.liveNeighbors(0, 0); n != 8 {
		t.Errorf("expected 8 wrapped neighbors, got %d", n)
	}
}

func TestToroidalCornerWrap(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.cells[4][4].prev = Alive

	if n := g.liveNeighbors(0, 0); n != 1 {
		t.Errorf("corner (4,4) should wrap to neighbor of (0,0), got %d", n)
	}
	if n := g.liveNeighbors(2, 2); n != 0 {
		t.Errorf("center should not see the far corner, got %d", n)
	}
}

func TestFlooredModulo(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{-1, 5, 4},
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{6, 5, 1},
		{-5, 5, 0},
		{-6, 5, 4},
	}

	for _, tt := range tests {
		if got := mod(tt.a, tt.n); got != tt.want {
			t.Errorf("mod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestRuleBranches(t *testing.T) {
	offsets := [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}

	tests := []struct {
		name      string
		center    CellState
		neighbors int
		want      CellState
	}{
		{"alive with 0 dies", Alive, 0, Dead},
		{"alive with 1 dies", Alive, 1, Dead},
		{"alive with 2 survives", Alive, 2, Alive},
		{"alive with 3 survives", Alive, 3, Alive},
		{"alive with 4 dies", Alive, 4, Dead},
		{"alive with 8 dies", Alive, 8, Dead},
		{"dead with 3 born", Dead, 3, Alive},
		{"dead with 2 stays dead", Dead, 2, Dead},
		{"dead with 4 stays dead", Dead, 4, Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := NewGrid(7, 7)
			g.Set(3, 3, tt.center)
			for i := 0; i < tt.neighbors; i++ {
				g.Set(3+offsets[i][0], 3+offsets[i][1], Alive)
			}

			g.Step()

			if got := g.State(3, 3); got != tt.want {
				t.Errorf("center: expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBlockStillLife(t *testing.T) {
	g, _ := NewGrid(6, 6)
	for _, p := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		g.Set(p[0], p[1], Alive)
	}

	for i := 0; i < 10; i++ {
		ups := g.Step()
		if len(ups) != 0 {
			t.Fatalf("step %d: block produced %d updates, want 0", i+1, len(ups))
		}
	}

	if pop := g.Population(); pop != 4 {
		t.Errorf("expected population 4, got %d", pop)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g, _ := NewGrid(5, 5)
	// Horizontal blinker through the center.
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		g.Set(p[0], p[1], Alive)
	}

	vertical := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	horizontal := [][2]int{{2, 1}, {2, 2}, {2, 3}}

	g.Step()
	assertOnlyAlive(t, g, vertical)

	g.Step()
	assertOnlyAlive(t, g, horizontal)
}

func assertOnlyAlive(t *testing.T, g *Grid, alive [][2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(alive))
	for _, p := range alive {
		want[p] = true
	}
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			got := g.State(i, j)
			if want[[2]int{i, j}] && got != Alive {
				t.Errorf("cell (%d,%d): expected alive", i, j)
			}
			if !want[[2]int{i, j}] && got != Dead {
				t.Errorf("cell (%d,%d): expected dead", i, j)
			}
		}
	}
}

func TestStepDiffOnly(t *testing.T) {
	g, _ := NewGrid(5, 5)
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		g.Set(p[0], p[1], Alive)
	}

	// Blinker flip: ends die at (2,1),(2,3), births at (1,2),(3,2).
	// The unchanged center must not appear in the diff.
	ups := g.Step()
	if len(ups) != 4 {
		t.Fatalf("expected exactly 4 updates, got %d", len(ups))
	}
	for _, u := range ups {
		if u.X == 3 && u.Y == 3 {
			t.Error("unchanged center cell appeared in the diff")
		}
	}

	births, deaths := 0, 0
	for _, u := range ups {
		if u.State == Alive {
			births++
		} else {
			deaths++
		}
	}
	if births != 2 || deaths != 2 {
		t.Errorf("expected 2 births and 2 deaths, got %d and %d", births, deaths)
	}
}

func TestToggleIdempotentPair(t *testing.T) {
	g, _ := NewGrid(8, 8)
	const x, y = 3, 4

	first := g.Toggle(x, y)
	if first.State != Alive {
		t.Errorf("first toggle: expected alive, got %s", first.State)
	}
	second := g.Toggle(x, y)
	if second.State != Dead {
		t.Errorf("second toggle: expected dead, got %s", second.State)
	}
	if g.State(y-1, x-1) != Dead { // Toggle is 1-based (x, y); State is 0-based (row, col)
		t.Error("cell not restored after paired toggles")
	}
	if pop := g.Population(); pop != 0 {
		t.Errorf("expected empty grid, got population %d", pop)
	}
}

func TestToggleOutOfRange(t *testing.T) {
	g, _ := NewGrid(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"x too small", 0, 1},
		{"y too small", 1, 0},
		{"x too large", 5, 1},
		{"y too large", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for out-of-range toggle")
				}
			}()
			g.Toggle(tt.x, tt.y)
		})
	}
}

func TestAliveUpdates(t *testing.T) {
	g, _ := NewGrid(6, 4)
	g.Set(0, 0, Alive)
	g.Set(3, 5, Alive)

	ups := g.AliveUpdates()
	if len(ups) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(ups))
	}
	if ups[0].X != 1 || ups[0].Y != 1 {
		t.Errorf("expected (1,1), got (%d,%d)", ups[0].X, ups[0].Y)
	}
	if ups[1].X != 6 || ups[1].Y != 4 {
		t.Errorf("expected (6,4), got (%d,%d)", ups[1].X, ups[1].Y)
	}
}
