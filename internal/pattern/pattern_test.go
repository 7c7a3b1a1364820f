package pattern

import (
	"testing"

	"github.com/san-kum/lifelab/internal/life"
)

func TestParse(t *testing.T) {
	p, err := Parse("test", "!comment\n.O.\nO.O")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := [][2]int{{0, 1}, {1, 0}, {1, 2}}
	if len(p.Cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(p.Cells))
	}
	for i, c := range want {
		if p.Cells[i] != c {
			t.Errorf("cell %d: expected %v, got %v", i, c, p.Cells[i])
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad character", ".O?\n"},
		{"no live cells", "...\n..."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse("bad", tt.text); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("expected built-in patterns")
	}
	for _, name := range names {
		p := Get(name)
		if p == nil {
			t.Errorf("listed pattern %s not found", name)
			continue
		}
		if len(p.Cells) == 0 {
			t.Errorf("pattern %s has no cells", name)
		}
	}
	if Get("nonexistent") != nil {
		t.Error("expected nil for unknown pattern")
	}
}

func TestBlockIsStillLife(t *testing.T) {
	g, _ := life.NewGrid(8, 8)
	Get("block").PlaceCentered(g)

	if ups := g.Step(); len(ups) != 0 {
		t.Errorf("block changed %d cells after a step", len(ups))
	}
}

func TestGliderTravels(t *testing.T) {
	g, _ := life.NewGrid(16, 16)
	Get("glider").Place(g, 2, 2)

	before := g.Population()
	for i := 0; i < 4; i++ {
		g.Step()
	}
	// After a full period the glider has moved one cell diagonally with
	// its population intact.
	if g.Population() != before {
		t.Errorf("glider population changed: %d -> %d", before, g.Population())
	}
	for _, p := range [][2]int{{3, 4}, {4, 5}, {5, 3}, {5, 4}, {5, 5}} {
		if g.State(p[0], p[1]) != life.Alive {
			t.Errorf("expected glider cell at (%d,%d) after one period", p[0], p[1])
		}
	}
}

func TestPlaceWrapsAtEdge(t *testing.T) {
	g, _ := life.NewGrid(6, 6)
	Get("block").Place(g, 5, 5)

	alive := [][2]int{{5, 5}, {5, 0}, {0, 5}, {0, 0}}
	for _, p := range alive {
		if g.State(p[0], p[1]) != life.Alive {
			t.Errorf("expected wrapped cell (%d,%d) alive", p[0], p[1])
		}
	}
}

func TestRandomReproducible(t *testing.T) {
	g1, _ := life.NewGrid(20, 20)
	g2, _ := life.NewGrid(20, 20)
	Random(g1, 0.3, 42)
	Random(g2, 0.3, 42)

	if g1.Population() == 0 {
		t.Fatal("expected some live cells at density 0.3")
	}
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if g1.State(i, j) != g2.State(i, j) {
				t.Fatalf("same seed diverged at (%d,%d)", i, j)
			}
		}
	}
}
