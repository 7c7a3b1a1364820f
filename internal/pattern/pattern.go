// Package pattern holds named Life seed patterns and a plaintext parser
// for the common ".cells" notation ('.' dead, 'O' alive, '!' comments).
package pattern

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/san-kum/lifelab/internal/life"
)

// Pattern is a set of live-cell offsets relative to its own top-left
// corner.
type Pattern struct {
	Name  string
	Desc  string
	Cells [][2]int // row, col
}

// Size returns the bounding box of the pattern.
func (p Pattern) Size() (rows, cols int) {
	for _, c := range p.Cells {
		if c[0]+1 > rows {
			rows = c[0] + 1
		}
		if c[1]+1 > cols {
			cols = c[1] + 1
		}
	}
	return rows, cols
}

// Place seeds the pattern onto the grid with its top-left corner at
// (row, col). Offsets wrap toroidally, so a pattern placed near an edge
// continues on the opposite side.
func (p Pattern) Place(g *life.Grid, row, col int) {
	for _, c := range p.Cells {
		g.Set(row+c[0], col+c[1], life.Alive)
	}
}

// PlaceCentered seeds the pattern around the middle of the grid.
func (p Pattern) PlaceCentered(g *life.Grid) {
	rows, cols := p.Size()
	p.Place(g, (g.Height()-rows)/2, (g.Width()-cols)/2)
}

// Parse reads plaintext pattern notation: one row per line, 'O' (or '*')
// for a live cell, anything after '!' is a comment.
func Parse(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, [2]int{row, col})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("pattern %s: unexpected character %q at row %d col %d", name, ch, row, col)
			}
		}
		row++
	}
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern %s: no live cells", name)
	}
	return p, nil
}

func mustParse(name, desc, text string) Pattern {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	p.Desc = desc
	return p
}

var builtins = map[string]Pattern{
	"block": mustParse("block", "2x2 still life", `
OO
OO`[1:]),
	"blinker": mustParse("blinker", "period-2 oscillator", `
OOO`[1:]),
	"toad": mustParse("toad", "period-2 oscillator", `
.OOO
OOO.`[1:]),
	"beacon": mustParse("beacon", "period-2 oscillator", `
OO..
OO..
..OO
..OO`[1:]),
	"glider": mustParse("glider", "diagonal spaceship", `
.O.
..O
OOO`[1:]),
	"lwss": mustParse("lwss", "lightweight spaceship", `
.O..O
O....
O...O
OOOO.`[1:]),
	"pulsar": mustParse("pulsar", "period-3 oscillator", `
..OOO...OOO..
.............
O....O.O....O
O....O.O....O
O....O.O....O
..OOO...OOO..
.............
..OOO...OOO..
O....O.O....O
O....O.O....O
O....O.O....O
.............
..OOO...OOO..`[1:]),
	"rpentomino": mustParse("rpentomino", "long-lived methuselah", `
.OO
OO.
.O.`[1:]),
	"gosper": mustParse("gosper", "glider gun", `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`[1:]),
}

// Get returns a built-in pattern by name, or nil if it does not exist.
func Get(name string) *Pattern {
	if p, ok := builtins[name]; ok {
		return &p
	}
	return nil
}

// List returns the built-in pattern names, sorted.
func List() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Random fills the grid with live cells at the given density using a
// seeded source, so a run is reproducible from its seed.
func Random(g *life.Grid, density float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if rng.Float64() < density {
				g.Set(i, j, life.Alive)
			}
		}
	}
}
