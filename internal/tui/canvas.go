package tui

import (
	"strings"

	"github.com/san-kum/lifelab/internal/life"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas packs cells into braille characters, 2 columns by 4 rows per
// character, for viewing grids larger than the terminal.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set marks one cell at sub-pixel position (x, y). The canvas covers
// (Width*2) x (Height*4) cells.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// FromGrid renders every live cell of g onto a fresh canvas sized to fit
// the whole grid.
func FromGrid(g *life.Grid) *Canvas {
	c := NewCanvas((g.Width()+1)/2, (g.Height()+3)/4)
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if g.State(i, j) == life.Alive {
				c.Set(j, i)
			}
		}
	}
	return c
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
