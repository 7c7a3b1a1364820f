package life

import "fmt"

// CellUpdate is one changed cell in 1-based terminal coordinates, the unit
// the renderer consumes. A step that changes K cells yields exactly K
// updates.
type CellUpdate struct {
	X, Y  int
	State CellState
}

// Grid is a toroidal field of cells, indexed [row][col] with row = y-1 and
// col = x-1 relative to terminal coordinates. Dimensions are fixed for the
// grid's lifetime.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// State reports the live state at (row, col), 0-based.
func (g *Grid) State(row, col int) CellState {
	return g.cells[row][col].cur
}

// Set places a cell state directly, wrapping indices toroidally. Used for
// seeding patterns; rendering of seeded cells is the caller's concern.
func (g *Grid) Set(row, col int, s CellState) {
	g.cells[mod(row, g.height)][mod(col, g.width)].cur = s
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Cell{}
		}
	}
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].cur == Alive {
				n++
			}
		}
	}
	return n
}

// Toggle flips the cell at 1-based terminal position (x, y) and returns the
// resulting update. Coordinates outside [1,W]x[1,H] violate the input
// boundary contract and panic.
func (g *Grid) Toggle(x, y int) CellUpdate {
	if x < 1 || x > g.width || y < 1 || y > g.height {
		panic(fmt.Sprintf("life: toggle outside %dx%d grid: (%d, %d)", g.width, g.height, x, y))
	}
	c := &g.cells[y-1][x-1]
	if c.cur == Alive {
		c.cur = Dead
	} else {
		c.cur = Alive
	}
	return CellUpdate{X: x, Y: y, State: c.cur}
}

// AliveUpdates returns one update per live cell, for painting a freshly
// seeded grid.
func (g *Grid) AliveUpdates() []CellUpdate {
	var ups []CellUpdate
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].cur == Alive {
				ups = append(ups, CellUpdate{X: j + 1, Y: i + 1, State: Alive})
			}
		}
	}
	return ups
}

// mod is a floored modulo: the result is always in [0, n), so index -1 maps
// to n-1 rather than a negative value.
func mod(a, n int) int {
	return (a%n + n) % n
}

// liveNeighbors counts live cells in the 8 positions around (row, col),
// reading the previous-generation snapshot with toroidal wraparound.
func (g *Grid) liveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[mod(row+dr, g.height)][mod(col+dc, g.width)].prev == Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the grid one generation and returns the minimal diff: only
// cells whose state changed appear in the result. The rule reads the
// previous generation exclusively, so in-place writes cannot leak into
// neighbor counts.
func (g *Grid) Step() []CellUpdate {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j].prev = g.cells[i][j].cur
		}
	}

	var ups []CellUpdate
	for i := range g.cells {
		for j := range g.cells[i] {
			c := &g.cells[i][j]
			n := g.liveNeighbors(i, j)
			switch {
			case c.prev == Alive && n < 2: // underpopulation
				c.cur = Dead
			case c.prev == Alive && n > 3: // overpopulation
				c.cur = Dead
			case c.prev == Dead && n == 3: // birth
				c.cur = Alive
			}
			if c.cur != c.prev {
				ups = append(ups, CellUpdate{X: j + 1, Y: i + 1, State: c.cur})
			}
		}
	}
	return ups
}
