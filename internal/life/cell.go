package life

// CellState is the two-valued state of a grid cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell holds the live state plus the previous-generation snapshot. The
// snapshot is rewritten at the start of every step and read only while the
// live state is being updated in place.
type Cell struct {
	prev CellState
	cur  CellState
}
