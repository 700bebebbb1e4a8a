package mines

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// Cell is a single board position. Position, Mine and Adjacent are fixed when
// the board is built; Revealed only ever goes from false to true. Adjacent is
// meaningless for mines.
type Cell struct {
	Point
	Mine     bool
	Adjacent int
	Revealed bool
	Flagged  bool
}

// State maps the cell to what a renderer may show. Flags on revealed cells
// are ignored.
func (c Cell) State() CellState {
	switch {
	case c.Revealed && c.Mine:
		return Mine
	case c.Revealed:
		return CellState(c.Adjacent)
	case c.Flagged:
		return Flagged
	default:
		return Unknown
	}
}

func (c *Cell) reveal() (released bool) {
	c.Revealed = true
	if c.Flagged {
		c.Flagged = false
		return true
	}
	return false
}
