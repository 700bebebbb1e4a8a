package mines

import (
	"fmt"
	"iter"
	"strings"
)

// Board is a fixed-size, row-major grid of cells. Its exported API is
// read-only; cells change only through a [Game].
type Board struct {
	width, height int
	mineCount     int
	cells         []Cell
}

func newBoard(width, height int, mine func(i int) bool) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i] = Cell{
			Point: Point{X: i % width, Y: i / width},
			Mine:  mine(i),
		}
		if b.cells[i].Mine {
			b.mineCount++
		}
	}
	b.countAdjacent()
	return b
}

func (b *Board) Width() int     { return b.width }
func (b *Board) Height() int    { return b.height }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) Params() GameParams {
	return GameParams{Width: b.width, Height: b.height, MineCount: b.mineCount}
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(p Point) int {
	return p.Y*b.width + p.X
}

// Cell returns a copy of the cell at x, y.
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

func (b *Board) at(p Point) *Cell {
	return &b.cells[b.index(p)]
}

// All yields copies of every cell in row-major order.
func (b *Board) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for _, c := range b.cells {
			if !yield(c.Point, c) {
				return
			}
		}
	}
}

// Neighbors yields the up to 8 in-bounds positions around p. There is no
// wraparound at the edges.
func (b *Board) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if !b.InBounds(x, y) {
					continue
				}
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (b *Board) countAdjacent() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine {
			continue
		}
		n := 0
		for q := range b.Neighbors(c.Point) {
			if b.at(q).Mine {
				n++
			}
		}
		c.Adjacent = n
	}
}

func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		grid[i] = c.State()
	}
	return grid
}

// String prints the real layout, mines included. Debug only.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			c := b.cells[y*b.width+x]
			if x > 0 {
				fmt.Fprint(&sb, " ")
			}
			if c.Mine {
				fmt.Fprint(&sb, "*")
			} else {
				fmt.Fprint(&sb, c.Adjacent)
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
