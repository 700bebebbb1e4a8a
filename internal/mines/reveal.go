package mines

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// open reveals a single hidden cell and keeps the counters in step.
func (g *Game) open(c *Cell) {
	if c.Revealed {
		return
	}
	if c.reveal() {
		g.counters.Flags--
		if c.Mine {
			g.counters.FlaggedMines--
		}
	}
	g.counters.Hidden--
	g.opened = append(g.opened, c.Point)
}

// reveal opens p and reports whether it was a mine. A mine opens every other
// mine on the board with it. A safe cell without mined neighbours opens its
// whole zero region together with the numbered cells bordering it.
func (g *Game) reveal(p Point) (exploded bool) {
	c := g.board.at(p)
	if c.Revealed {
		return false
	}

	if c.Mine {
		g.open(c)
		for i := range g.board.cells {
			if m := &g.board.cells[i]; m.Mine {
				g.open(m)
			}
		}
		return true
	}

	g.open(c)
	if c.Adjacent == 0 {
		g.floodFill(p)
	}
	return false
}

// floodFill walks the zero region around start breadth-first. Only zero cells
// are queued; their numbered neighbours are opened but never expanded.
func (g *Game) floodFill(start Point) {
	var (
		queue   deque.Deque[Point]
		visited = mapset.New[Point]()
	)
	queue.PushBack(start)
	visited.Put(start)

	for queue.Len() > 0 {
		p := queue.PopFront()
		for q := range g.board.Neighbors(p) {
			if visited.Has(q) {
				continue
			}
			visited.Put(q)

			c := g.board.at(q)
			if c.Mine {
				continue
			}
			g.open(c)
			if c.Adjacent == 0 {
				queue.PushBack(q)
			}
		}
	}
}
