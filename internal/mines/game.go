package mines

import (
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

var Log *slog.Logger = slog.Default()

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Counters are the per-session aggregates used for win detection.
type Counters struct {
	Hidden       int // cells not yet revealed
	FlaggedMines int // cells that are both mined and flagged
	Flags        int // flagged cells, mined or not
}

// Game is one play session: a board plus everything that changes while it is
// played. Nothing here is shared between sessions.
type Game struct {
	ID       string
	board    *Board
	counters Counters
	status   Status
	exploded *Point
	opened   []Point
}

func NewGame(p GameParams, r *rand.Rand) (*Game, error) {
	board, err := NewBoard(p, r)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board), nil
}

func NewGameFromBoard(b *Board) *Game {
	g := &Game{
		ID:    uuid.NewString(),
		board: b,
	}
	for _, c := range b.cells {
		if !c.Revealed {
			g.counters.Hidden++
		}
		if c.Flagged {
			g.counters.Flags++
			if c.Mine {
				g.counters.FlaggedMines++
			}
		}
	}
	Log.Debug("new game", "game", g.ID, "params", b.Params().String())
	return g
}

func (g *Game) Board() *Board       { return g.board }
func (g *Game) Params() GameParams  { return g.board.Params() }
func (g *Game) Counters() Counters  { return g.counters }
func (g *Game) Status() Status      { return g.status }
func (g *Game) Over() bool          { return g.status.Terminal() }
func (g *Game) FlagsLeft() int      { return g.board.mineCount - g.counters.Flags }
func (g *Game) LastOpened() []Point { return slices.Clone(g.opened) }

// Exploded returns the mine that ended the game, if any.
func (g *Game) Exploded() (Point, bool) {
	if g.exploded == nil {
		return Point{}, false
	}
	return *g.exploded, true
}

// Grid is the board as the player sees it, with the fatal mine marked.
func (g *Game) Grid() Grid {
	grid := g.board.Grid()
	if g.exploded != nil {
		grid[g.board.index(*g.exploded)] = ExplodedMine
	}
	return grid
}

func (g *Game) check(x, y int) error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	if !g.board.InBounds(x, y) {
		return ErrOutOfBounds
	}
	return nil
}

// Reveal opens the cell at x, y. Revealing an open cell changes nothing.
func (g *Game) Reveal(x, y int) (Status, error) {
	if err := g.check(x, y); err != nil {
		return g.status, err
	}
	g.opened = g.opened[:0]

	p := Point{X: x, Y: y}
	if g.reveal(p) {
		g.exploded = &p
		g.status = Lost
		Log.Debug("mine hit", "game", g.ID, "at", p.String())
		return g.status, nil
	}

	g.evaluate()
	Log.Debug("revealed",
		"game", g.ID, "at", p.String(),
		"opened", len(g.opened), "status", g.status.String(),
	)
	return g.status, nil
}

// ToggleFlag flags or unflags a hidden cell. Flagging is refused once as
// many flags as mines are on the board; revealed cells are left alone.
func (g *Game) ToggleFlag(x, y int) (Status, error) {
	if err := g.check(x, y); err != nil {
		return g.status, err
	}
	g.opened = g.opened[:0]

	c := g.board.at(Point{X: x, Y: y})
	switch {
	case c.Revealed:
	case c.Flagged:
		c.Flagged = false
		g.counters.Flags--
		if c.Mine {
			g.counters.FlaggedMines--
		}
	case g.counters.Flags < g.board.mineCount:
		c.Flagged = true
		g.counters.Flags++
		if c.Mine {
			g.counters.FlaggedMines++
		}
	}

	g.evaluate()
	return g.status, nil
}

/*
 * Either condition wins on its own: every safe cell open, or every mine
 * flagged. The second does not require the flag count to match the mine
 * count.
 */
func (g *Game) evaluate() {
	if g.status.Terminal() {
		return
	}
	mines := g.board.mineCount
	if g.counters.Hidden == mines || g.counters.FlaggedMines == mines {
		g.status = Won
	}
}
