package input

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Button is the set of pointer buttons held down during an event.
type Button uint8

const (
	Primary Button = 1 << iota
	Middle
	Secondary
)

func (b Button) String() string {
	var names []string
	if b&Primary != 0 {
		names = append(names, "primary")
	}
	if b&Middle != 0 {
		names = append(names, "middle")
	}
	if b&Secondary != 0 {
		names = append(names, "secondary")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// Event is a raw pointer press in viewport coordinates.
type Event struct {
	X, Y    int
	Buttons Button
}

type Action uint8

const (
	None Action = iota
	Reveal
	ToggleFlag
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	default:
		return "none"
	}
}

// Resolve picks the action for a button combination. The primary button
// takes precedence when several are held.
func Resolve(b Button) Action {
	switch {
	case b&Primary != 0:
		return Reveal
	case b&Secondary != 0:
		return ToggleFlag
	default:
		return None
	}
}

type Result struct {
	Action  Action
	Point   mines.Point
	Handled bool // false when the event was ignored or suppressed
	Status  mines.Status
}

// Dispatcher turns pointer events into game actions. The layout is derived
// from the current viewport on every event.
type Dispatcher struct {
	logger   *slog.Logger
	viewport Viewport
}

func NewDispatcher(logger *slog.Logger, v Viewport) *Dispatcher {
	return &Dispatcher{logger: logger, viewport: v}
}

func (d *Dispatcher) Viewport() Viewport {
	return d.viewport
}

func (d *Dispatcher) SetViewport(v Viewport) {
	d.viewport = v
}

func (d *Dispatcher) Layout(b *mines.Board) Layout {
	return NewLayout(d.viewport, b.Width(), b.Height())
}

func (d *Dispatcher) Dispatch(g *mines.Game, ev Event) (Result, error) {
	res := Result{Action: Resolve(ev.Buttons), Status: g.Status()}
	if res.Action == None {
		return res, nil
	}

	p, ok := d.Layout(g.Board()).Cell(ev.X, ev.Y)
	if !ok {
		d.logger.Debug("pointer outside board",
			slog.Int("x", ev.X), slog.Int("y", ev.Y),
			slog.String("viewport", d.viewport.String()),
		)
		return res, nil
	}
	res.Point = p

	c, _ := g.Board().Cell(p.X, p.Y)
	if g.Over() || !c.State().Hidden() {
		d.logger.Debug("suppressed "+res.Action.String(),
			slog.String("at", p.String()),
			slog.String("cell", c.State().String()),
			slog.String("status", g.Status().String()),
		)
		return res, nil
	}

	var err error
	switch res.Action {
	case Reveal:
		res.Status, err = g.Reveal(p.X, p.Y)
	case ToggleFlag:
		res.Status, err = g.ToggleFlag(p.X, p.Y)
	}
	if err != nil {
		return res, fmt.Errorf("unable to %s %s: %w", res.Action, p, err)
	}
	res.Handled = true

	d.logger.Debug(res.Action.String(),
		slog.String("game", g.ID),
		slog.String("at", p.String()),
		slog.String("buttons", ev.Buttons.String()),
		slog.String("status", res.Status.String()),
	)
	return res, nil
}
