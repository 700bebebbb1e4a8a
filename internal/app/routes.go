package app

import (
	"fmt"
	"log/slog"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

func (a *App) handle(c Command) error {
	switch c := c.(type) {
	case Quit:
		return errQuit
	case Redraw:
		return nil
	case Resize:
		a.dispatcher.SetViewport(c.Viewport)
		a.logger.Debug("resized", slog.String("viewport", c.Viewport.String()))
		return nil
	case Restart:
		return a.restart(c)
	case Invalid:
		return fmt.Errorf("%q: %w", c.Line, c.Err)
	}

	if a.game.Over() {
		a.logger.Debug("ignored command on finished game",
			slog.String("command", fmt.Sprintf("%T", c)),
			slog.String("status", a.game.Status().String()),
		)
		return nil
	}

	switch c := c.(type) {
	case Pointer:
		return a.pointer(c.Event)
	case Open:
		return a.at(c.X, c.Y, input.Reveal)
	case Flag:
		return a.at(c.X, c.Y, input.ToggleFlag)
	}
	return fmt.Errorf("unsupported command %T", c)
}

func (a *App) pointer(ev input.Event) error {
	res, err := a.dispatcher.Dispatch(a.game, ev)
	if err != nil {
		return err
	}
	if res.Handled && res.Status.Terminal() {
		a.logger.Info("game over",
			slog.String("game", a.game.ID),
			slog.String("status", res.Status.String()),
		)
	}
	return nil
}

// at applies a reveal or flag straight to the cell at x, y. Revealed cells
// are left alone, as they are for pointer presses.
func (a *App) at(x, y int, action input.Action) error {
	c, ok := a.game.Board().Cell(x, y)
	if !ok {
		return fmt.Errorf("%w: %d:%d", mines.ErrOutOfBounds, x, y)
	}
	if !c.State().Hidden() {
		a.logger.Debug("suppressed "+action.String(), slog.String("at", c.Point.String()))
		return nil
	}

	var (
		status mines.Status
		err    error
	)
	switch action {
	case input.Reveal:
		status, err = a.game.Reveal(x, y)
	case input.ToggleFlag:
		status, err = a.game.ToggleFlag(x, y)
	}
	if err != nil {
		return fmt.Errorf("unable to %s %s: %w", action, c.Point, err)
	}
	if status.Terminal() {
		a.logger.Info("game over",
			slog.String("game", a.game.ID),
			slog.String("status", status.String()),
		)
	}
	return nil
}

// restart begins a new session. Without params a fixed board layout is
// replayed; any explicit setting switches to a random board.
func (a *App) restart(c Restart) error {
	o, err := config.DecodeOverride(c.Params)
	if err != nil {
		return fmt.Errorf("unable to decode restart params: %w", err)
	}
	if o.Seed != nil {
		a.rnd = config.NewRand(o.Seed)
	}

	settings := a.settings
	if !o.Empty() {
		p, err := config.DecodeParams(c.Params, a.game.Params())
		if err != nil {
			return err
		}
		settings.Params = p
		settings.Layout = nil
	}
	settings.Viewport = a.Viewport()

	game, err := settings.NewGame(a.rnd)
	if err != nil {
		return err
	}
	a.settings = settings
	a.game = game
	a.logger.Info("game restarted",
		slog.String("game", game.ID),
		slog.String("params", game.Params().Seed()),
	)
	return nil
}
