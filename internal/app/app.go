package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var errQuit = errors.New("quit")

// App owns the current session. Run is the only place the session is read
// or changed, so commands are applied strictly in the order they arrive.
type App struct {
	logger     *slog.Logger
	settings   config.Settings
	rnd        *rand.Rand
	dispatcher *input.Dispatcher
	renderer   render.Renderer
	game       *mines.Game
}

func New(logger *slog.Logger, settings config.Settings, renderer render.Renderer) (*App, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	rnd := config.NewRand(settings.Seed)
	game, err := settings.NewGame(rnd)
	if err != nil {
		return nil, fmt.Errorf("unable to start game: %w", err)
	}
	return &App{
		logger:     logger,
		settings:   settings,
		rnd:        rnd,
		dispatcher: input.NewDispatcher(logger, settings.Viewport),
		renderer:   renderer,
		game:       game,
	}, nil
}

func (a *App) Game() *mines.Game {
	return a.game
}

func (a *App) Viewport() input.Viewport {
	return a.dispatcher.Viewport()
}

func (a *App) render() error {
	layout := a.dispatcher.Layout(a.game.Board())
	if err := a.renderer.Render(a.game, layout); err != nil {
		return fmt.Errorf("unable to render: %w", err)
	}
	return nil
}

// Run draws the session, then applies commands until Quit arrives, the
// channel is closed or ctx is done. The board is redrawn after every command.
func (a *App) Run(ctx context.Context, commands <-chan Command) error {
	a.logger.Info("game started",
		slog.String("game", a.game.ID),
		slog.String("params", a.game.Params().Seed()),
		slog.String("viewport", a.Viewport().String()),
	)
	if err := a.render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-commands:
			if !ok {
				return nil
			}
			err := a.handle(c)
			if errors.Is(err, errQuit) {
				a.logger.Info("quit", slog.String("game", a.game.ID))
				return nil
			}
			if err != nil {
				a.logger.Warn("command failed",
					slog.String("command", fmt.Sprintf("%T", c)),
					slog.Any("error", err),
				)
			}
			if err := a.render(); err != nil {
				return err
			}
		}
	}
}
