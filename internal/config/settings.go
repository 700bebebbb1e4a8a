package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

type ViewportFile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// File is the YAML settings file. Board, when present, fixes the mine
// layout: one line per row, '*' for a mine and '.' for a safe cell.
type File struct {
	Preset    string        `yaml:"preset"`
	Width     *int          `yaml:"width"`
	Height    *int          `yaml:"height"`
	MineCount *int          `yaml:"mine_count"`
	Seed      *uint64       `yaml:"seed"`
	Viewport  *ViewportFile `yaml:"viewport"`
	Board     string        `yaml:"board"`
}

func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read settings file: %w", err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse settings file %s: %w", path, err)
	}
	return f, nil
}

func (f File) Override() Override {
	return Override{
		Preset:    f.Preset,
		Width:     f.Width,
		Height:    f.Height,
		MineCount: f.MineCount,
		Seed:      f.Seed,
	}
}

// Layout is a fixed mine placement.
type Layout struct {
	Width, Height int
	Mines         []mines.Point
}

func (l Layout) Params() mines.GameParams {
	return mines.GameParams{Width: l.Width, Height: l.Height, MineCount: len(l.Mines)}
}

func ParseLayout(board string) (*Layout, error) {
	l := &Layout{}
	for _, line := range strings.Split(board, "\n") {
		row := strings.TrimSpace(line)
		if row == "" {
			continue
		}
		if l.Width == 0 {
			l.Width = len(row)
		} else if len(row) != l.Width {
			return nil, fmt.Errorf("board row %d has %d cells, want %d", l.Height, len(row), l.Width)
		}
		for x, ch := range row {
			switch ch {
			case '*':
				l.Mines = append(l.Mines, mines.Point{X: x, Y: l.Height})
			case '.':
			default:
				return nil, fmt.Errorf("unexpected %q in board row %d", ch, l.Height)
			}
		}
		l.Height++
	}
	if err := l.Params().Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Settings is everything needed to start a session.
type Settings struct {
	Params   mines.GameParams
	Seed     *uint64
	Viewport input.Viewport
	Layout   *Layout
}

func Default() Settings {
	return Settings{
		Params:   mines.Easy,
		Viewport: input.DefaultViewport,
	}
}

// Load builds settings from defaults, then the settings file (if path is not
// empty), then MINES_* env variables.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return s, err
		}
		if err := s.ApplyFile(f); err != nil {
			return s, err
		}
	}
	env, err := EnvOverride()
	if err != nil {
		return s, err
	}
	if err := s.Apply(env); err != nil {
		return s, err
	}
	return s, nil
}

// Apply lays o over the current settings. Any explicit board dimension
// replaces a fixed layout.
func (s *Settings) Apply(o Override) error {
	p, err := o.Apply(s.Params)
	if err != nil {
		return err
	}
	s.Params = p
	if o.Preset != "" || o.Width != nil || o.Height != nil || o.MineCount != nil {
		s.Layout = nil
	}
	if o.Seed != nil {
		s.Seed = o.Seed
	}
	return nil
}

func (s *Settings) ApplyFile(f *File) error {
	if err := s.Apply(f.Override()); err != nil {
		return err
	}
	if f.Viewport != nil {
		s.Viewport = input.Viewport{Width: f.Viewport.Width, Height: f.Viewport.Height}
	}
	if f.Board != "" {
		l, err := ParseLayout(f.Board)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}
		s.Layout = l
		s.Params = l.Params()
	}
	return nil
}

var ErrLayoutMismatch = errors.New("board layout does not match game params")

func (s Settings) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("invalid viewport %s", s.Viewport)
	}
	if s.Layout != nil && s.Layout.Params() != s.Params {
		return fmt.Errorf("%w: %s vs %s", ErrLayoutMismatch, s.Layout.Params(), s.Params)
	}
	return nil
}

// NewGame starts a session from the fixed layout if there is one, otherwise
// from a random board.
func (s Settings) NewGame(r *rand.Rand) (*mines.Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Layout != nil {
		b, err := mines.BoardFromLayout(s.Layout.Width, s.Layout.Height, s.Layout.Mines)
		if err != nil {
			return nil, err
		}
		return mines.NewGameFromBoard(b), nil
	}
	return mines.NewGame(s.Params, r)
}
