package mines

import (
	"fmt"
	"strings"
)

const (
	MinWidth  = 2
	MinHeight = 2
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Capacity() int {
	return p.Width * p.Height
}

// Validate reports a [*ConfigError] for boards that cannot be built. A board
// is never constructed from params that fail here.
func (p GameParams) Validate() error {
	switch {
	case p.Width < MinWidth:
		return &ConfigError{p, fmt.Sprintf("width must be at least %d", MinWidth)}
	case p.Height < MinHeight:
		return &ConfigError{p, fmt.Sprintf("height must be at least %d", MinHeight)}
	case p.MineCount < 0:
		return &ConfigError{p, "mine count must not be negative"}
	case p.MineCount > p.Capacity():
		return &ConfigError{p, "more mines than cells"}
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

var (
	Easy   = GameParams{Width: 8, Height: 8, MineCount: 10}
	Medium = GameParams{Width: 16, Height: 16, MineCount: 40}
	Hard   = GameParams{Width: 25, Height: 25, MineCount: 100}
)

var presets = map[string]GameParams{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

// Preset looks up one of the named difficulty levels (case-insensitive).
func Preset(name string) (GameParams, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}
