package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("position out of bounds")
	ErrGameOver             = errors.New("game over")
)

// ConfigError describes why a set of game parameters (or an injected layout)
// was rejected. It always matches [ErrInvalidConfiguration] with [errors.Is].
type ConfigError struct {
	Params GameParams
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"%s: %s (width = %d, height = %d, mine_count = %d)",
		ErrInvalidConfiguration, e.Reason,
		e.Params.Width, e.Params.Height, e.Params.MineCount,
	)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
