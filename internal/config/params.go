package config

import (
	"fmt"
	"os"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Override is a partial set of game settings. Unset fields keep whatever
// they are applied on top of.
type Override struct {
	Preset    string  `schema:"preset"`
	Width     *int    `schema:"width"`
	Height    *int    `schema:"height"`
	MineCount *int    `schema:"mine_count"`
	Seed      *uint64 `schema:"seed"`
}

func (o Override) Empty() bool {
	return o.Preset == "" && o.Width == nil && o.Height == nil &&
		o.MineCount == nil && o.Seed == nil
}

// Apply lays the override over base. A preset replaces all three dimensions
// before any explicit width, height or mine count is applied.
func (o Override) Apply(base mines.GameParams) (mines.GameParams, error) {
	p := base
	if o.Preset != "" {
		preset, ok := mines.Preset(o.Preset)
		if !ok {
			return p, fmt.Errorf("unknown preset %q", o.Preset)
		}
		p = preset
	}
	if o.Width != nil {
		p.Width = *o.Width
	}
	if o.Height != nil {
		p.Height = *o.Height
	}
	if o.MineCount != nil {
		p.MineCount = *o.MineCount
	}
	return p, nil
}

// DecodeOverride reads url-encoded style key/value settings
// (preset, width, height, mine_count, seed).
func DecodeOverride(src map[string][]string) (Override, error) {
	var o Override
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&o, src)
	return o, err
}

// DecodeParams decodes key/value settings over base and validates the
// result, so invalid settings never reach board construction.
func DecodeParams(src map[string][]string, base mines.GameParams) (mines.GameParams, error) {
	o, err := DecodeOverride(src)
	if err != nil {
		return base, fmt.Errorf("unable to decode game params: %w", err)
	}
	p, err := o.Apply(base)
	if err != nil {
		return base, err
	}
	if err := p.Validate(); err != nil {
		return base, err
	}
	return p, nil
}

var envKeys = map[string]string{
	"MINES_PRESET":     "preset",
	"MINES_WIDTH":      "width",
	"MINES_HEIGHT":     "height",
	"MINES_MINE_COUNT": "mine_count",
	"MINES_SEED":       "seed",
}

// EnvOverride collects MINES_* env variables.
func EnvOverride() (Override, error) {
	src := make(map[string][]string)
	for env, key := range envKeys {
		if v, ok := os.LookupEnv(env); ok {
			src[key] = []string{v}
		}
	}
	o, err := DecodeOverride(src)
	if err != nil {
		return o, fmt.Errorf("invalid MINES_* env variables: %w", err)
	}
	return o, nil
}
