package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

func intPtr(v int) *int { return &v }

func TestDecodeParams(t *testing.T) {
	tests := []struct {
		name string
		src  map[string][]string
		want mines.GameParams
	}{
		{"empty", map[string][]string{}, mines.Easy},
		{"preset", map[string][]string{"preset": {"hard"}}, mines.Hard},
		{
			"explicit",
			map[string][]string{"width": {"10"}, "height": {"5"}, "mine_count": {"7"}},
			mines.GameParams{Width: 10, Height: 5, MineCount: 7},
		},
		{
			"preset then explicit",
			map[string][]string{"preset": {"medium"}, "mine_count": {"12"}},
			mines.GameParams{Width: 16, Height: 16, MineCount: 12},
		},
		{"unknown keys", map[string][]string{"colour": {"red"}}, mines.Easy},
		{
			"every cell mined",
			map[string][]string{"mine_count": {"64"}},
			mines.GameParams{Width: 8, Height: 8, MineCount: 64},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeParams(tt.src, mines.Easy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestDecodeParamsInvalid(t *testing.T) {
	_, err := DecodeParams(map[string][]string{"width": {"1"}}, mines.Easy)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	_, err = DecodeParams(map[string][]string{"mine_count": {"65"}}, mines.Easy)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	_, err = DecodeParams(map[string][]string{"width": {"wide"}}, mines.Easy)
	assert.Error(t, err)

	_, err = DecodeParams(map[string][]string{"preset": {"insane"}}, mines.Easy)
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MINES_PRESET", "medium")
	t.Setenv("MINES_MINE_COUNT", "20")
	t.Setenv("MINES_SEED", "42")

	o, err := EnvOverride()
	require.NoError(t, err)
	require.NotNil(t, o.Seed)
	assert.Equal(t, uint64(42), *o.Seed)

	p, err := o.Apply(mines.Easy)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 16, Height: 16, MineCount: 20}, p)
}

func TestOverrideEmpty(t *testing.T) {
	assert.True(t, Override{}.Empty())
	assert.False(t, Override{Width: intPtr(3)}.Empty())
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout(`
		*..
		..*
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Width)
	assert.Equal(t, 2, l.Height)
	assert.Equal(t, []mines.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}, l.Mines)
	assert.Equal(t, mines.GameParams{Width: 3, Height: 2, MineCount: 2}, l.Params())

	_, err = ParseLayout("*..\n..")
	assert.Error(t, err)

	_, err = ParseLayout("*.x\n...")
	assert.Error(t, err)

	_, err = ParseLayout("*..")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

const settingsFile = `
preset: medium
mine_count: 30
seed: 7
viewport:
  width: 320
  height: 240
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settingsFile), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 16, Height: 16, MineCount: 30}, s.Params)
	assert.Equal(t, input.Viewport{Width: 320, Height: 240}, s.Viewport)
	require.NotNil(t, s.Seed)
	assert.Equal(t, uint64(7), *s.Seed)
	assert.Nil(t, s.Layout)

	t.Setenv("MINES_WIDTH", "20")
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 20, Height: 16, MineCount: 30}, s.Params)
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.NoError(t, s.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFileUnknownField(t *testing.T) {
	_, err := ParseFile([]byte("colour: red\n"))
	assert.Error(t, err)
}

func TestSettingsBoard(t *testing.T) {
	f, err := ParseFile([]byte("board: |\n  *..\n  ...\n  ..*\n"))
	require.NoError(t, err)

	s := Default()
	require.NoError(t, s.ApplyFile(f))
	assert.Equal(t, mines.GameParams{Width: 3, Height: 3, MineCount: 2}, s.Params)

	g, err := s.NewGame(NewRand(nil))
	require.NoError(t, err)
	c, ok := g.Board().Cell(0, 0)
	require.True(t, ok)
	assert.True(t, c.Mine)
	c, _ = g.Board().Cell(2, 2)
	assert.True(t, c.Mine)

	s.Params.Width = 4
	assert.ErrorIs(t, s.Validate(), ErrLayoutMismatch)

	require.NoError(t, s.Apply(Override{Preset: "easy"}))
	assert.Nil(t, s.Layout)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidateViewport(t *testing.T) {
	s := Default()
	s.Viewport = input.Viewport{Width: 0, Height: 10}
	assert.Error(t, s.Validate())
}

func TestNewRandSeeded(t *testing.T) {
	seed := uint64(99)
	a, b := NewRand(&seed), NewRand(&seed)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	s := Default()
	s.Seed = &seed
	g1, err := s.NewGame(NewRand(s.Seed))
	require.NoError(t, err)
	g2, err := s.NewGame(NewRand(s.Seed))
	require.NoError(t, err)
	assert.Equal(t, g1.Board().String(), g2.Board().String())
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	var buf bytes.Buffer
	NewLogger(&buf).Info("started", "width", 8)
	assert.Contains(t, buf.String(), `"msg":"started"`)
	assert.Contains(t, buf.String(), `"width":8`)

	t.Setenv("DEVELOPMENT", "1")
	buf.Reset()
	logger := NewLogger(&buf)
	logger.Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
