package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"g", Redraw{}},
		{"o 3 4", Open{3, 4}},
		{"  f 0 7 ", Flag{0, 7}},
		{"click 12 30 l", Pointer{input.Event{X: 12, Y: 30, Buttons: input.Primary}}},
		{"click 1 2 r", Pointer{input.Event{X: 1, Y: 2, Buttons: input.Secondary}}},
		{"click 1 2 lr", Pointer{input.Event{X: 1, Y: 2, Buttons: input.Primary | input.Secondary}}},
		{"click 1 2 m", Pointer{input.Event{X: 1, Y: 2, Buttons: input.Middle}}},
		{"n", Restart{Params: map[string][]string{}}},
		{"n hard", Restart{Params: map[string][]string{"preset": {"hard"}}}},
		{
			"n width=10 height=5 mine_count=3",
			Restart{Params: map[string][]string{
				"width": {"10"}, "height": {"5"}, "mine_count": {"3"},
			}},
		},
		{
			"n 10:5:3",
			Restart{Params: map[string][]string{
				"width": {"10"}, "height": {"5"}, "mine_count": {"3"},
			}},
		},
		{"resize 80 24", Resize{input.Viewport{Width: 80, Height: 24}}},
		{"q", Quit{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line   string
		target error
	}{
		{"", ErrUnknownCommand},
		{"x 1 2", ErrUnknownCommand},
		{"o 1", ErrArguments},
		{"q now", ErrArguments},
		{"click 1 2", ErrArguments},
		{"o a 2", nil},
		{"f 1 b", nil},
		{"click 1 2 z", nil},
		{"resize 0 10", nil},
		{"n width=", nil},
		{"n 1:5:3", mines.ErrInvalidConfiguration},
		{"n 5:5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestReadCommands(t *testing.T) {
	out := make(chan Command, 10)
	r := strings.NewReader("o 1 2\n\nbogus\nq\n")
	require.NoError(t, ReadCommands(context.Background(), r, out))
	close(out)

	var got []Command
	for c := range out {
		got = append(got, c)
	}
	require.Len(t, got, 4)
	assert.Equal(t, Open{1, 2}, got[0])
	invalid, ok := got[1].(Invalid)
	require.True(t, ok)
	assert.Equal(t, "bogus", invalid.Line)
	assert.ErrorIs(t, invalid.Err, ErrUnknownCommand)
	assert.Equal(t, Quit{}, got[2])
	assert.Equal(t, Quit{}, got[3])
}

func TestReadCommandsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ReadCommands(ctx, strings.NewReader("g\n"), make(chan Command))
	assert.ErrorIs(t, err, context.Canceled)
}
