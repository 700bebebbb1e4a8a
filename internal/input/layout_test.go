package input

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestLayoutCell(t *testing.T) {
	l := NewLayout(DefaultViewport, 8, 8)
	assert.Equal(t, 87.5, l.TileWidth)
	assert.Equal(t, 87.5, l.TileHeight)

	tests := []struct {
		x, y int
		want mines.Point
		ok   bool
	}{
		{0, 0, mines.Point{X: 0, Y: 0}, true},
		{87, 87, mines.Point{X: 0, Y: 0}, true},
		{88, 0, mines.Point{X: 1, Y: 0}, true},
		{175, 350, mines.Point{X: 2, Y: 4}, true},
		{699, 699, mines.Point{X: 7, Y: 7}, true},
		{700, 0, mines.Point{}, false},
		{0, 700, mines.Point{}, false},
		{-1, 10, mines.Point{}, false},
	}
	for _, test := range tests {
		p, ok := l.Cell(test.x, test.y)
		assert.Equal(t, test.ok, ok, "%d:%d", test.x, test.y)
		if test.ok {
			assert.Equal(t, test.want, p, "%d:%d", test.x, test.y)
		}
	}
}

func TestLayoutRect(t *testing.T) {
	l := NewLayout(DefaultViewport, 8, 8)
	assert.Equal(t, image.Rect(0, 0, 88, 88), l.Rect(mines.Point{X: 0, Y: 0}))
	assert.Equal(t, image.Rect(88, 175, 175, 263), l.Rect(mines.Point{X: 1, Y: 2}))
	assert.Equal(t, image.Rect(613, 613, 700, 700), l.Rect(mines.Point{X: 7, Y: 7}))
}

func TestLayoutCenterRoundTrip(t *testing.T) {
	tests := []struct {
		viewport      Viewport
		columns, rows int
	}{
		{DefaultViewport, 8, 8},
		{DefaultViewport, 25, 25},
		{Viewport{Width: 80, Height: 40}, 16, 16},
		{Viewport{Width: 101, Height: 53}, 7, 9},
	}
	for _, test := range tests {
		l := NewLayout(test.viewport, test.columns, test.rows)
		for y := range test.rows {
			for x := range test.columns {
				want := mines.Point{X: x, Y: y}
				c := l.Center(want)
				got, ok := l.Cell(c.X, c.Y)
				assert.True(t, ok)
				assert.Equal(t, want, got, "viewport %s", test.viewport)
				assert.True(t, c.In(l.Rect(want)))
			}
		}
	}
}
