package render

import (
	"image"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Tile is everything a renderer needs to draw one cell.
type Tile struct {
	mines.Point
	Rect  image.Rectangle
	State mines.CellState
}

// Renderer draws a game. Implementations must not change game state.
type Renderer interface {
	Render(g *mines.Game, l input.Layout) error
}

// Tiles snapshots the game in row-major order.
func Tiles(g *mines.Game, l input.Layout) []Tile {
	grid := g.Grid()
	width := g.Board().Width()
	tiles := make([]Tile, len(grid))
	for i, s := range grid {
		p := mines.Point{X: i % width, Y: i / width}
		tiles[i] = Tile{Point: p, Rect: l.Rect(p), State: s}
	}
	return tiles
}
