package input

import (
	"fmt"
	"image"
	"math"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Viewport is the drawable area in pixels (or character cells for a
// terminal).
type Viewport struct {
	Width, Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// DefaultViewport matches the classic 700x700 window.
var DefaultViewport = Viewport{Width: 700, Height: 700}

// Layout maps between viewport pixels and board positions. Tile sizes are
// fractional whenever the viewport does not divide evenly by the board.
type Layout struct {
	Columns, Rows         int
	TileWidth, TileHeight float64
}

func NewLayout(v Viewport, columns, rows int) Layout {
	return Layout{
		Columns:    columns,
		Rows:       rows,
		TileWidth:  float64(v.Width) / float64(columns),
		TileHeight: float64(v.Height) / float64(rows),
	}
}

// Cell floor-divides a pointer position by the tile size. Positions outside
// the board are reported with ok == false.
func (l Layout) Cell(px, py int) (p mines.Point, ok bool) {
	if l.TileWidth <= 0 || l.TileHeight <= 0 || px < 0 || py < 0 {
		return p, false
	}
	p.X = int(math.Floor(float64(px) / l.TileWidth))
	p.Y = int(math.Floor(float64(py) / l.TileHeight))
	return p, p.X < l.Columns && p.Y < l.Rows
}

// Rect is the screen area covered by p.
func (l Layout) Rect(p mines.Point) image.Rectangle {
	return image.Rect(
		int(math.Ceil(float64(p.X)*l.TileWidth)),
		int(math.Ceil(float64(p.Y)*l.TileHeight)),
		int(math.Ceil(float64(p.X+1)*l.TileWidth)),
		int(math.Ceil(float64(p.Y+1)*l.TileHeight)),
	)
}

// Center is a pointer position that maps back to p.
func (l Layout) Center(p mines.Point) image.Point {
	r := l.Rect(p)
	return image.Pt((r.Min.X+r.Max.X-1)/2, (r.Min.Y+r.Max.Y-1)/2)
}
