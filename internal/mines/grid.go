package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what a player is allowed to see of a single cell.
type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	Mine         CellState = 64
	ExplodedMine CellState = 65
	/*
	 * Each item in a [Grid] is one of the following values:
	 *
	 *  - 0 to 8 mean the cell is open and has a surrounding mine
	 *    count.
	 *
	 *  - -1 means the cell is hidden and marked as a mine.
	 *
	 *  - -2 means the cell is hidden.
	 *
	 *  - 64 means the cell has had a mine revealed when the game
	 *    was lost.
	 *
	 *  - 65 means the cell had a mine revealed and this was the
	 *    one the player hit.
	 */
)

func (s CellState) Hidden() bool {
	return s == Unknown || s == Flagged
}

// Number reports the adjacency count of an open safe cell.
func (s CellState) Number() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "-"
	case s == Flagged:
		return "F"
	case s == Mine:
		return "*"
	case s == ExplodedMine:
		return "X"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major snapshot of a board as the player sees it.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			if x > 0 {
				fmt.Fprint(&b, " ")
			}
			fmt.Fprint(&b, g[i].String())
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
