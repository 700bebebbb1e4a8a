package mines

import (
	"fmt"
	"math/rand/v2"
)

// NewBoard places exactly p.MineCount mines uniformly at random and computes
// adjacency counts.
func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := p.Unpack()

	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random, swapping each pick out of the live range.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	board := newBoard(width, height, func(i int) bool { return grid[i] })
	Log.Debug("generated board", "params", p.String())
	return board, nil
}

// BoardFromLayout builds a board with mines at exactly the given positions.
func BoardFromLayout(width, height int, mines []Point) (*Board, error) {
	p := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := make([]bool, width*height)
	for _, m := range mines {
		if !p.PointInBounds(m.X, m.Y) {
			return nil, &ConfigError{p, fmt.Sprintf("mine %s out of bounds", m)}
		}
		i := m.Y*width + m.X
		if grid[i] {
			return nil, &ConfigError{p, fmt.Sprintf("duplicate mine at %s", m)}
		}
		grid[i] = true
	}

	return newBoard(width, height, func(i int) bool { return grid[i] }), nil
}
