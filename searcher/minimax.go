package searcher

import (
	"math"

	"isolation/game"
)

// minimax searches depth plies below state. At maximizing nodes it keeps the
// move with the highest score, at minimizing nodes the lowest; ties go to the
// first move in enumeration order. The move is only meaningful to the caller
// at the root.
func (s *search) minimax(state game.State, depth int, maximizing bool) (float64, game.Move, error) {
	if err := s.enter(); err != nil {
		return 0, game.NoMove, err
	}

	moves, ok := s.expand(state, depth)
	if !ok {
		return s.leaf(state)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	bestMove := moves[0]

	for _, move := range moves {
		child, err := state.Forecast(move)
		if err != nil {
			return 0, game.NoMove, err
		}

		score, _, err := s.minimax(child, depth-1, !maximizing)
		if err != nil {
			return 0, game.NoMove, err
		}

		if maximizing && score > best || !maximizing && score < best {
			best, bestMove = score, move
		}
	}
	return best, bestMove, nil
}
