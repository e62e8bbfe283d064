package searcher

import (
	"math"

	"isolation/game"
)

// alphabeta is minimax with pruning. alpha is the score the maximizing side
// is already guaranteed on the current path and beta the score the
// minimizing side is guaranteed. Both are passed by value so sibling
// subtrees only see the bounds set by their ancestors.
func (s *search) alphabeta(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, game.Move, error) {
	if err := s.enter(); err != nil {
		return 0, game.NoMove, err
	}

	moves, ok := s.expand(state, depth)
	if !ok {
		return s.leaf(state)
	}

	bestMove := moves[0]

	if maximizing {
		best := math.Inf(-1)
		for _, move := range moves {
			child, err := state.Forecast(move)
			if err != nil {
				return 0, game.NoMove, err
			}

			score, _, err := s.alphabeta(child, depth-1, alpha, beta, false)
			if err != nil {
				return 0, game.NoMove, err
			}

			if score > best {
				best, bestMove = score, move
			}
			if best >= beta { // beta cutoff
				return best, bestMove, nil
			}
			alpha = math.Max(alpha, best)
		}
		return best, bestMove, nil
	}

	best := math.Inf(1)
	for _, move := range moves {
		child, err := state.Forecast(move)
		if err != nil {
			return 0, game.NoMove, err
		}

		score, _, err := s.alphabeta(child, depth-1, alpha, beta, true)
		if err != nil {
			return 0, game.NoMove, err
		}

		if score < best {
			best, bestMove = score, move
		}
		if best <= alpha { // alpha cutoff
			return best, bestMove, nil
		}
		beta = math.Min(beta, best)
	}
	return best, bestMove, nil
}
