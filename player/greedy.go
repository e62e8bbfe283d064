package player

import (
	"fmt"
	"math"

	"isolation/game"
	"isolation/searcher"
)

type greedy struct {
	evaluate game.Evaluate
}

// NewGreedy returns an agent that plays the move with the best immediate
// evaluation, without looking further ahead.
func NewGreedy(evaluate game.Evaluate) Agent {
	return greedy{evaluate: evaluate}
}

func (a greedy) GetMove(state game.State, _ searcher.Clock) (game.Move, error) {
	player := state.Player()
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.NoMove, nil
	}

	best, bestMove := math.Inf(-1), moves[0]
	for _, move := range moves {
		next, err := state.Forecast(move)
		if err != nil {
			return game.NoMove, fmt.Errorf("greedy forecast: %w", err)
		}
		if score := a.evaluate(next, player); score > best {
			best, bestMove = score, move
		}
	}
	return bestMove, nil
}
