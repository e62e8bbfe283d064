package player

import (
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns an agent playing uniformly random legal moves.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (a *random) GetMove(state game.State, _ searcher.Clock) (game.Move, error) {
	moves := state.LegalMoves(state.Player())
	if len(moves) == 0 {
		return game.NoMove, nil
	}
	return moves[a.rng.Intn(len(moves))], nil
}
