package searcher

import (
	"time"

	"isolation/game"
)

// search holds the state of one search pass. Every recursive call checks the
// clock on entry, so a pass unwinds with ErrTimeout from any depth.
type search struct {
	clock     Clock
	threshold time.Duration
	player    string // scores are from this player's point of view
	evaluate  game.Evaluate
	nodes     int
	cutoff    bool // a non-terminal node was evaluated at the depth limit
}

func (s *search) enter() error {
	if s.clock.TimeLeft() < s.threshold {
		return ErrTimeout
	}
	s.nodes++
	return nil
}

// expand returns the moves to search from state, or false when state is a
// leaf: either no legal moves or no depth left.
func (s *search) expand(state game.State, depth int) ([]game.Move, bool) {
	moves := state.LegalMoves(state.Player())
	if len(moves) == 0 {
		return nil, false
	}
	if depth <= 0 {
		s.cutoff = true
		return nil, false
	}
	return moves, true
}

func (s *search) leaf(state game.State) (float64, game.Move, error) {
	return s.evaluate(state, s.player), game.NoMove, nil
}
