package player

import (
	"isolation/game"
	"isolation/searcher"
)

// Agent chooses a move for the active player of state before clock runs out.
// *searcher.Engine is an Agent.
type Agent interface {
	GetMove(state game.State, clock searcher.Clock) (game.Move, error)
}

// Metered agents report search metrics for their latest move.
type Metered interface {
	LastMetric() searcher.SearchMetric
}

var _ Agent = (*searcher.Engine)(nil)
var _ Metered = (*searcher.Engine)(nil)
