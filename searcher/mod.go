package searcher

import (
	"errors"
	"fmt"
	"time"

	"isolation/game"
)

var (
	// ErrTimeout unwinds an in-progress search once the clock drops below
	// the threshold. It never escapes Engine.GetMove.
	ErrTimeout = errors.New("search timed out")
	// ErrUnknownMethod reports a configuration naming no search method.
	ErrUnknownMethod = errors.New("unknown search method")
)

type Method string

const (
	Minimax   Method = "minimax"
	AlphaBeta Method = "alphabeta"
)

func (m Method) Validate() error {
	switch m {
	case Minimax, AlphaBeta:
		return nil
	}
	return fmt.Errorf("%w: %q, only %q or %q is valid", ErrUnknownMethod, string(m), Minimax, AlphaBeta)
}

// Clock reports the time remaining in the current turn.
type Clock interface {
	TimeLeft() time.Duration
}

type ClockFunc func() time.Duration

func (f ClockFunc) TimeLeft() time.Duration {
	return f()
}

// Result is the outcome of a search. Move is game.NoMove when the searched
// state has no legal moves. Depth is the deepest completed search depth and
// Nodes the number of nodes visited to produce the result.
type Result struct {
	Score float64
	Move  game.Move
	Depth int
	Nodes int
}
