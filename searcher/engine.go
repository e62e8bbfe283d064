package searcher

import (
	"errors"
	"math"
	"time"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// Engine picks moves with depth-limited minimax or alpha-beta search, either
// at a fixed depth or by iterative deepening until the clock runs low.
// An Engine is not safe for concurrent use.
type Engine struct {
	depth     int
	method    Method
	iterative bool
	threshold time.Duration
	evaluate  game.Evaluate
	metrics   Collector
	last      SearchMetric
}

func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		depth:     DefaultDepth,
		method:    DefaultMethod,
		iterative: true,
		threshold: DefaultThreshold,
		evaluate:  game.OpenMoveScore,
		metrics:   NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// GetMove returns the best move found for the active player before the clock
// drops below the threshold. It returns game.NoMove only when the player has
// no legal moves. Only configuration errors and illegal forecasts are
// returned; running out of time is not an error.
func (e *Engine) GetMove(state game.State, clock Clock) (game.Move, error) {
	result, err := e.Search(state, clock)
	if err != nil {
		return game.NoMove, err
	}
	return result.Move, nil
}

// Search is GetMove with the score, depth and node count of the result.
func (e *Engine) Search(state game.State, clock Clock) (Result, error) {
	if err := e.method.Validate(); err != nil {
		return Result{Move: game.NoMove}, err
	}

	e.metrics.Start(e.method, e.iterative)
	defer func() { e.last = e.metrics.Complete() }()

	player := state.Player()
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return Result{Score: e.evaluate(state, player), Move: game.NoMove}, nil
	}

	// Returned when not even the first pass completes
	fallback := Result{Score: e.evaluate(state, player), Move: moves[0]}

	s := e.newSearch(clock, player)
	if e.iterative {
		return e.deepen(s, state, fallback)
	}

	score, move, err := e.fixedDepth(s, state, e.depth, true)
	e.metrics.AddNodes(s.nodes)
	if errors.Is(err, ErrTimeout) {
		e.metrics.SetTimedOut()
		log.Debug().Msgf("depth %d search timed out after %d nodes, playing %v", e.depth, s.nodes, fallback.Move)
		return fallback, nil
	}
	if err != nil {
		return Result{Move: game.NoMove}, err
	}
	e.metrics.CompleteDepth(e.depth)
	return Result{Score: score, Move: move, Depth: e.depth, Nodes: s.nodes}, nil
}

// Minimax runs a single fixed-depth minimax search from state. The score is
// from the point of view of the active player when maximizing, otherwise of
// its opponent.
func (e *Engine) Minimax(state game.State, clock Clock, depth int, maximizing bool) (Result, error) {
	s := e.newSearch(clock, rootPlayer(state, maximizing))
	score, move, err := s.minimax(state, depth, maximizing)
	if err != nil {
		return Result{Move: game.NoMove, Nodes: s.nodes}, err
	}
	return Result{Score: score, Move: move, Depth: depth, Nodes: s.nodes}, nil
}

// AlphaBeta runs a single fixed-depth alpha-beta search from state within the
// (alpha, beta) window. Called with an infinite window it returns the same
// score as Minimax.
func (e *Engine) AlphaBeta(state game.State, clock Clock, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	s := e.newSearch(clock, rootPlayer(state, maximizing))
	score, move, err := s.alphabeta(state, depth, alpha, beta, maximizing)
	if err != nil {
		return Result{Move: game.NoMove, Nodes: s.nodes}, err
	}
	return Result{Score: score, Move: move, Depth: depth, Nodes: s.nodes}, nil
}

// LastMetric returns the metrics of the latest Search call. Empty unless the
// engine was built WithMetrics.
func (e *Engine) LastMetric() SearchMetric {
	return e.last
}

func (e *Engine) fixedDepth(s *search, state game.State, depth int, maximizing bool) (float64, game.Move, error) {
	if e.method == AlphaBeta {
		return s.alphabeta(state, depth, math.Inf(-1), math.Inf(1), maximizing)
	}
	return s.minimax(state, depth, maximizing)
}

func (e *Engine) newSearch(clock Clock, player string) *search {
	return &search{
		clock:     clock,
		threshold: e.threshold,
		player:    player,
		evaluate:  e.evaluate,
	}
}

func rootPlayer(state game.State, maximizing bool) string {
	if maximizing {
		return state.Player()
	}
	return state.Opponent(state.Player())
}
