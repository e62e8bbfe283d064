package searcher

import (
	"errors"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// deepen runs fixed-depth searches at depth 1, 2, 3, ... sharing one clock
// and keeps the result of the deepest pass that finished. A pass that times
// out is discarded. It stops early once a pass never reached the depth limit,
// since a deeper pass would search the same tree.
func (e *Engine) deepen(s *search, state game.State, best Result) (Result, error) {
	for depth := 1; ; depth++ {
		s.cutoff = false
		before := s.nodes

		score, move, err := e.fixedDepth(s, state, depth, true)
		e.metrics.AddNodes(s.nodes - before)
		if errors.Is(err, ErrTimeout) {
			e.metrics.SetTimedOut()
			log.Debug().Msgf("depth %d timed out, keeping depth %d move %v (score %v)", depth, best.Depth, best.Move, best.Score)
			return best, nil
		}
		if err != nil {
			return Result{Move: game.NoMove}, err
		}

		best = Result{Score: score, Move: move, Depth: depth, Nodes: s.nodes}
		e.metrics.CompleteDepth(depth)
		log.Debug().Msgf("depth %d completed: move %v score %v nodes %d", depth, move, score, s.nodes)

		if !s.cutoff {
			log.Debug().Msgf("search space exhausted at depth %d", depth)
			return best, nil
		}
	}
}
