package searcher

import (
	"time"

	"isolation/game"
)

// Defaults for a new engine
const (
	DefaultDepth     = 3
	DefaultMethod    = Minimax
	DefaultThreshold = 10 * time.Millisecond
)

type Option func(e *Engine)

// WithDepth sets the depth of fixed-depth search. Ignored when iterative
// deepening is enabled.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithMethod selects the fixed-depth search. Unknown methods are reported
// when a move is requested.
func WithMethod(method Method) Option {
	return func(e *Engine) {
		e.method = method
	}
}

func WithIterative(iterative bool) Option {
	return func(e *Engine) {
		e.iterative = iterative
	}
}

// WithThreshold sets how much time must remain for the search to keep going.
func WithThreshold(threshold time.Duration) Option {
	return func(e *Engine) {
		if threshold >= 0 {
			e.threshold = threshold
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = NewCollector()
	}
}

// Config is the serialized form of the engine options.
type Config struct {
	SearchDepth int    `yaml:"search_depth"`
	Method      Method `yaml:"method"`
	Iterative   *bool  `yaml:"iterative"`
	// TimeoutThreshold is in milliseconds
	TimeoutThreshold float64 `yaml:"timeout_threshold"`
}

// Options converts the config into engine options. Zero values keep the
// engine defaults.
func (c Config) Options() []Option {
	options := []Option{}
	if c.SearchDepth > 0 {
		options = append(options, WithDepth(c.SearchDepth))
	}
	if c.Method != "" {
		options = append(options, WithMethod(c.Method))
	}
	if c.Iterative != nil {
		options = append(options, WithIterative(*c.Iterative))
	}
	if c.TimeoutThreshold > 0 {
		options = append(options, WithThreshold(time.Duration(c.TimeoutThreshold*float64(time.Millisecond))))
	}
	return options
}
