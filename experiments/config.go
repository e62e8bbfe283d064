package experiments

import (
	"fmt"
	"os"
	"time"

	"isolation/game"
	"isolation/meta"
	"isolation/player"
	"isolation/searcher"

	"gopkg.in/yaml.v3"
)

// Agent kinds
const (
	SearchAgent = "search"
	RandomAgent = "random"
	GreedyAgent = "greedy"
)

type AgentConfig struct {
	Name        string          `yaml:"name"`
	Kind        string          `yaml:"kind"`
	Heuristic   string          `yaml:"heuristic"`
	OpeningBook bool            `yaml:"opening_book"`
	Search      searcher.Config `yaml:"search"`
}

type Config struct {
	Matches        int           `yaml:"matches"`
	TimeLimit      time.Duration `yaml:"time_limit"`
	Concurrency    int           `yaml:"concurrency"`
	Seed           uint64        `yaml:"seed"`
	Width          int           `yaml:"width"`
	Height         int           `yaml:"height"`
	RandomOpenings bool          `yaml:"random_openings"`
	Output         string        `yaml:"output"`
	TestAgents     []AgentConfig `yaml:"test_agents"`
	Opponents      []AgentConfig `yaml:"opponents"`
}

func DefaultConfig() Config {
	return Config{
		Matches:        meta.MATCHES,
		TimeLimit:      meta.TIME_LIMIT,
		Concurrency:    meta.CONCURRENCY,
		Seed:           1,
		Width:          meta.BOARD_WIDTH,
		Height:         meta.BOARD_HEIGHT,
		RandomOpenings: true,
		Output:         meta.OUTPUT_DIR,
		TestAgents: []AgentConfig{
			iterativeAgent("ID_Improved", "improved"),
			iterativeAgent("ID_Aggressive", "aggressive"),
		},
		Opponents: []AgentConfig{
			{Name: "Random", Kind: RandomAgent},
			fixedAgent("MM_Null", "null", searcher.Minimax, 3),
			fixedAgent("MM_Open", "open", searcher.Minimax, 3),
			fixedAgent("MM_Improved", "improved", searcher.Minimax, 3),
			fixedAgent("AB_Null", "null", searcher.AlphaBeta, 5),
			fixedAgent("AB_Open", "open", searcher.AlphaBeta, 5),
			fixedAgent("AB_Improved", "improved", searcher.AlphaBeta, 5),
		},
	}
}

func iterativeAgent(name, heuristic string) AgentConfig {
	iterative := true
	return AgentConfig{
		Name:      name,
		Kind:      SearchAgent,
		Heuristic: heuristic,
		Search:    searcher.Config{Method: searcher.AlphaBeta, Iterative: &iterative},
	}
}

func fixedAgent(name, heuristic string, method searcher.Method, depth int) AgentConfig {
	iterative := false
	return AgentConfig{
		Name:      name,
		Kind:      SearchAgent,
		Heuristic: heuristic,
		Search:    searcher.Config{Method: method, Iterative: &iterative, SearchDepth: depth},
	}
}

// LoadConfig reads a YAML config on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Matches <= 0 {
		return fmt.Errorf("matches must be positive, got %d", c.Matches)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %v", c.TimeLimit)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("board must be at least 3x3, got %dx%d", c.Width, c.Height)
	}
	if len(c.TestAgents) == 0 || len(c.Opponents) == 0 {
		return fmt.Errorf("need at least one test agent and one opponent")
	}
	for _, a := range append(append([]AgentConfig{}, c.TestAgents...), c.Opponents...) {
		if _, err := a.Build(0); err != nil {
			return err
		}
	}
	return nil
}

// Build creates a fresh agent. Agents are not safe for concurrent use, so
// every game builds its own.
func (a AgentConfig) Build(seed uint64) (player.Agent, error) {
	var agent player.Agent
	switch a.Kind {
	case RandomAgent:
		agent = player.NewRandom(seed)
	case GreedyAgent:
		eval, err := game.LookupHeuristic(a.heuristic())
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", a.Name, err)
		}
		agent = player.NewGreedy(eval)
	case SearchAgent, "":
		eval, err := game.LookupHeuristic(a.heuristic())
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", a.Name, err)
		}
		if a.Search.Method != "" {
			if err := a.Search.Method.Validate(); err != nil {
				return nil, fmt.Errorf("agent %s: %w", a.Name, err)
			}
		}
		options := append(a.Search.Options(), searcher.WithEvaluationFn(eval), searcher.WithMetrics())
		agent = searcher.New(options...)
	default:
		return nil, fmt.Errorf("agent %s: unknown kind %q", a.Name, a.Kind)
	}

	if a.OpeningBook {
		agent = player.WithOpeningBook(agent, seed)
	}
	return agent, nil
}

func (a AgentConfig) heuristic() string {
	if a.Heuristic == "" {
		return "improved"
	}
	return a.Heuristic
}
