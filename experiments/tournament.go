package experiments

import (
	"context"
	"fmt"

	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	first  = "player1"
	second = "player2"
)

// GameResult is one finished tournament game.
type GameResult struct {
	ID        int
	TestAgent string
	Opponent  string
	TestFirst bool
	TestWon   bool
	Outcome   engine.Outcome
}

// Standing is a test agent's record against all opponents.
type Standing struct {
	Agent string
	Wins  int
	Games int
	ByFoe map[string]int // wins per opponent
	Rate  float64
}

type matchup struct {
	id        int
	test      AgentConfig
	opponent  AgentConfig
	testFirst bool
	opening   []game.Move
	seed      uint64
}

// Run plays every test agent against every opponent. Each match is two games
// from the same opening with the first player swapped.
func Run(ctx context.Context, cfg Config) ([]GameResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matchups := schedule(cfg)
	results := make([]GameResult, len(matchups))

	log.Info().Msgf("starting tournament: %d games, %v per move, %d at a time", len(matchups), cfg.TimeLimit, cfg.Concurrency)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for _, m := range matchups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := play(cfg, m)
			if err != nil {
				return err
			}
			results[m.id] = result
			log.Info().Msgf("game %d of %d: %s vs %s, winner %s after %d moves (%s)",
				m.id+1, len(matchups), m.test.Name, m.opponent.Name,
				winnerName(result), result.Outcome.TotalMoves, result.Outcome.Reason)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed tournament")
	return results, nil
}

func schedule(cfg Config) []matchup {
	rng := rand.New(rand.NewSource(cfg.Seed))
	board := game.NewBoard(first, second, cfg.Width, cfg.Height)

	matchups := []matchup{}
	for _, test := range cfg.TestAgents {
		for _, opponent := range cfg.Opponents {
			for i := 0; i < cfg.Matches; i++ {
				var opening []game.Move
				if cfg.RandomOpenings {
					opening = randomOpening(rng, board)
				}
				seed := rng.Uint64()
				for _, testFirst := range []bool{true, false} {
					matchups = append(matchups, matchup{
						id:        len(matchups),
						test:      test,
						opponent:  opponent,
						testFirst: testFirst,
						opening:   opening,
						seed:      seed,
					})
				}
			}
		}
	}
	return matchups
}

// randomOpening picks two distinct cells to place the players on.
func randomOpening(rng *rand.Rand, b *game.Board) []game.Move {
	cells := b.LegalMoves(b.Player())
	i := rng.Intn(len(cells))
	j := rng.Intn(len(cells) - 1)
	if j >= i {
		j++
	}
	return []game.Move{cells[i], cells[j]}
}

func play(cfg Config, m matchup) (GameResult, error) {
	testAgent, err := m.test.Build(m.seed)
	if err != nil {
		return GameResult{}, err
	}
	opponent, err := m.opponent.Build(m.seed + 1)
	if err != nil {
		return GameResult{}, err
	}

	agents := map[string]player.Agent{first: testAgent, second: opponent}
	if !m.testFirst {
		agents = map[string]player.Agent{first: opponent, second: testAgent}
	}

	board := game.NewBoard(first, second, cfg.Width, cfg.Height)
	for i, cell := range m.opening {
		board, err = board.Place([]string{first, second}[i], cell)
		if err != nil {
			return GameResult{}, fmt.Errorf("game %d opening: %w", m.id, err)
		}
	}

	outcome := engine.LocalEngine(board, agents, cfg.TimeLimit).Run()
	testPlayer := first
	if !m.testFirst {
		testPlayer = second
	}

	return GameResult{
		ID:        m.id,
		TestAgent: m.test.Name,
		Opponent:  m.opponent.Name,
		TestFirst: m.testFirst,
		TestWon:   outcome.Winner == testPlayer,
		Outcome:   outcome,
	}, nil
}

func winnerName(r GameResult) string {
	if r.TestWon {
		return r.TestAgent
	}
	return r.Opponent
}

// Standings summarizes results per test agent, in the order agents first
// appear.
func Standings(results []GameResult) []Standing {
	byAgent := lo.GroupBy(results, func(r GameResult) string { return r.TestAgent })
	agents := lo.Uniq(lo.Map(results, func(r GameResult, _ int) string { return r.TestAgent }))

	return lo.Map(agents, func(agent string, _ int) Standing {
		games := byAgent[agent]
		won := lo.Filter(games, func(r GameResult, _ int) bool { return r.TestWon })
		s := Standing{
			Agent: agent,
			Wins:  len(won),
			Games: len(games),
			ByFoe: lo.CountValuesBy(won, func(r GameResult) string { return r.Opponent }),
		}
		s.Rate = float64(s.Wins) / float64(s.Games)
		return s
	})
}

// Save writes the agents, games and moves of a tournament as CSV files and
// returns the directory they were written to.
func Save(cfg Config, results []GameResult) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, "tournament")
	if err != nil {
		return "", err
	}

	ids := map[string]int{}
	agents := []metrics.AgentRecord{}
	for _, a := range append(append([]AgentConfig{}, cfg.TestAgents...), cfg.Opponents...) {
		if _, ok := ids[a.Name]; ok {
			continue
		}
		ids[a.Name] = len(agents)
		agents = append(agents, agentRecord(len(agents), a))
	}

	games := make([]metrics.GameRecord, 0, len(results))
	moves := []metrics.MoveRecord{}
	for _, r := range results {
		agent1, agent2 := ids[r.TestAgent], ids[r.Opponent]
		if !r.TestFirst {
			agent1, agent2 = agent2, agent1
		}
		games = append(games, metrics.GameRecord{
			ID:         r.ID,
			Agent1:     agent1,
			Agent2:     agent2,
			Loser:      r.Outcome.Loser,
			Reason:     r.Outcome.Reason,
			GameMetric: r.Outcome.GameMetric,
		})
		for _, mm := range r.Outcome.Moves {
			moves = append(moves, metrics.MoveRecord{Game: r.ID, MoveMetric: mm})
		}
	}

	if err := writer.WriteAgentRecords(agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	return writer.Dir(), nil
}

func agentRecord(id int, a AgentConfig) metrics.AgentRecord {
	r := metrics.AgentRecord{
		ID:   id,
		Name: a.Name,
		Kind: a.Kind,
	}
	if a.Kind == RandomAgent {
		return r
	}
	r.Heuristic = a.heuristic()
	r.Method = string(a.Search.Method)
	r.Depth = a.Search.SearchDepth
	r.Iterative = a.Search.Iterative == nil || *a.Search.Iterative
	return r
}
