package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

func smallConfig(t *testing.T) Config {
	iterative := false
	return Config{
		Matches:        2,
		TimeLimit:      time.Second,
		Concurrency:    2,
		Seed:           3,
		Width:          5,
		Height:         5,
		RandomOpenings: true,
		Output:         t.TempDir(),
		TestAgents: []AgentConfig{
			{Name: "AB2", Kind: SearchAgent, Heuristic: "improved",
				Search: searcher.Config{Method: searcher.AlphaBeta, Iterative: &iterative, SearchDepth: 2}},
			{Name: "Greedy", Kind: GreedyAgent, Heuristic: "open"},
		},
		Opponents: []AgentConfig{
			{Name: "Random", Kind: RandomAgent},
			{Name: "Booked", Kind: RandomAgent, OpeningBook: true},
		},
	}
}

func TestSchedule(t *testing.T) {
	cfg := smallConfig(t)
	matchups := schedule(cfg)

	require.Len(t, matchups, 2*2*2*2)
	for i := 0; i < len(matchups); i += 2 {
		a, b := matchups[i], matchups[i+1]
		require.Equal(t, i, a.id)
		require.True(t, a.testFirst)
		require.False(t, b.testFirst)
		require.Equal(t, a.opening, b.opening, "Both games of a match share the opening")
		require.Len(t, a.opening, 2)
		require.NotEqual(t, a.opening[0], a.opening[1])
	}

	require.Equal(t, matchups, schedule(cfg), "Same seed should give the same schedule")
}

func TestRun(t *testing.T) {
	cfg := smallConfig(t)

	results, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 16)

	for i, r := range results {
		require.Equal(t, i, r.ID)
		require.NotEmpty(t, r.Outcome.Winner)
		require.NotEqual(t, r.Outcome.Winner, r.Outcome.Loser)
	}

	standings := Standings(results)
	require.Len(t, standings, 2)
	require.Equal(t, "AB2", standings[0].Agent)
	for _, s := range standings {
		require.Equal(t, 8, s.Games)
		require.InDelta(t, float64(s.Wins)/8, s.Rate, 1e-9)
	}

	t.Run("saves csv files", func(t *testing.T) {
		dir, err := Save(cfg, results)
		require.NoError(t, err)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			require.NotEmpty(t, data)
		}
	})

	t.Run("cancelled context stops the tournament", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, cfg)
		require.ErrorIs(t, err, context.Canceled)
	})
}
