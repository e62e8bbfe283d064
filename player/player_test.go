package player

import (
	"testing"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

var clock = searcher.ClockFunc(func() time.Duration { return time.Second })

func placed(t *testing.T) *game.Board {
	t.Helper()
	b := game.NewBoard("player1", "player2", 7, 7)
	b, err := b.Place("player1", game.Move{Row: 0, Col: 0})
	require.NoError(t, err)
	b, err = b.Place("player2", game.Move{Row: 6, Col: 6})
	require.NoError(t, err)
	return b
}

func TestRandom(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		b := placed(t)
		agent := NewRandom(1)
		for i := 0; i < 20; i++ {
			move, err := agent.GetMove(b, clock)
			require.NoError(t, err)
			require.Contains(t, b.LegalMoves(b.Player()), move)
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		b := game.NewBoard("player1", "player2", 7, 7)
		a1, a2 := NewRandom(42), NewRandom(42)
		for i := 0; i < 10; i++ {
			m1, _ := a1.GetMove(b, clock)
			m2, _ := a2.GetMove(b, clock)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		b := game.NewBoard("player1", "player2", 3, 3)
		b, err := b.Place("player1", game.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		move, err := NewRandom(1).GetMove(b, clock)
		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})
}

func TestGreedy(t *testing.T) {
	b := placed(t)
	agent := NewGreedy(game.OpenMoveScore)

	move, err := agent.GetMove(b, clock)
	require.NoError(t, err)

	// From the corner player1 can reach (1, 2) or (2, 1); both leave the same
	// number of moves, so the first one wins
	require.Equal(t, b.LegalMoves("player1")[0], move)
}

func TestOpeningBook(t *testing.T) {
	t.Run("opening is near the center", func(t *testing.T) {
		b := game.NewBoard("player1", "player2", 7, 7)
		agent := WithOpeningBook(NewGreedy(game.NullScore), 3)

		for i := 0; i < 20; i++ {
			move, err := agent.GetMove(b, clock)
			require.NoError(t, err)
			require.InDelta(t, 3, move.Row, 1)
			require.InDelta(t, 3, move.Col, 1)
		}
	})

	t.Run("later moves are delegated", func(t *testing.T) {
		b := placed(t)
		agent := WithOpeningBook(NewGreedy(game.OpenMoveScore), 3)

		move, err := agent.GetMove(b, clock)
		require.NoError(t, err)
		require.Equal(t, b.LegalMoves("player1")[0], move)
	})

	t.Run("forwards search metrics", func(t *testing.T) {
		b := placed(t)
		engine := searcher.New(searcher.WithMetrics(), searcher.WithIterative(false), searcher.WithDepth(2))
		agent := WithOpeningBook(engine, 3)

		_, err := agent.GetMove(b, clock)
		require.NoError(t, err)
		metric := agent.(Metered).LastMetric()
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Nodes)
	})
}
