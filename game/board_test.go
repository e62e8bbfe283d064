package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard("player1", "player2", 7, 7)

	require.Equal(t, "player1", b.Player())
	require.Equal(t, "player2", b.Opponent("player1"))
	require.Equal(t, "player1", b.Opponent("player2"))
	require.Equal(t, NoMove, b.Location("player1"))
	require.Len(t, b.LegalMoves("player1"), 49, "Any blank cell is an opening")
	require.Equal(t, 0, b.MoveCount())

	require.Panics(t, func() { NewBoard("same", "same", 7, 7) })
	require.Panics(t, func() { NewBoard("a", "b", 0, 7) })
	require.Panics(t, func() { b.Opponent("stranger") })
}

func TestForecast(t *testing.T) {
	t.Run("does not change the receiver", func(t *testing.T) {
		b := NewBoard("player1", "player2", 7, 7)

		next, err := b.Forecast(Move{Row: 3, Col: 3})
		require.NoError(t, err)

		require.Equal(t, NoMove, b.Location("player1"))
		require.Equal(t, "player1", b.Player())
		require.Len(t, b.LegalMoves("player2"), 49)

		nb := next.(*Board)
		require.Equal(t, Move{Row: 3, Col: 3}, nb.Location("player1"))
		require.Equal(t, "player2", nb.Player())
		require.Len(t, nb.LegalMoves("player2"), 48, "Occupied cell is blocked")
		require.Equal(t, 1, nb.MoveCount())
	})

	t.Run("knight moves after the opening", func(t *testing.T) {
		b := NewBoard("player1", "player2", 7, 7)
		b, err := b.Place("player1", Move{Row: 3, Col: 3})
		require.NoError(t, err)
		b, err = b.Place("player2", Move{Row: 0, Col: 0})
		require.NoError(t, err)

		require.Equal(t, []Move{
			{1, 2}, {1, 4}, {2, 1}, {2, 5},
			{4, 1}, {4, 5}, {5, 2}, {5, 4},
		}, b.LegalMoves("player1"))
		require.Equal(t, []Move{{1, 2}, {2, 1}}, b.LegalMoves("player2"))
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		b := NewBoard("player1", "player2", 7, 7)
		b, err := b.Place("player1", Move{Row: 3, Col: 3})
		require.NoError(t, err)

		for _, m := range []Move{{3, 4}, {3, 3}, {-1, 0}, NoMove} {
			_, err := b.Forecast(m)
			require.ErrorIs(t, err, ErrIllegalMove, "move %v", m)
		}
	})

	t.Run("visited cells stay blocked", func(t *testing.T) {
		var s State = NewBoard("player1", "player2", 7, 7)
		for _, m := range []Move{{0, 0}, {3, 3}, {2, 1}, {4, 1}} {
			next, err := s.Forecast(m)
			require.NoError(t, err)
			s = next
		}

		// Both cells are a knight's move away from player1 at (2, 1)
		require.NotContains(t, s.LegalMoves("player1"), Move{Row: 0, Col: 0})
		require.NotContains(t, s.LegalMoves("player1"), Move{Row: 3, Col: 3})
		require.Contains(t, s.LegalMoves("player1"), Move{Row: 4, Col: 2})
	})
}

func TestTerminal(t *testing.T) {
	b := NewBoard("player1", "player2", 3, 3)
	b, err := b.Place("player1", Move{Row: 1, Col: 1})
	require.NoError(t, err)
	b, err = b.Place("player2", Move{Row: 0, Col: 0})
	require.NoError(t, err)

	require.Empty(t, b.LegalMoves("player1"))
	require.True(t, b.IsLoser("player1"))
	require.False(t, b.IsWinner("player1"))
	require.True(t, b.IsWinner("player2"))
	require.False(t, b.IsLoser("player2"))
	require.Equal(t, math.Inf(-1), b.Utility("player1"))
	require.Equal(t, math.Inf(1), b.Utility("player2"))

	open := NewBoard("player1", "player2", 3, 3)
	require.False(t, open.IsWinner("player1"))
	require.False(t, open.IsLoser("player1"))
	require.Equal(t, 0.0, open.Utility("player1"))
}

func TestPlaceAndBlock(t *testing.T) {
	b := NewBoard("player1", "player2", 3, 3)

	blocked := b.Block(Move{Row: 0, Col: 1}, Move{Row: 5, Col: 5})
	require.Len(t, blocked.LegalMoves("player1"), 8)
	require.Len(t, b.LegalMoves("player1"), 9, "Block returns a copy")

	_, err := blocked.Place("player1", Move{Row: 0, Col: 1})
	require.Error(t, err)
	_, err = b.Place("player1", Move{Row: 3, Col: 0})
	require.Error(t, err)

	placed, err := b.Place("player2", Move{Row: 2, Col: 2})
	require.NoError(t, err)
	require.Equal(t, "player1", placed.Player(), "Place keeps the turn")
	require.Equal(t, "|   |   |   |\n|   |   |   |\n|   |   | 2 |\n", placed.String())
}
