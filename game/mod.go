package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Forecast when the move is not legal for the
// active player.
var ErrIllegalMove = errors.New("illegal move")

// Move is a board coordinate. NoMove means no legal move is available.
type Move struct {
	Row int
	Col int
}

var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// State should be immutable - Forecast always returns a new copy
type State interface {
	// Player returns the player whose turn is next
	Player() string
	Opponent(player string) string
	// LegalMoves returns the moves available to player, empty when stuck
	LegalMoves(player string) []Move
	Forecast(move Move) (State, error)
	IsWinner(player string) bool
	IsLoser(player string) bool
}

// Evaluate scores the state from the given player's point of view, higher is
// better. It must return +Inf when player has won and -Inf when player has lost.
type Evaluate func(state State, player string) float64
