package game

import (
	"fmt"
	"math"
	"sort"
)

// Heuristics maps heuristic names to evaluation functions.
var Heuristics = map[string]Evaluate{
	"null":       NullScore,
	"open":       OpenMoveScore,
	"improved":   ImprovedScore,
	"aggressive": AggressiveScore,
	"center":     CenterScore,
}

// LookupHeuristic returns the named evaluation function.
func LookupHeuristic(name string) (Evaluate, error) {
	eval, ok := Heuristics[name]
	if !ok {
		names := make([]string, 0, len(Heuristics))
		for n := range Heuristics {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown heuristic %q, expected one of %v", name, names)
	}
	return eval, nil
}

// terminalScore reports the ±Inf verdict for decided positions.
func terminalScore(s State, player string) (float64, bool) {
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	return 0, false
}

// NullScore knows nothing beyond wins and losses.
func NullScore(s State, player string) float64 {
	if score, ok := terminalScore(s, player); ok {
		return score
	}
	return 0
}

// OpenMoveScore counts the moves available to player.
func OpenMoveScore(s State, player string) float64 {
	if score, ok := terminalScore(s, player); ok {
		return score
	}
	return float64(len(s.LegalMoves(player)))
}

// ImprovedScore is the difference between the player's and the opponent's
// available moves.
func ImprovedScore(s State, player string) float64 {
	if score, ok := terminalScore(s, player); ok {
		return score
	}
	own := len(s.LegalMoves(player))
	opp := len(s.LegalMoves(s.Opponent(player)))
	return float64(own - opp)
}

// AggressiveScore weighs the opponent's mobility twice as much as the
// player's own, chasing the opponent into corners.
func AggressiveScore(s State, player string) float64 {
	if score, ok := terminalScore(s, player); ok {
		return score
	}
	own := len(s.LegalMoves(player))
	opp := len(s.LegalMoves(s.Opponent(player)))
	return float64(own - 2*opp)
}

// CenterScore prefers cells near the middle of the board.
func CenterScore(s State, player string) float64 {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}
	if score, ok := terminalScore(s, player); ok {
		return score
	}
	loc := b.Location(player)
	if loc == NoMove {
		return 0
	}
	dr := float64(loc.Row) - float64(b.height-1)/2
	dc := float64(loc.Col) - float64(b.width-1)/2
	return -(dr*dr + dc*dc)
}
