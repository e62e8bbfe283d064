package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

// knight offsets in enumeration order
var directions = []Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is a knight-move Isolation position. Each player moves like a chess
// knight, every occupied cell stays blocked, and the player to move with no
// legal moves loses. A player that has not been placed yet may move to any
// blank cell.
type Board struct {
	width     int
	height    int
	players   [2]string
	locations [2]Move
	blocked   []bool
	active    int
	moveCount int
}

// NewBoard returns an empty board where first moves first.
func NewBoard(first, second string, width, height int) *Board {
	if first == second {
		panic("players must be distinct")
	}
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:     width,
		height:    height,
		players:   [2]string{first, second},
		locations: [2]Move{NoMove, NoMove},
		blocked:   make([]bool, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// MoveCount returns the number of moves played so far.
func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) Players() [2]string { return b.players }

func (b *Board) Player() string {
	return b.players[b.active]
}

func (b *Board) Opponent(player string) string {
	return b.players[1-b.index(player)]
}

// Location returns the player's cell, or NoMove before the player is placed.
func (b *Board) Location(player string) Move {
	return b.locations[b.index(player)]
}

func (b *Board) LegalMoves(player string) []Move {
	loc := b.locations[b.index(player)]
	if loc == NoMove {
		return b.blankCells()
	}

	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		next := Move{Row: loc.Row + d.Row, Col: loc.Col + d.Col}
		if b.isBlank(next) {
			moves = append(moves, next)
		}
	}
	return moves
}

func (b *Board) Forecast(move Move) (State, error) {
	player := b.Player()
	if !lo.Contains(b.LegalMoves(player), move) {
		return nil, fmt.Errorf("%w: %v for %s", ErrIllegalMove, move, player)
	}

	next := b.copy()
	next.occupy(next.active, move)
	next.active = 1 - next.active
	next.moveCount++
	return next, nil
}

func (b *Board) IsLoser(player string) bool {
	return player == b.Player() && len(b.LegalMoves(player)) == 0
}

func (b *Board) IsWinner(player string) bool {
	return player == b.Opponent(b.Player()) && len(b.LegalMoves(b.Player())) == 0
}

// Utility returns +Inf for a win, -Inf for a loss and 0 otherwise.
func (b *Board) Utility(player string) float64 {
	if b.IsWinner(player) {
		return math.Inf(1)
	}
	if b.IsLoser(player) {
		return math.Inf(-1)
	}
	return 0
}

// Place puts player on cell without changing whose turn it is. Used to set up
// positions and openings.
func (b *Board) Place(player string, cell Move) (*Board, error) {
	if !b.isBlank(cell) {
		return nil, fmt.Errorf("cannot place %s on %v: cell is blocked or off the board", player, cell)
	}
	next := b.copy()
	next.occupy(b.index(player), cell)
	return next, nil
}

// Block marks cells as unavailable. Cells off the board are ignored.
func (b *Board) Block(cells ...Move) *Board {
	next := b.copy()
	for _, c := range cells {
		if b.inBounds(c) {
			next.blocked[next.offset(c)] = true
		}
	}
	return next
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		sb.WriteString("|")
		for c := 0; c < b.width; c++ {
			cell := Move{Row: r, Col: c}
			switch {
			case cell == b.locations[0]:
				sb.WriteString(" 1 ")
			case cell == b.locations[1]:
				sb.WriteString(" 2 ")
			case b.blocked[b.offset(cell)]:
				sb.WriteString(" - ")
			default:
				sb.WriteString("   ")
			}
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) index(player string) int {
	switch player {
	case b.players[0]:
		return 0
	case b.players[1]:
		return 1
	}
	panic(fmt.Sprintf("unknown player %q", player))
}

func (b *Board) occupy(i int, cell Move) {
	b.blocked[b.offset(cell)] = true
	b.locations[i] = cell
}

func (b *Board) blankCells() []Move {
	cells := make([]Move, 0, len(b.blocked))
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if !b.blocked[r*b.width+c] {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}
	return cells
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

func (b *Board) isBlank(m Move) bool {
	return b.inBounds(m) && !b.blocked[b.offset(m)]
}

func (b *Board) offset(m Move) int {
	return m.Row*b.width + m.Col
}

func (b *Board) copy() *Board {
	next := *b
	next.blocked = make([]bool, len(b.blocked))
	copy(next.blocked, b.blocked)
	return &next
}
