package searcher

import (
	"fmt"
	"time"

	"isolation/game"

	"golang.org/x/exp/rand"
)

const (
	maxPlayer = "max"
	minPlayer = "min"
)

// mockNode is an explicit game tree. score is the static evaluation from
// maxPlayer's point of view.
type mockNode struct {
	player   string
	score    float64
	moves    []game.Move
	children []*mockNode
}

func (n *mockNode) Player() string {
	return n.player
}

func (n *mockNode) Opponent(player string) string {
	if player == maxPlayer {
		return minPlayer
	}
	return maxPlayer
}

func (n *mockNode) LegalMoves(player string) []game.Move {
	if player != n.player {
		return nil
	}
	return n.moves
}

func (n *mockNode) Forecast(move game.Move) (game.State, error) {
	for i, m := range n.moves {
		if m == move && i < len(n.children) {
			return n.children[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %v", game.ErrIllegalMove, move)
}

func (n *mockNode) IsWinner(player string) bool { return false }
func (n *mockNode) IsLoser(player string) bool  { return false }

func mockEvaluate(s game.State, player string) float64 {
	n := s.(*mockNode)
	if player == maxPlayer {
		return n.score
	}
	return -n.score
}

// leaves builds a node for player whose children are leaves with the given
// scores.
func leaves(player string, scores ...float64) *mockNode {
	node := &mockNode{player: player}
	for i, score := range scores {
		node.moves = append(node.moves, game.Move{Row: 0, Col: i})
		node.children = append(node.children, &mockNode{player: node.Opponent(player), score: score})
	}
	return node
}

// randomTree builds a tree of the given height with up to maxBranch children
// per node. Some inner nodes get no children and become terminal early.
func randomTree(rng *rand.Rand, player string, height, maxBranch int) *mockNode {
	node := &mockNode{player: player, score: float64(rng.Intn(41) - 20)}
	if height == 0 {
		return node
	}
	branch := rng.Intn(maxBranch + 1)
	for i := 0; i < branch; i++ {
		node.moves = append(node.moves, game.Move{Row: height, Col: i})
		node.children = append(node.children, randomTree(rng, node.Opponent(player), height-1, maxBranch))
	}
	return node
}

func infiniteClock() Clock {
	return ClockFunc(func() time.Duration { return time.Hour })
}

func expiredClock() Clock {
	return ClockFunc(func() time.Duration { return 0 })
}

// countingClock reports plenty of time for the first budget queries and
// nothing afterwards.
type countingClock struct {
	budget int
	calls  int
}

func (c *countingClock) TimeLeft() time.Duration {
	c.calls++
	if c.calls > c.budget {
		return 0
	}
	return time.Hour
}
