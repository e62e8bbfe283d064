package player

import (
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type openingBook struct {
	Agent
	rng *rand.Rand
}

// WithOpeningBook places the agent's player on a random cell near the center
// of the board instead of searching the opening. Every other move is left to
// agent.
func WithOpeningBook(agent Agent, seed uint64) Agent {
	return &openingBook{Agent: agent, rng: rand.New(rand.NewSource(seed))}
}

func (a *openingBook) GetMove(state game.State, clock searcher.Clock) (game.Move, error) {
	b, ok := state.(*game.Board)
	if !ok || b.Location(b.Player()) != game.NoMove {
		return a.Agent.GetMove(state, clock)
	}

	book := openings(b)
	if len(book) == 0 {
		return a.Agent.GetMove(state, clock)
	}
	return book[a.rng.Intn(len(book))], nil
}

// LastMetric forwards the wrapped agent's metrics.
func (a *openingBook) LastMetric() searcher.SearchMetric {
	if m, ok := a.Agent.(Metered); ok {
		return m.LastMetric()
	}
	return searcher.SearchMetric{}
}

// openings lists the blank cells within one step of the center.
func openings(b *game.Board) []game.Move {
	centerRow, centerCol := (b.Height()-1)/2, (b.Width()-1)/2
	blank := b.LegalMoves(b.Player())
	book := []game.Move{}
	for _, m := range blank {
		if abs(m.Row-centerRow) <= 1 && abs(m.Col-centerCol) <= 1 {
			book = append(book, m)
		}
	}
	return book
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
