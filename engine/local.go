package engine

import (
	"time"

	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State     game.State
	Agents    map[string]player.Agent
	TimeLimit time.Duration
}

// LocalEngine sets up a game from state between the agents keyed by player
// name. Each move must be returned within timeLimit.
func LocalEngine(state game.State, agents map[string]player.Agent, timeLimit time.Duration) *Engine {
	first := state.Player()
	for _, p := range []string{first, state.Opponent(first)} {
		if _, ok := agents[p]; !ok {
			panic("no agent for player " + p)
		}
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}

	return &Engine{
		State:     state,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// Run plays the game until the player to move is stuck or forfeits by
// answering late, failing, or playing an illegal move.
func (e *Engine) Run() Outcome {
	outcome := Outcome{}
	outcome.StartingPlayer = e.State.Player()
	outcome.StartTime = time.Now()

	log.Debug().Msgf("%s is starting", outcome.StartingPlayer)

	for {
		current := e.State.Player()
		if len(e.State.LegalMoves(current)) == 0 {
			e.finish(&outcome, current, NoLegalMoves)
			return outcome
		}

		clock := NewCountdown(e.TimeLimit)
		move, err := e.Agents[current].GetMove(e.State, clock)
		left := clock.TimeLeft()

		metric := MoveMetric{
			Step:     len(outcome.History) + 1,
			Player:   current,
			Move:     move,
			TimeLeft: left,
		}
		if m, ok := e.Agents[current].(player.Metered); ok {
			metric.SearchMetric = m.LastMetric()
		}
		outcome.Moves = append(outcome.Moves, metric)

		if err != nil {
			log.Warn().Err(err).Msgf("%s failed to move", current)
			e.finish(&outcome, current, AgentError)
			return outcome
		}
		if left < 0 {
			log.Warn().Msgf("%s answered %v late", current, -left)
			e.finish(&outcome, current, Timeout)
			return outcome
		}

		next, err := e.State.Forecast(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%s forfeits", current)
			e.finish(&outcome, current, IllegalMove)
			return outcome
		}

		outcome.History = append(outcome.History, move)
		e.State = next
	}
}

func (e *Engine) finish(outcome *Outcome, loser string, reason Reason) {
	outcome.Loser = loser
	outcome.Winner = e.State.Opponent(loser)
	outcome.Reason = reason
	outcome.EndTime = time.Now()
	outcome.Duration = outcome.EndTime.Sub(outcome.StartTime)
	outcome.TotalMoves = len(outcome.History)

	log.Debug().Msgf("%s wins after %d moves (%s)", outcome.Winner, outcome.TotalMoves, reason)
}
