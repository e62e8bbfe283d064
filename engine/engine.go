package engine

import (
	"time"

	"isolation/game"
	"isolation/searcher"
)

// Reason explains how a game ended.
type Reason string

const (
	NoLegalMoves Reason = "no legal moves"
	Timeout      Reason = "timeout"
	IllegalMove  Reason = "illegal move"
	AgentError   Reason = "agent error"
)

type MoveMetric struct {
	Step     int
	Player   string
	Move     game.Move
	TimeLeft time.Duration
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Outcome is the result of a finished game.
type Outcome struct {
	Loser   string
	Reason  Reason
	History []game.Move
	Moves   []MoveMetric
	GameMetric
}

// Countdown is a searcher.Clock counting down to a fixed deadline.
type Countdown struct {
	deadline time.Time
}

func NewCountdown(limit time.Duration) *Countdown {
	return &Countdown{deadline: time.Now().Add(limit)}
}

// TimeLeft goes negative once the deadline has passed.
func (c *Countdown) TimeLeft() time.Duration {
	return time.Until(c.deadline)
}
