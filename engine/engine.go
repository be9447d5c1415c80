package engine

import (
	"errors"

	"statesearch/experiments/metrics"
)

// MaxMoves is the default move limit of a game.
const MaxMoves = 500

var (
	ErrNoAgent = errors.New("no agent for turn")
	ErrNoMove  = errors.New("agent found no move")
)

// Agent chooses the move to play in a state where it is its turn.
type Agent[S, A any] interface {
	FindMove(state S) (A, metrics.SearchMetric, bool)
}

// Result of a game that ended on a terminal state or on the move limit.
type Result[S any] struct {
	State  S
	Values []float64 // Terminal values per agent, nil if the move limit was hit
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}
