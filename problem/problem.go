package problem

import (
	"errors"
	"fmt"

	"statesearch/utils"
)

var ErrIllegalAction = errors.New("illegal action")

// Problem is a single-agent search problem. States must be immutable values:
// Successor always returns a new state and never mutates its argument.
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoal(state S) bool
	Actions(state S) []A
	Successor(state S, action A) S
	// Cost of applying action in state, never negative
	Cost(state S, action A) float64
}

// Estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(p Problem[S, A], state S) float64

func NullHeuristic[S comparable, A any](Problem[S, A], S) float64 {
	return 0
}

// Execute replays path from initial and returns the reached state with the
// accumulated cost. Every action must be legal in the state it is applied to.
func Execute[S comparable, A comparable](p Problem[S, A], initial S, path []A) (S, float64, error) {
	state := initial
	total := 0.0
	for i, action := range path {
		if utils.FindIndex(p.Actions(state), action) < 0 {
			return state, total, fmt.Errorf("step %d: %v in %v: %w", i, action, state, ErrIllegalAction)
		}
		total += p.Cost(state, action)
		state = p.Successor(state, action)
	}
	return state, total, nil
}
