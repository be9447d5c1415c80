package gametree

import (
	"statesearch/game"

	"gonum.org/v1/gonum/stat"
)

// Expectimax treats every agent other than the maximizer as acting uniformly
// at random. The value of a chance node is the mean of its children.
func Expectimax[S, A any](g game.Game[S, A], state S, h game.Heuristic[S, A], maxDepth int, opts ...Option) (float64, A, bool) {
	s := newSearch(expectimaxName, g, h, maxDepth, opts)
	return s.finish(s.expectimax(state, 0))
}

func (s *search[S, A]) expectimax(state S, depth int) (float64, A, bool) {
	var bestAction A
	if value, ok := s.leaf(state, depth); ok {
		return value, bestAction, false
	}

	actions := s.game.Actions(state)
	if s.game.Turn(state) == game.Maximizer {
		best, found := worst(true), false
		for action, next := range s.successors(state, actions, true) {
			value, _, _ := s.expectimax(next, depth+1)
			if improves(true, value, best) {
				best, bestAction, found = value, action, true
			}
		}
		return best, bestAction, found
	}

	if len(actions) == 0 {
		return s.heuristic(s.game, state, game.Maximizer), bestAction, false
	}
	values := make([]float64, 0, len(actions))
	for _, next := range s.successors(state, actions, false) {
		value, _, _ := s.expectimax(next, depth+1)
		values = append(values, value)
	}
	return stat.Mean(values, nil), bestAction, false
}
