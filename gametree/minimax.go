package gametree

import "statesearch/game"

// Minimax treats every agent other than the maximizer as a minimizer.
func Minimax[S, A any](g game.Game[S, A], state S, h game.Heuristic[S, A], maxDepth int, opts ...Option) (float64, A, bool) {
	s := newSearch(minimaxName, g, h, maxDepth, opts)
	return s.finish(s.minimax(state, 0))
}

func (s *search[S, A]) minimax(state S, depth int) (float64, A, bool) {
	var bestAction A
	if value, ok := s.leaf(state, depth); ok {
		return value, bestAction, false
	}

	maximizing := s.game.Turn(state) == game.Maximizer
	best, found := worst(maximizing), false
	for action, next := range s.successors(state, s.game.Actions(state), maximizing) {
		value, _, _ := s.minimax(next, depth+1)
		if improves(maximizing, value, best) {
			best, bestAction, found = value, action, true
		}
	}
	return best, bestAction, found
}
