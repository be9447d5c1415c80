package gametree

import "statesearch/game"

// Greedy looks one move ahead and picks the action whose successor has the
// highest heuristic value for the acting agent. maxDepth is ignored.
func Greedy[S, A any](g game.Game[S, A], state S, h game.Heuristic[S, A], _ int, opts ...Option) (float64, A, bool) {
	s := newSearch(greedyName, g, h, 1, opts)
	s.metrics.AddExpansion()

	var bestAction A
	agent := g.Turn(state)
	if terminal, values := g.IsTerminal(state); terminal {
		return s.finish(values[agent], bestAction, false)
	}

	best, found := worst(true), false
	for action, next := range s.successors(state, g.Actions(state), true) {
		if value := s.heuristic(g, next, agent); value > best {
			best, bestAction, found = value, action, true
		}
	}
	if !found {
		return s.finish(s.heuristic(g, state, agent), bestAction, false)
	}
	return s.finish(best, bestAction, true)
}
