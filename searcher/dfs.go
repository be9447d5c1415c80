package searcher

import (
	"statesearch/experiments/metrics"
	"statesearch/problem"
)

// depthFirstWalker holds the state of one depth-first traversal. A fresh
// walker is built per call so concurrent searches never share it.
type depthFirstWalker[S comparable, A any] struct {
	problem problem.Problem[S, A]
	visited map[S]struct{}
	path    []A
	metrics metrics.Collector
}

// DepthFirst returns some path from initial to a goal, with no optimality
// guarantee. A state is entered at most once per call.
func DepthFirst[S comparable, A any](p problem.Problem[S, A], initial S, opts ...Option) ([]A, bool) {
	o := newOptions(DFS, opts)

	w := &depthFirstWalker[S, A]{
		problem: p,
		visited: make(map[S]struct{}),
		metrics: o.metrics,
	}
	if !w.walk(initial) {
		return finish[A](o, nil, false)
	}
	return finish(o, append([]A{}, w.path...), true)
}

func (w *depthFirstWalker[S, A]) walk(state S) bool {
	w.visited[state] = struct{}{}
	if w.problem.IsGoal(state) {
		return true
	}
	w.metrics.AddExpansion()

	for _, action := range w.problem.Actions(state) {
		next := w.problem.Successor(state, action)
		if _, ok := w.visited[next]; ok {
			continue
		}
		w.metrics.AddGenerated()

		w.path = append(w.path, action)
		w.metrics.ObserveFrontier(len(w.path))
		if w.walk(next) {
			return true
		}
		// Backtrack
		w.path = w.path[:len(w.path)-1]
	}
	return false
}
