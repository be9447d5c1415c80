package searcher

import (
	"statesearch/frontier"
	"statesearch/problem"
	"statesearch/utils"
)

// priority computes the frontier key of a state reached with the given
// accumulated cost.
type priority[S comparable] func(cost float64, state S) float64

// UniformCost returns a path with the minimum total cost, assuming
// non-negative action costs.
func UniformCost[S comparable, A any](p problem.Problem[S, A], initial S, opts ...Option) ([]A, bool) {
	o := newOptions(UCS, opts)
	return bestFirst(p, initial, func(cost float64, _ S) float64 {
		return cost
	}, o)
}

// BestFirst is greedy best-first search: states are expanded by their
// heuristic estimate alone, ignoring the cost so far. A nil h estimates 0.
func BestFirst[S comparable, A any](p problem.Problem[S, A], initial S, h problem.Heuristic[S, A], opts ...Option) ([]A, bool) {
	o := newOptions(Greedy, opts)
	if h == nil {
		h = problem.NullHeuristic[S, A]
	}
	return bestFirst(p, initial, func(_ float64, state S) float64 {
		return h(p, state)
	}, o)
}

// AStarSearch orders states by cost so far plus the heuristic estimate. The
// returned path has minimum cost when h is admissible and consistent.
func AStarSearch[S comparable, A any](p problem.Problem[S, A], initial S, h problem.Heuristic[S, A], opts ...Option) ([]A, bool) {
	o := newOptions(AStar, opts)
	if h == nil {
		h = problem.NullHeuristic[S, A]
	}
	return bestFirst(p, initial, func(cost float64, state S) float64 {
		return cost + h(p, state)
	}, o)
}

// bestFirst is the graph search shared by the priority-ordered algorithms.
// Goals are tested when dequeued. The first dequeued copy of a state wins:
// later copies, even cheaper ones, are skipped once it has been expanded.
func bestFirst[S comparable, A any](p problem.Problem[S, A], initial S, key priority[S], o *options) ([]A, bool) {
	visited := make(map[S]struct{})
	queue := frontier.NewPriorityQueue[node[S, A]]()
	queue.Push(node[S, A]{state: initial, path: []A{}}, key(0, initial))

	for queue.Len() > 0 {
		current, _, _ := queue.Pop()
		if _, ok := visited[current.state]; ok {
			continue
		}
		if p.IsGoal(current.state) {
			return finish(o, current.path, true)
		}
		visited[current.state] = struct{}{}
		o.metrics.AddExpansion()

		for _, action := range p.Actions(current.state) {
			next := p.Successor(current.state, action)
			if _, ok := visited[next]; ok {
				continue
			}

			cost := current.cost + p.Cost(current.state, action)
			queue.Push(node[S, A]{
				state: next,
				path:  utils.Extend(current.path, action),
				cost:  cost,
			}, key(cost, next))
			o.metrics.AddGenerated()
		}
		o.metrics.ObserveFrontier(queue.Len())
	}
	return finish[A](o, nil, false)
}
