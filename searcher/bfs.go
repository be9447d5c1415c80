package searcher

import (
	"statesearch/frontier"
	"statesearch/problem"
	"statesearch/utils"
)

// BreadthFirst returns a path with the fewest actions from initial to a goal.
// Successors are goal-tested when generated, one level earlier than when
// dequeued.
func BreadthFirst[S comparable, A any](p problem.Problem[S, A], initial S, opts ...Option) ([]A, bool) {
	o := newOptions(BFS, opts)

	if p.IsGoal(initial) {
		return finish(o, []A{}, true)
	}

	visited := make(map[S]struct{})
	queue := frontier.NewQueue[node[S, A]]()
	queue.Push(node[S, A]{state: initial})

	for queue.Len() > 0 {
		current, _ := queue.Pop()
		if _, ok := visited[current.state]; ok {
			continue
		}
		visited[current.state] = struct{}{}
		o.metrics.AddExpansion()

		for _, action := range p.Actions(current.state) {
			next := p.Successor(current.state, action)
			if _, ok := visited[next]; ok {
				continue
			}

			path := utils.Extend(current.path, action)
			if p.IsGoal(next) {
				return finish(o, path, true)
			}
			queue.Push(node[S, A]{state: next, path: path})
			o.metrics.AddGenerated()
		}
		o.metrics.ObserveFrontier(queue.Len())
	}
	return finish[A](o, nil, false)
}
