package searcher

import "statesearch/problem"

type edge struct {
	to   string
	cost float64
}

// mockGraph is a directed graph problem. Actions are the names of the
// destination states, listed in declaration order.
type mockGraph struct {
	start    string
	goals    map[string]bool
	edges    map[string][]edge
	expanded map[string]int // Actions calls per state
}

func newMockGraph(start string, goals ...string) *mockGraph {
	g := &mockGraph{
		start:    start,
		goals:    map[string]bool{},
		edges:    map[string][]edge{},
		expanded: map[string]int{},
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *mockGraph) link(from, to string, cost float64) *mockGraph {
	g.edges[from] = append(g.edges[from], edge{to: to, cost: cost})
	return g
}

func (g *mockGraph) both(a, b string, cost float64) *mockGraph {
	return g.link(a, b, cost).link(b, a, cost)
}

func (g *mockGraph) InitialState() string {
	return g.start
}

func (g *mockGraph) IsGoal(state string) bool {
	return g.goals[state]
}

func (g *mockGraph) Actions(state string) []string {
	g.expanded[state]++
	actions := make([]string, 0, len(g.edges[state]))
	for _, e := range g.edges[state] {
		actions = append(actions, e.to)
	}
	return actions
}

func (g *mockGraph) Successor(_ string, action string) string {
	return action
}

func (g *mockGraph) Cost(state string, action string) float64 {
	for _, e := range g.edges[state] {
		if e.to == action {
			return e.cost
		}
	}
	panic("no edge from " + state + " to " + action)
}

func (g *mockGraph) pathCost(path []string) float64 {
	_, cost, err := problem.Execute[string, string](g, g.start, path)
	if err != nil {
		panic(err)
	}
	return cost
}

// table heuristic reads estimates from a map, defaulting to zero
func table(estimates map[string]float64) problem.Heuristic[string, string] {
	return func(_ problem.Problem[string, string], state string) float64 {
		return estimates[state]
	}
}

// square builds the 2x2 grid A B / C D with unit costs and the goal at D.
func square() *mockGraph {
	return newMockGraph("A", "D").
		both("A", "B", 1).
		both("A", "C", 1).
		both("B", "D", 1).
		both("C", "D", 1)
}

type namedSearch struct {
	name   string
	search func(g *mockGraph, opts ...Option) ([]string, bool)
}

func allSearches(h problem.Heuristic[string, string]) []namedSearch {
	return []namedSearch{
		{BFS, func(g *mockGraph, opts ...Option) ([]string, bool) { return BreadthFirst[string, string](g, g.start, opts...) }},
		{DFS, func(g *mockGraph, opts ...Option) ([]string, bool) { return DepthFirst[string, string](g, g.start, opts...) }},
		{UCS, func(g *mockGraph, opts ...Option) ([]string, bool) { return UniformCost[string, string](g, g.start, opts...) }},
		{Greedy, func(g *mockGraph, opts ...Option) ([]string, bool) { return BestFirst(g, g.start, h, opts...) }},
		{AStar, func(g *mockGraph, opts ...Option) ([]string, bool) { return AStarSearch(g, g.start, h, opts...) }},
	}
}
