package engine

import (
	"time"

	"statesearch/experiments/metrics"
	"statesearch/game"
	"statesearch/gametree"

	"golang.org/x/exp/rand"
)

// SearchAgent plays the action returned by a game tree search.
type SearchAgent[S, A any] struct {
	game      game.Game[S, A]
	search    gametree.Algorithm[S, A]
	heuristic game.Heuristic[S, A]
	maxDepth  int
}

func NewSearchAgent[S, A any](g game.Game[S, A], search gametree.Algorithm[S, A], h game.Heuristic[S, A], maxDepth int) *SearchAgent[S, A] {
	return &SearchAgent[S, A]{
		game:      g,
		search:    search,
		heuristic: h,
		maxDepth:  maxDepth,
	}
}

func (a *SearchAgent[S, A]) FindMove(state S) (A, metrics.SearchMetric, bool) {
	collector := metrics.NewCollector()
	_, action, ok := a.search(a.game, state, a.heuristic, a.maxDepth, gametree.WithMetrics(collector))
	return action, collector.Complete(ok), ok
}

// RandomAgent plays uniformly at random. It is the opponent model that
// Expectimax assumes.
type RandomAgent[S, A any] struct {
	game game.Game[S, A]
	rng  *rand.Rand
}

func NewRandomAgent[S, A any](g game.Game[S, A], seed uint64) *RandomAgent[S, A] {
	return &RandomAgent[S, A]{
		game: g,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent[S, A]) FindMove(state S) (A, metrics.SearchMetric, bool) {
	start := time.Now()
	metric := metrics.SearchMetric{Algorithm: "random"}

	actions := a.game.Actions(state)
	if len(actions) == 0 {
		var none A
		metric.Duration = time.Since(start)
		return none, metric, false
	}
	action := actions[a.rng.Intn(len(actions))]

	metric.Duration = time.Since(start)
	metric.Generated = len(actions)
	metric.Found = true
	return action, metric, true
}
