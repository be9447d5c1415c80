package searcher

import (
	"errors"
	"fmt"
	"strings"

	"statesearch/experiments/metrics"
	"statesearch/problem"

	"github.com/rs/zerolog/log"
)

const (
	BFS    = "bfs"
	DFS    = "dfs"
	UCS    = "ucs"
	Greedy = "greedy"
	AStar  = "astar"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

type Option func(o *options)

type options struct {
	metrics metrics.Collector
}

// WithMetrics records the work done by the search into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func newOptions(algorithm string, opts []Option) *options {
	o := &options{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range opts {
		option(o)
	}
	o.metrics.Start(algorithm)
	return o
}

// Algorithm is the common shape of every graph search. Uninformed searches
// ignore the heuristic.
type Algorithm[S comparable, A any] func(p problem.Problem[S, A], initial S, h problem.Heuristic[S, A], opts ...Option) ([]A, bool)

func Names() []string {
	return []string{BFS, DFS, UCS, Greedy, AStar}
}

func Lookup[S comparable, A any](name string) (Algorithm[S, A], error) {
	switch strings.ToLower(name) {
	case BFS:
		return func(p problem.Problem[S, A], initial S, _ problem.Heuristic[S, A], opts ...Option) ([]A, bool) {
			return BreadthFirst(p, initial, opts...)
		}, nil
	case DFS:
		return func(p problem.Problem[S, A], initial S, _ problem.Heuristic[S, A], opts ...Option) ([]A, bool) {
			return DepthFirst(p, initial, opts...)
		}, nil
	case UCS:
		return func(p problem.Problem[S, A], initial S, _ problem.Heuristic[S, A], opts ...Option) ([]A, bool) {
			return UniformCost(p, initial, opts...)
		}, nil
	case Greedy:
		return BestFirst[S, A], nil
	case AStar:
		return AStarSearch[S, A], nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

type node[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

func finish[A any](o *options, path []A, found bool) ([]A, bool) {
	metric := o.metrics.Complete(found)
	log.Debug().
		Str("algorithm", metric.Algorithm).
		Bool("found", found).
		Int("length", len(path)).
		Int("expanded", metric.Expanded).
		Msg("search finished")
	return path, found
}
