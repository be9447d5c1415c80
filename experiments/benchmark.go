package experiments

import (
	"context"
	"fmt"

	"statesearch/experiments/metrics"
	"statesearch/problem"
	"statesearch/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Benchmark runs several graph searches on the same problem.
type Benchmark[S comparable, A comparable] struct {
	Name       string
	Problem    problem.Problem[S, A]
	Heuristic  problem.Heuristic[S, A]
	Algorithms []string
	Parallel   int // Concurrent searches, unlimited when not positive
}

// RunBenchmark runs every algorithm concurrently and returns one record per
// algorithm, in the order the algorithms were given. A search that finds no
// solution is recorded with a path length of -1.
func RunBenchmark[S comparable, A comparable](ctx context.Context, b Benchmark[S, A]) ([]metrics.SearchRecord, error) {
	searches := make([]searcher.Algorithm[S, A], len(b.Algorithms))
	for i, name := range b.Algorithms {
		search, err := searcher.Lookup[S, A](name)
		if err != nil {
			return nil, err
		}
		searches[i] = search
	}
	h := b.Heuristic
	if h == nil {
		h = problem.NullHeuristic[S, A]
	}

	log.Info().Msgf("starting %s benchmark with %v...", b.Name, b.Algorithms)

	records := make([]metrics.SearchRecord, len(searches))
	group, ctx := errgroup.WithContext(ctx)
	if b.Parallel > 0 {
		group.SetLimit(b.Parallel)
	}
	for i, search := range searches {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			collector := metrics.NewCollector()
			initial := b.Problem.InitialState()
			path, found := search(b.Problem, initial, h, searcher.WithMetrics(collector))

			record := metrics.SearchRecord{
				ID:           i + 1,
				Problem:      b.Name,
				PathLength:   -1,
				SearchMetric: collector.Complete(found),
			}
			if found {
				_, cost, err := problem.Execute(b.Problem, initial, path)
				if err != nil {
					return fmt.Errorf("%s returned an invalid path: %w", b.Algorithms[i], err)
				}
				record.PathLength = len(path)
				record.PathCost = cost
			}
			records[i] = record

			log.Info().Msgf("completed %s: found=%t length=%d cost=%g expanded=%d",
				record.Algorithm, record.Found, record.PathLength, record.PathCost, record.Expanded)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msgf("completed %s benchmark", b.Name)
	return records, nil
}
