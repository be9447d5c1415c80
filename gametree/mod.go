// Package gametree implements depth-limited adversarial search over games
// with one maximizing agent (turn index 0) and any number of other agents.
//
// Every search returns the value of the state for the maximizer, the action
// achieving it, and whether such an action exists. No action is reported for
// terminal states, depth cutoffs and chance nodes.
package gametree

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"statesearch/experiments/metrics"
	"statesearch/game"

	"github.com/rs/zerolog/log"
)

// Unlimited disables the depth cutoff, as does any other negative depth.
const Unlimited = -1

const (
	greedyName           = "greedy"
	minimaxName          = "minimax"
	alphaBetaName        = "alphabeta"
	alphaBetaOrderedName = "alphabeta-ordered"
	expectimaxName       = "expectimax"
)

var ErrUnknownAlgorithm = errors.New("unknown game search algorithm")

type Option func(o *options)

type options struct {
	metrics metrics.Collector
}

// WithMetrics records visited nodes and cutoffs into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// MaximizerOnly reports whether the named search models the other agents as
// chance. Such a search reports no action at their turns, so it can only
// choose moves for the maximizer.
func MaximizerOnly(name string) bool {
	return strings.EqualFold(name, expectimaxName)
}

type Algorithm[S, A any] func(g game.Game[S, A], state S, h game.Heuristic[S, A], maxDepth int, opts ...Option) (float64, A, bool)

func Names() []string {
	return []string{greedyName, minimaxName, alphaBetaName, alphaBetaOrderedName, expectimaxName}
}

func Lookup[S, A any](name string) (Algorithm[S, A], error) {
	switch strings.ToLower(name) {
	case greedyName:
		return Greedy[S, A], nil
	case minimaxName:
		return Minimax[S, A], nil
	case alphaBetaName:
		return AlphaBeta[S, A], nil
	case alphaBetaOrderedName:
		return AlphaBetaOrdered[S, A], nil
	case expectimaxName:
		return Expectimax[S, A], nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// search holds the configuration of one top-level call. Recursion state
// (depth, alpha, beta) is passed down the call chain.
type search[S, A any] struct {
	game      game.Game[S, A]
	heuristic game.Heuristic[S, A]
	maxDepth  int
	ordered   bool
	metrics   metrics.Collector
}

func newSearch[S, A any](algorithm string, g game.Game[S, A], h game.Heuristic[S, A], maxDepth int, opts []Option) *search[S, A] {
	o := &options{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range opts {
		option(o)
	}
	if h == nil {
		h = game.NullHeuristic[S, A]
	}
	o.metrics.Start(algorithm)

	return &search[S, A]{
		game:      g,
		heuristic: h,
		maxDepth:  maxDepth,
		metrics:   o.metrics,
	}
}

// leaf evaluates state when the recursion stops there: at terminal states
// and at the depth cutoff.
func (s *search[S, A]) leaf(state S, depth int) (float64, bool) {
	s.metrics.AddExpansion()

	if terminal, values := s.game.IsTerminal(state); terminal {
		return values[game.Maximizer], true
	}
	if s.maxDepth >= 0 && depth >= s.maxDepth {
		return s.heuristic(s.game, state, game.Maximizer), true
	}
	return 0, false
}

// successors yields the children of state in the order they are searched.
func (s *search[S, A]) successors(state S, actions []A, maximizing bool) iter.Seq2[A, S] {
	if s.ordered {
		return s.orderedSuccessors(state, actions, maximizing)
	}
	return func(yield func(A, S) bool) {
		for _, action := range actions {
			s.metrics.AddGenerated()
			if !yield(action, s.game.Successor(state, action)) {
				return
			}
		}
	}
}

func (s *search[S, A]) finish(value float64, action A, ok bool) (float64, A, bool) {
	metric := s.metrics.Complete(ok)
	log.Debug().
		Str("algorithm", metric.Algorithm).
		Float64("value", value).
		Bool("action", ok).
		Int("nodes", metric.Expanded).
		Int("cutoffs", metric.Pruned).
		Msg("search finished")
	return value, action, ok
}

// worst is the starting value of a node before any child is seen.
func worst(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// improves reports whether value strictly beats best; the first child seen
// keeps ties.
func improves(maximizing bool, value, best float64) bool {
	if maximizing {
		return value > best
	}
	return value < best
}
