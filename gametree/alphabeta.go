package gametree

import (
	"cmp"
	"iter"
	"slices"

	"statesearch/game"

	"github.com/samber/lo"
)

// AlphaBeta returns the same value as Minimax for the same depth, skipping
// branches that cannot change the result.
func AlphaBeta[S, A any](g game.Game[S, A], state S, h game.Heuristic[S, A], maxDepth int, opts ...Option) (float64, A, bool) {
	s := newSearch(alphaBetaName, g, h, maxDepth, opts)
	return s.finish(s.alphaBeta(state, 0, worst(true), worst(false)))
}

// AlphaBetaOrdered is AlphaBeta with siblings searched by their heuristic
// estimate: best first for the maximizer, worst first for the minimizers.
func AlphaBetaOrdered[S, A any](g game.Game[S, A], state S, h game.Heuristic[S, A], maxDepth int, opts ...Option) (float64, A, bool) {
	s := newSearch(alphaBetaOrderedName, g, h, maxDepth, opts)
	s.ordered = true
	return s.finish(s.alphaBeta(state, 0, worst(true), worst(false)))
}

// alpha is the value already guaranteed to the maximizer on the current
// path, beta the value guaranteed to the minimizers.
func (s *search[S, A]) alphaBeta(state S, depth int, alpha, beta float64) (float64, A, bool) {
	var bestAction A
	if value, ok := s.leaf(state, depth); ok {
		return value, bestAction, false
	}

	maximizing := s.game.Turn(state) == game.Maximizer
	best, found := worst(maximizing), false
	for action, next := range s.successors(state, s.game.Actions(state), maximizing) {
		value, _, _ := s.alphaBeta(next, depth+1, alpha, beta)
		if improves(maximizing, value, best) {
			best, bestAction, found = value, action, true
		}

		if maximizing {
			if value >= beta {
				s.metrics.AddPrune()
				return value, action, true
			}
			alpha = max(alpha, value)
		} else {
			if value <= alpha {
				s.metrics.AddPrune()
				return value, action, true
			}
			beta = min(beta, value)
		}
	}
	return best, bestAction, found
}

type child[S, A any] struct {
	action   A
	state    S
	estimate float64
}

func (s *search[S, A]) orderedSuccessors(state S, actions []A, maximizing bool) iter.Seq2[A, S] {
	children := lo.Map(actions, func(action A, _ int) child[S, A] {
		s.metrics.AddGenerated()
		next := s.game.Successor(state, action)
		return child[S, A]{
			action:   action,
			state:    next,
			estimate: s.heuristic(s.game, next, game.Maximizer),
		}
	})
	// Stable, so equal estimates keep the action order
	slices.SortStableFunc(children, func(a, b child[S, A]) int {
		if maximizing {
			return cmp.Compare(b.estimate, a.estimate)
		}
		return cmp.Compare(a.estimate, b.estimate)
	})

	return func(yield func(A, S) bool) {
		for _, c := range children {
			if !yield(c.action, c.state) {
				return
			}
		}
	}
}
