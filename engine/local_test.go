package engine

import (
	"testing"

	"statesearch/experiments/metrics"
	"statesearch/game"
	"statesearch/gametree"

	"github.com/stretchr/testify/require"
)

// nim is a pile of stones; each move takes one or two and whoever takes the
// last stone wins.
type nim struct {
	stones int
	turn   int
}

type nimGame struct{}

func (nimGame) Turn(s nim) int {
	return s.turn
}

func (nimGame) IsTerminal(s nim) (bool, []float64) {
	if s.stones > 0 {
		return false, nil
	}
	values := make([]float64, 2)
	values[1-s.turn] = 1
	values[s.turn] = -1
	return true, values
}

func (nimGame) Actions(s nim) []int {
	actions := []int{}
	for take := 1; take <= min(2, s.stones); take++ {
		actions = append(actions, take)
	}
	return actions
}

func (nimGame) Successor(s nim, take int) nim {
	return nim{stones: s.stones - take, turn: 1 - s.turn}
}

type stuckAgent struct{}

func (stuckAgent) FindMove(nim) (int, metrics.SearchMetric, bool) {
	return 0, metrics.SearchMetric{}, false
}

func minimaxAgent() Agent[nim, int] {
	return NewSearchAgent[nim, int](nimGame{}, gametree.Minimax[nim, int], game.NullHeuristic[nim, int], gametree.Unlimited)
}

func TestRun(t *testing.T) {
	t.Run("perfect play wins from a winning position", func(t *testing.T) {
		e := LocalEngine[nim, int](nimGame{}, []Agent[nim, int]{minimaxAgent(), minimaxAgent()}, MaxMoves)

		result, err := e.Run(nim{stones: 4})

		require.NoError(t, err)
		require.Equal(t, []float64{1, -1}, result.Values, "First agent should win")
		require.Equal(t, []float64{1, -1}, result.Game.Values)
		require.Equal(t, 0, result.State.stones)
		require.Equal(t, 3, result.Game.TotalMoves)
		require.Len(t, result.Moves, 3)
		for i, move := range result.Moves {
			require.Equal(t, i+1, move.Step)
			require.Equal(t, i%2, move.Player, "Agents should alternate")
			require.Equal(t, "minimax", move.Algorithm)
			require.True(t, move.Found)
			require.Positive(t, move.Expanded)
		}
		require.False(t, result.Game.EndTime.Before(result.Game.StartTime))
	})

	t.Run("terminal initial state", func(t *testing.T) {
		e := LocalEngine[nim, int](nimGame{}, []Agent[nim, int]{minimaxAgent(), minimaxAgent()}, MaxMoves)

		result, err := e.Run(nim{stones: 0, turn: 1})

		require.NoError(t, err)
		require.Equal(t, []float64{1, -1}, result.Values)
		require.Empty(t, result.Moves)
	})

	t.Run("move limit", func(t *testing.T) {
		e := LocalEngine[nim, int](nimGame{}, []Agent[nim, int]{minimaxAgent(), minimaxAgent()}, 1)

		result, err := e.Run(nim{stones: 10})

		require.NoError(t, err)
		require.Nil(t, result.Values, "Should not report values without a terminal state")
		require.Equal(t, 1, result.Game.TotalMoves)
		require.Equal(t, 9, result.State.stones)
	})

	t.Run("missing agent", func(t *testing.T) {
		e := LocalEngine[nim, int](nimGame{}, []Agent[nim, int]{minimaxAgent()}, MaxMoves)

		_, err := e.Run(nim{stones: 3, turn: 1})

		require.ErrorIs(t, err, ErrNoAgent)
	})

	t.Run("agent without a move", func(t *testing.T) {
		e := LocalEngine[nim, int](nimGame{}, []Agent[nim, int]{stuckAgent{}, minimaxAgent()}, MaxMoves)

		result, err := e.Run(nim{stones: 3})

		require.ErrorIs(t, err, ErrNoMove)
		require.Equal(t, 3, result.State.stones)
	})

	t.Run("no agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine[nim, int](nimGame{}, nil, MaxMoves)
		})
	})
}

func TestRandomAgent(t *testing.T) {
	play := func() Result[nim] {
		agents := []Agent[nim, int]{NewRandomAgent[nim, int](nimGame{}, 1), NewRandomAgent[nim, int](nimGame{}, 2)}
		result, err := LocalEngine[nim, int](nimGame{}, agents, MaxMoves).Run(nim{stones: 20})
		require.NoError(t, err)
		return result
	}

	first, second := play(), play()

	require.Len(t, first.Values, 2, "Game should reach a terminal state")
	require.Equal(t, 0.0, first.Values[0]+first.Values[1])
	require.Equal(t, len(first.Moves), len(second.Moves), "Same seeds should replay the same game")
	require.Equal(t, first.Values, second.Values)
	for _, move := range first.Moves {
		require.Equal(t, "random", move.Algorithm)
		require.True(t, move.Found)
	}

	_, _, ok := NewRandomAgent[nim, int](nimGame{}, 1).FindMove(nim{stones: 0})
	require.False(t, ok)
}
