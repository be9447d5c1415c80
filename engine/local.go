package engine

import (
	"fmt"
	"time"

	"statesearch/experiments/metrics"
	"statesearch/game"

	"github.com/rs/zerolog/log"
)

type Engine[S, A any] struct {
	Game     game.Game[S, A]
	Agents   []Agent[S, A] // Indexed by turn
	MaxMoves int           // Unlimited when not positive
}

func LocalEngine[S, A any](g game.Game[S, A], agents []Agent[S, A], maxMoves int) *Engine[S, A] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Engine[S, A]{
		Game:     g,
		Agents:   agents,
		MaxMoves: maxMoves,
	}
}

// Run plays from initial until a terminal state or the move limit.
func (e *Engine[S, A]) Run(initial S) (Result[S], error) {
	state := initial
	result := Result[S]{
		Game: metrics.GameMetric{StartTime: time.Now()},
	}
	finish := func() Result[S] {
		result.State = state
		result.Game.EndTime = time.Now()
		result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
		result.Game.TotalMoves = len(result.Moves)
		result.Game.Values = result.Values
		return result
	}

	log.Info().Msgf("agent %d is starting", e.Game.Turn(state))

	for step := 1; ; step++ {
		if terminal, values := e.Game.IsTerminal(state); terminal {
			result.Values = values
			log.Info().Msgf("game over after %d moves with values %v", step-1, values)
			return finish(), nil
		}
		if e.MaxMoves > 0 && step > e.MaxMoves {
			log.Info().Msgf("stopped after %d moves without a result", e.MaxMoves)
			return finish(), nil
		}

		turn := e.Game.Turn(state)
		if turn < 0 || turn >= len(e.Agents) {
			return finish(), fmt.Errorf("step %d: turn %d with %d agents: %w", step, turn, len(e.Agents), ErrNoAgent)
		}

		action, metric, ok := e.Agents[turn].FindMove(state)
		if !ok {
			return finish(), fmt.Errorf("step %d: agent %d: %w", step, turn, ErrNoMove)
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         step,
			Player:       turn,
			SearchMetric: metric,
		})
		log.Debug().Int("step", step).Int("agent", turn).Msgf("playing %v", action)

		state = e.Game.Successor(state, action)
	}
}
