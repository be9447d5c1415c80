package experiments

import (
	"errors"
	"fmt"
	"strings"

	"statesearch/engine"
	"statesearch/experiments/metrics"
	"statesearch/game"
	"statesearch/gametree"

	"github.com/rs/zerolog/log"
)

// Random is the AgentConfig algorithm of an agent playing uniformly at random.
const Random = "random"

var ErrUnsupportedSeat = errors.New("algorithm cannot play this turn index")

// Match plays a game repeatedly between a fixed set of agents, one per turn
// index.
type Match[S, A any] struct {
	Name      string
	Game      game.Game[S, A]
	Initial   S
	Heuristic game.Heuristic[S, A]
	Agents    []metrics.AgentConfig
	Games     int
	MaxMoves  int
}

type MatchResult struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts for each agent the games it finished with the highest value.
func (r MatchResult) Wins(agents int) []int {
	wins := make([]int, agents)
	for _, record := range r.Games {
		if record.Values == nil {
			continue
		}
		best := 0
		for i, v := range record.Values {
			if v > record.Values[best] {
				best = i
			}
		}
		if best < agents {
			wins[best]++
		}
	}
	return wins
}

// NewAgent builds the agent playing at turn index seat.
func NewAgent[S, A any](g game.Game[S, A], h game.Heuristic[S, A], seat int, config metrics.AgentConfig) (engine.Agent[S, A], error) {
	if strings.EqualFold(config.Algorithm, Random) {
		return engine.NewRandomAgent(g, config.Seed), nil
	}
	if seat != game.Maximizer && gametree.MaximizerOnly(config.Algorithm) {
		return nil, fmt.Errorf("agent %d: %s at turn %d: %w", config.ID, config.Algorithm, seat, ErrUnsupportedSeat)
	}
	search, err := gametree.Lookup[S, A](config.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	return engine.NewSearchAgent(g, search, h, config.MaxDepth), nil
}

// RunMatch plays the match and returns one game record per game and one move
// record per move. Random agents are reseeded for every game so that games
// differ but stay reproducible.
func RunMatch[S, A any](m Match[S, A]) (MatchResult, error) {
	var result MatchResult
	ids := make([]int, len(m.Agents))
	for i, config := range m.Agents {
		ids[i] = config.ID
		if _, err := NewAgent(m.Game, m.Heuristic, i, config); err != nil {
			return result, err
		}
	}

	log.Info().Msgf("starting %s match between agents %v...", m.Name, ids)

	for i := 0; i < m.Games; i++ {
		agents := make([]engine.Agent[S, A], len(m.Agents))
		for j, config := range m.Agents {
			config.Seed += uint64(i)
			agent, err := NewAgent(m.Game, m.Heuristic, j, config)
			if err != nil {
				return result, err
			}
			agents[j] = agent
		}

		log.Info().Msgf("starting game %d of %d...", i+1, m.Games)

		played, err := engine.LocalEngine(m.Game, agents, m.MaxMoves).Run(m.Initial)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         i + 1,
			Agents:     ids,
			GameMetric: played.Game,
		})
		for _, mm := range played.Moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with values: %v", i+1, played.Values)
	}

	log.Info().Msgf("completed %s match", m.Name)
	return result, nil
}

// WriteMatch stores the agent configs and the match records.
func WriteMatch(writer *metrics.Writer, configs []metrics.AgentConfig, result MatchResult) error {
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
