package experiments

import (
	"context"
	"path/filepath"
	"testing"

	"statesearch/experiments/metrics"
	"statesearch/game/treegame"
	"statesearch/gametree"
	"statesearch/problem/grid"
	"statesearch/searcher"

	"github.com/stretchr/testify/require"
)

const chain = `
root: A
nodes:
  - {id: A, turn: 0, children: [B, C]}
  - {id: B, turn: 1, children: [B1, B2]}
  - {id: C, turn: 1, children: [C1, C2]}
  - {id: B1, values: [3, -3]}
  - {id: B2, values: [5, -5]}
  - {id: C1, values: [-2, 2]}
  - {id: C2, values: [9, -9]}
`

func TestRunMatch(t *testing.T) {
	tree, err := treegame.Parse([]byte(chain))
	require.NoError(t, err)

	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: "alphabeta", MaxDepth: gametree.Unlimited},
		{ID: 2, Algorithm: Random, Seed: 5},
	}
	match := Match[string, string]{
		Name:      "chain",
		Game:      tree,
		Initial:   tree.Root(),
		Heuristic: treegame.Heuristic,
		Agents:    configs,
		Games:     4,
		MaxMoves:  10,
	}

	result, err := RunMatch(match)
	require.NoError(t, err)

	require.Len(t, result.Games, 4)
	require.Len(t, result.Moves, 8, "Every game should take two moves")
	for i, record := range result.Games {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, []int{1, 2}, record.Agents)
		require.Equal(t, 2, record.TotalMoves)
	}
	require.Equal(t, "alphabeta", result.Moves[0].Algorithm)
	require.Equal(t, "random", result.Moves[1].Algorithm)
	require.Equal(t, 4, result.Wins(2)[0], "Move B guarantees a positive value")

	writer, err := metrics.NewWriter(t.TempDir(), "match")
	require.NoError(t, err)
	require.NoError(t, WriteMatch(writer, configs, result))
	require.FileExists(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
	require.FileExists(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.FileExists(t, filepath.Join(writer.Dir(), "move_records.csv"))
}

func TestRunMatchUnknownAlgorithm(t *testing.T) {
	tree, err := treegame.Parse([]byte(chain))
	require.NoError(t, err)

	_, err = RunMatch(Match[string, string]{
		Game:    tree,
		Initial: tree.Root(),
		Agents:  []metrics.AgentConfig{{ID: 1, Algorithm: "negamax"}, {ID: 2, Algorithm: Random}},
		Games:   1,
	})
	require.ErrorIs(t, err, gametree.ErrUnknownAlgorithm)
}

func TestRunMatchSeats(t *testing.T) {
	tree, err := treegame.Parse([]byte(chain))
	require.NoError(t, err)
	match := func(agents ...string) Match[string, string] {
		configs := make([]metrics.AgentConfig, len(agents))
		for i, name := range agents {
			configs[i] = metrics.AgentConfig{ID: i + 1, Algorithm: name, MaxDepth: gametree.Unlimited}
		}
		return Match[string, string]{Game: tree, Initial: tree.Root(), Heuristic: treegame.Heuristic, Agents: configs, Games: 2}
	}

	t.Run("expectimax cannot play a chance turn", func(t *testing.T) {
		result, err := RunMatch(match(Random, "expectimax"))

		require.ErrorIs(t, err, ErrUnsupportedSeat)
		require.ErrorContains(t, err, "expectimax at turn 1")
		require.Empty(t, result.Games, "Should fail before playing")
	})

	t.Run("expectimax plays the maximizer", func(t *testing.T) {
		result, err := RunMatch(match("expectimax", Random))

		require.NoError(t, err)
		require.Len(t, result.Games, 2)
		require.Equal(t, "expectimax", result.Moves[0].Algorithm)
	})

	t.Run("minimizing searches play any turn", func(t *testing.T) {
		result, err := RunMatch(match(Random, "alphabeta-ordered"))

		require.NoError(t, err)
		require.Len(t, result.Games, 2)
		for _, record := range result.Games {
			require.Equal(t, 2, record.TotalMoves)
		}
	})
}

func TestWins(t *testing.T) {
	result := MatchResult{Games: []metrics.GameRecord{
		{GameMetric: metrics.GameMetric{Values: []float64{1, -1}}},
		{GameMetric: metrics.GameMetric{Values: []float64{-1, 1}}},
		{GameMetric: metrics.GameMetric{Values: []float64{2, -2}}},
		{GameMetric: metrics.GameMetric{}},
	}}

	require.Equal(t, []int{2, 1}, result.Wins(2))
}

func TestRunBenchmark(t *testing.T) {
	maze, err := grid.New("corridor", []string{
		"S.#G",
		".5..",
		"....",
	})
	require.NoError(t, err)

	records, err := RunBenchmark(context.Background(), Benchmark[grid.Point, grid.Direction]{
		Name:       maze.Name(),
		Problem:    maze,
		Heuristic:  grid.Manhattan,
		Algorithms: searcher.Names(),
		Parallel:   2,
	})
	require.NoError(t, err)

	require.Len(t, records, len(searcher.Names()))
	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, searcher.Names()[i], record.Algorithm, "Records should keep the algorithm order")
		require.Equal(t, "corridor", record.Problem)
		require.True(t, record.Found)
		require.Positive(t, record.Expanded)
	}
	require.Equal(t, 5, records[0].PathLength, "Breadth-first should take the fewest moves")
	require.Equal(t, 9.0, records[0].PathCost, "Breadth-first should cross the expensive cell")
	require.Equal(t, 7.0, records[2].PathCost, "Uniform-cost should take the cheapest route")
	require.Equal(t, 7.0, records[4].PathCost, "A* should take the cheapest route")
}

func TestRunBenchmarkNoSolution(t *testing.T) {
	maze, err := grid.New("walled", []string{"S#G"})
	require.NoError(t, err)

	records, err := RunBenchmark(context.Background(), Benchmark[grid.Point, grid.Direction]{
		Problem:    maze,
		Algorithms: []string{searcher.BFS, searcher.AStar},
	})
	require.NoError(t, err)

	for _, record := range records {
		require.False(t, record.Found)
		require.Equal(t, -1, record.PathLength)
	}
}

func TestRunBenchmarkUnknownAlgorithm(t *testing.T) {
	maze, err := grid.New("", []string{"SG"})
	require.NoError(t, err)

	_, err = RunBenchmark(context.Background(), Benchmark[grid.Point, grid.Direction]{
		Problem:    maze,
		Algorithms: []string{"ida"},
	})
	require.ErrorIs(t, err, searcher.ErrUnknownAlgorithm)
}
