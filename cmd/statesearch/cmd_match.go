package main

import (
	"fmt"

	"statesearch/config"
	"statesearch/experiments"
	"statesearch/experiments/metrics"
	"statesearch/game/treegame"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type matchFlags struct {
	agents   []string
	games    int
	depth    int
	maxMoves int
	seed     uint64
	out      string
}

func newMatchCmd(settings func() *config.Config) *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "match <tree.yaml>",
		Short: "Play a game tree repeatedly between agents",
		Long:  "Play a game tree repeatedly between agents, one per turn index.\nAn agent is a game search name or \"random\". Expectimax can only play\nturn index 0.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings()
			override(cmd, "games", &cfg.Games, flags.games)
			override(cmd, "depth", &cfg.MaxDepth, flags.depth)
			override(cmd, "max-moves", &cfg.MaxMoves, flags.maxMoves)
			override(cmd, "seed", &cfg.Seed, flags.seed)
			override(cmd, "out", &cfg.OutputDir, flags.out)
			return runMatch(cmd, args[0], flags.agents, cfg, cmd.Flags().Changed("out"))
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&flags.agents, "agents", []string{config.DefaultGameAlgorithm, experiments.Random}, "Agent per turn index")
	f.IntVar(&flags.games, "games", config.DefaultGames, "Number of games")
	f.IntVar(&flags.depth, "depth", config.DefaultMaxDepth, "Depth limit of searching agents, negative for none")
	f.IntVar(&flags.maxMoves, "max-moves", config.DefaultMaxMoves, "Move limit per game")
	f.Uint64Var(&flags.seed, "seed", 0, "Seed of random agents")
	f.StringVar(&flags.out, "out", config.DefaultOutputDir, "Write CSV records under this directory")
	return cmd
}

func runMatch(cmd *cobra.Command, path string, agents []string, cfg *config.Config, write bool) error {
	tree, err := treegame.LoadFile(path)
	if err != nil {
		return err
	}
	if len(agents) != tree.Agents() {
		return fmt.Errorf("%d agents for a %d agent game", len(agents), tree.Agents())
	}

	configs := lo.Map(agents, func(name string, i int) metrics.AgentConfig {
		return metrics.AgentConfig{
			ID:        i + 1,
			Algorithm: name,
			MaxDepth:  cfg.MaxDepth,
			Seed:      cfg.Seed + uint64(i),
		}
	})
	result, err := experiments.RunMatch(experiments.Match[string, string]{
		Name:      tree.Root(),
		Game:      tree,
		Initial:   tree.Root(),
		Heuristic: treegame.Heuristic,
		Agents:    configs,
		Games:     cfg.Games,
		MaxMoves:  cfg.MaxMoves,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	wins := result.Wins(len(configs))
	for i, agent := range configs {
		fmt.Fprintf(out, "Agent %d (%s): %d wins of %d\n", agent.ID, agent.Algorithm, wins[i], len(result.Games))
	}

	if !write {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, "match")
	if err != nil {
		return err
	}
	if err := experiments.WriteMatch(writer, configs, result); err != nil {
		return err
	}
	fmt.Fprintf(out, "Records: %s\n", writer.Dir())
	return nil
}
