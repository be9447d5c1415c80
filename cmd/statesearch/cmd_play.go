package main

import (
	"fmt"

	"statesearch/config"
	"statesearch/experiments/metrics"
	"statesearch/game/treegame"
	"statesearch/gametree"

	"github.com/spf13/cobra"
)

type playFlags struct {
	algorithm string
	depth     int
	state     string
}

func newPlayCmd(settings func() *config.Config) *cobra.Command {
	var flags playFlags
	cmd := &cobra.Command{
		Use:   "play <tree.yaml>",
		Short: "Search a game tree for the best move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings()
			override(cmd, "algorithm", &cfg.GameAlgorithm, flags.algorithm)
			override(cmd, "depth", &cfg.MaxDepth, flags.depth)
			return runPlay(cmd, args[0], flags.state, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.algorithm, "algorithm", config.DefaultGameAlgorithm, fmt.Sprintf("Game search %v", gametree.Names()))
	f.IntVar(&flags.depth, "depth", config.DefaultMaxDepth, "Depth limit in plies, negative for none")
	f.StringVar(&flags.state, "state", "", "Node to search from (default the root)")
	return cmd
}

func runPlay(cmd *cobra.Command, path, state string, cfg *config.Config) error {
	tree, err := treegame.LoadFile(path)
	if err != nil {
		return err
	}
	if state == "" {
		state = tree.Root()
	}
	if _, ok := tree.Node(state); !ok {
		return fmt.Errorf("unknown node %q", state)
	}
	search, err := gametree.Lookup[string, string](cfg.GameAlgorithm)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	value, action, ok := search(tree, state, treegame.Heuristic, cfg.MaxDepth, gametree.WithMetrics(collector))
	metric := collector.Complete(ok)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Value:   %g\n", value)
	if ok {
		fmt.Fprintf(out, "Action:  %s\n", action)
	} else {
		fmt.Fprintf(out, "Action:  none\n")
	}
	fmt.Fprintf(out, "Nodes:   %d\n", metric.Expanded)
	fmt.Fprintf(out, "Cutoffs: %d\n", metric.Pruned)
	return nil
}
