package main

import (
	"fmt"

	"statesearch/config"
	"statesearch/experiments/metrics"
	"statesearch/problem"
	"statesearch/problem/grid"
	"statesearch/searcher"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	algorithm string
	heuristic string
	render    bool
}

func newSolveCmd(settings func() *config.Config) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve <maze.yaml>",
		Short: "Find a path through a maze with a graph search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings()
			override(cmd, "algorithm", &cfg.GraphAlgorithm, flags.algorithm)
			override(cmd, "heuristic", &cfg.Heuristic, flags.heuristic)
			return runSolve(cmd, args[0], cfg, flags.render)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.algorithm, "algorithm", config.DefaultGraphAlgorithm, fmt.Sprintf("Graph search %v", searcher.Names()))
	f.StringVar(&flags.heuristic, "heuristic", config.DefaultHeuristic, fmt.Sprintf("Heuristic %v", lo.Keys(grid.Heuristics)))
	f.BoolVar(&flags.render, "render", true, "Draw the path on the maze")
	return cmd
}

func runSolve(cmd *cobra.Command, path string, cfg *config.Config, render bool) error {
	maze, err := grid.LoadFile(path)
	if err != nil {
		return err
	}
	search, err := searcher.Lookup[grid.Point, grid.Direction](cfg.GraphAlgorithm)
	if err != nil {
		return err
	}
	h, ok := grid.Heuristics[cfg.Heuristic]
	if !ok {
		return fmt.Errorf("unknown heuristic %q", cfg.Heuristic)
	}

	collector := metrics.NewCollector()
	solution, found := search(maze, maze.InitialState(), h, searcher.WithMetrics(collector))
	metric := collector.Complete(found)

	out := cmd.OutOrStdout()
	if !found {
		fmt.Fprintf(out, "No solution (%s expanded %d states)\n", metric.Algorithm, metric.Expanded)
		return nil
	}
	_, cost, err := problem.Execute(maze, maze.InitialState(), solution)
	if err != nil {
		return err
	}

	moves := lo.Map(solution, func(d grid.Direction, _ int) string { return string(d) })
	fmt.Fprintf(out, "Path:     %v\n", moves)
	fmt.Fprintf(out, "Length:   %d\n", len(solution))
	fmt.Fprintf(out, "Cost:     %g\n", cost)
	fmt.Fprintf(out, "Expanded: %d\n", metric.Expanded)
	if render {
		fmt.Fprintf(out, "\n%s", maze.Render(solution))
	}
	return nil
}
