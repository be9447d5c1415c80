package main

import (
	"fmt"

	"statesearch/config"
	"statesearch/experiments"
	"statesearch/experiments/metrics"
	"statesearch/problem/grid"
	"statesearch/searcher"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type benchFlags struct {
	algorithms []string
	heuristic  string
	parallel   int
	out        string
}

func newBenchCmd(settings func() *config.Config) *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "bench <maze.yaml>",
		Short: "Run several graph searches on one maze concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings()
			override(cmd, "heuristic", &cfg.Heuristic, flags.heuristic)
			override(cmd, "out", &cfg.OutputDir, flags.out)
			return runBench(cmd, args[0], flags, cfg, cmd.Flags().Changed("out"))
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&flags.algorithms, "algorithms", searcher.Names(), "Graph searches to compare")
	f.StringVar(&flags.heuristic, "heuristic", config.DefaultHeuristic, "Heuristic of informed searches")
	f.IntVar(&flags.parallel, "parallel", 0, "Concurrent searches, 0 for all at once")
	f.StringVar(&flags.out, "out", config.DefaultOutputDir, "Write CSV records under this directory")
	return cmd
}

func runBench(cmd *cobra.Command, path string, flags benchFlags, cfg *config.Config, write bool) error {
	maze, err := grid.LoadFile(path)
	if err != nil {
		return err
	}
	h, ok := grid.Heuristics[cfg.Heuristic]
	if !ok {
		return fmt.Errorf("unknown heuristic %q", cfg.Heuristic)
	}

	records, err := experiments.RunBenchmark(cmd.Context(), experiments.Benchmark[grid.Point, grid.Direction]{
		Name:       maze.Name(),
		Problem:    maze,
		Heuristic:  h,
		Algorithms: flags.algorithms,
		Parallel:   flags.parallel,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), benchTable(records))

	if !write {
		return nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, "bench")
	if err != nil {
		return err
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Records: %s\n", writer.Dir())
	return nil
}

func benchTable(records []metrics.SearchRecord) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Algorithm", "Found", "Length", "Cost", "Expanded", "Max frontier", "Duration"})
	for _, r := range records {
		tbl.AppendRow(table.Row{r.Algorithm, r.Found, r.PathLength, r.PathCost, r.Expanded, r.MaxFrontier, r.Duration})
	}

	numeric := make([]table.ColumnConfig, 0, 5)
	for column := 3; column <= 7; column++ {
		numeric = append(numeric, table.ColumnConfig{Number: column, Align: text.AlignRight})
	}
	tbl.SetColumnConfigs(numeric)
	return tbl.Render()
}
