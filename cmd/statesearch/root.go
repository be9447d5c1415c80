package main

import (
	"os"
	"time"

	"statesearch/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "statesearch",
		Short:         "State space and game tree search",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(flags.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				loaded.LogLevel = flags.logLevel
			}
			level, err := loaded.Level()
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

			cfg = loaded
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&flags.config, "config", "", "Path to a YAML config file")
	f.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error, disabled)")

	settings := func() *config.Config { return &cfg }
	cmd.AddCommand(newSolveCmd(settings))
	cmd.AddCommand(newPlayCmd(settings))
	cmd.AddCommand(newMatchCmd(settings))
	cmd.AddCommand(newBenchCmd(settings))
	return cmd
}

// override replaces *value with flag when the flag was set on the command
// line.
func override[T any](cmd *cobra.Command, name string, value *T, flag T) {
	if cmd.Flags().Changed(name) {
		*value = flag
	}
}
