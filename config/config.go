// Package config holds the settings shared by the command line tools.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultGraphAlgorithm = "astar"
	DefaultGameAlgorithm  = "alphabeta"
	DefaultHeuristic      = "manhattan"
	DefaultMaxDepth       = -1 // Unlimited
	DefaultMaxMoves       = 300
	DefaultGames          = 10
	DefaultLogLevel       = "info"
	DefaultOutputDir      = "experiments"
)

type Config struct {
	GraphAlgorithm string `yaml:"graph_algorithm"`
	GameAlgorithm  string `yaml:"game_algorithm"`
	Heuristic      string `yaml:"heuristic"`
	MaxDepth       int    `yaml:"max_depth"`
	MaxMoves       int    `yaml:"max_moves"`
	Games          int    `yaml:"games"`
	Seed           uint64 `yaml:"seed"`
	LogLevel       string `yaml:"log_level"`
	OutputDir      string `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		GraphAlgorithm: DefaultGraphAlgorithm,
		GameAlgorithm:  DefaultGameAlgorithm,
		Heuristic:      DefaultHeuristic,
		MaxDepth:       DefaultMaxDepth,
		MaxMoves:       DefaultMaxMoves,
		Games:          DefaultGames,
		LogLevel:       DefaultLogLevel,
		OutputDir:      DefaultOutputDir,
	}
}

// Parse overlays the YAML document on the defaults. Keys absent from data
// keep their default values.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return c, err
	}
	if c.Games < 0 {
		return c, fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	return c, nil
}

// Load reads path, or returns the defaults when path is empty.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
