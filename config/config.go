// Package config loads the run configuration for the nearpair CLI from YAML
// and owns the step-budget heuristic.
//
// The engine treats the budget as an opaque number. Choosing it is policy:
// an explicit Budget (zero included) wins; otherwise inputs with more than
// SmallInputThreshold points get LargeBudget and the rest get SmallBudget.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nearpair/pairs"
	"github.com/katalvlaran/nearpair/report"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults for the budget heuristic.
const (
	// AutoBudget selects the heuristic instead of a fixed budget.
	AutoBudget = -1

	DefaultSmallBudget         = 10
	DefaultLargeBudget         = 1000
	DefaultSmallInputThreshold = 20
)

// Config holds every tunable of a clustering run.
type Config struct {
	// Budget, when >= 0, is used verbatim and disables the heuristic.
	// AutoBudget selects the heuristic.
	Budget int `yaml:"budget"`

	// SmallBudget is used for inputs of at most SmallInputThreshold points.
	SmallBudget int `yaml:"small_budget"`

	// LargeBudget is used for inputs above SmallInputThreshold points.
	LargeBudget int `yaml:"large_budget"`

	// SmallInputThreshold separates small from large inputs.
	SmallInputThreshold int `yaml:"small_input_threshold"`

	// MaxPoints bounds the O(N²) pair ranking.
	MaxPoints int `yaml:"max_points"`

	// Method is the pair ranking method: "sort" or "heap".
	Method string `yaml:"method"`

	// Top is how many of the largest groups multiply into the answer.
	Top int `yaml:"top"`

	// Format is the report format: text, json or yaml.
	Format string `yaml:"format"`

	// HistoryDB, if set, is the SQLite file that records every run.
	HistoryDB string `yaml:"history_db,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Budget:              AutoBudget,
		SmallBudget:         DefaultSmallBudget,
		LargeBudget:         DefaultLargeBudget,
		SmallInputThreshold: DefaultSmallInputThreshold,
		MaxPoints:           pairs.DefaultMaxPoints,
		Method:              string(pairs.MethodSort),
		Top:                 report.DefaultTop,
		Format:              report.FormatText,
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field range.
func (c Config) Validate() error {
	switch {
	case c.Budget < AutoBudget:
		return fmt.Errorf("%w: budget %d < %d", ErrInvalidConfig, c.Budget, AutoBudget)
	case c.SmallBudget < 0 || c.LargeBudget < 0:
		return fmt.Errorf("%w: small_budget %d, large_budget %d must be >= 0",
			ErrInvalidConfig, c.SmallBudget, c.LargeBudget)
	case c.SmallInputThreshold < 0:
		return fmt.Errorf("%w: small_input_threshold %d < 0", ErrInvalidConfig, c.SmallInputThreshold)
	case c.MaxPoints <= 0:
		return fmt.Errorf("%w: max_points %d must be positive", ErrInvalidConfig, c.MaxPoints)
	case c.Method != string(pairs.MethodSort) && c.Method != string(pairs.MethodHeap):
		return fmt.Errorf("%w: method %q", ErrInvalidConfig, c.Method)
	case c.Top < 1:
		return fmt.Errorf("%w: top %d < 1", ErrInvalidConfig, c.Top)
	}
	switch c.Format {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}

// BudgetFor returns the step budget for an input of n points.
func (c Config) BudgetFor(n int) int {
	if c.Budget >= 0 {
		return c.Budget
	}
	if n > c.SmallInputThreshold {
		return c.LargeBudget
	}

	return c.SmallBudget
}

// RankOptions translates the ranking fields into pairs options.
func (c Config) RankOptions() []pairs.Option {
	return []pairs.Option{
		pairs.WithMethod(pairs.Method(c.Method)),
		pairs.WithMaxPoints(c.MaxPoints),
	}
}
