// Package config loads and validates battlesim's on-disk configuration:
// simulation defaults, logging, and where reports are written.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is battlesim's top-level configuration: nested sub-configs,
// environment-variable override on Load, and Save/Validate, re-themed
// around simulation defaults instead of chaos-injection targets.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Reporting  ReportingConfig  `yaml:"reporting"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the defaults `battlesim run`/`optimize` fall back
// to when a flag is not given explicitly.
type SimulationConfig struct {
	// NumRuns is the default Monte-Carlo sample count.
	NumRuns int `yaml:"num_runs"`
	// RNGKind selects the RNG variant: "base", "lowvariance", or "keyed".
	RNGKind string `yaml:"rng_kind"`
	// LowVarianceBudget bounds the lowvariance RNG's decision-tree
	// state-space spend per run (see pkg/rng.DefaultBudget); the keyed RNG
	// takes no budget.
	LowVarianceBudget int `yaml:"low_variance_budget"`
	// Objective names the default OptimizeMinionOrder objective: "score",
	// "winrate", "damagetaken", or "deathrate".
	Objective string `yaml:"objective"`
	// OptimizeBudget is the default simulated-battle budget of an `optimize`
	// run: the run count for the baseline order, from which each
	// permutation's run count is derived (see OptimizeMinionOrder).
	OptimizeBudget int `yaml:"optimize_budget"`
}

// ReportingConfig contains reporting and output settings.
type ReportingConfig struct {
	OutputDir string   `yaml:"output_dir"`
	KeepLastN int      `yaml:"keep_last_n"`
	Formats   []string `yaml:"formats"`
}

// LoggingConfig contains logger construction settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns battlesim's out-of-the-box configuration.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			NumRuns:           1000,
			RNGKind:           "lowvariance",
			LowVarianceBudget: 10000,
			Objective:         "winrate",
			OptimizeBudget:    10000,
		},
		Reporting: ReportingConfig{
			OutputDir: "./reports",
			KeepLastN: 50,
			Formats:   []string{"json", "text"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from path, falling back to DefaultConfig when
// path does not exist (or is empty, in which case "./battlesim.yaml" is
// tried). Environment variables referenced as ${VAR} in the file are
// expanded before parsing, and BATTLESIM_NUM_RUNS overrides
// Simulation.NumRuns when set, taking priority over the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "battlesim.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BATTLESIM_NUM_RUNS"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			cfg.Simulation.NumRuns = n
		}
	}
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for obviously broken values.
func (c *Config) Validate() error {
	if c.Simulation.NumRuns < 1 {
		return fmt.Errorf("simulation.num_runs must be at least 1")
	}
	switch c.Simulation.RNGKind {
	case "base", "lowvariance", "keyed":
	default:
		return fmt.Errorf("simulation.rng_kind must be one of base, lowvariance, keyed, got %q", c.Simulation.RNGKind)
	}
	switch c.Simulation.Objective {
	case "score", "winrate", "damagetaken", "deathrate":
	default:
		return fmt.Errorf("simulation.objective must be one of score, winrate, damagetaken, deathrate, got %q", c.Simulation.Objective)
	}
	if c.Reporting.OutputDir == "" {
		return fmt.Errorf("reporting.output_dir is required")
	}
	return nil
}
