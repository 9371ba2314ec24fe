package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/twanvl/battlegrounds-sim/pkg/config"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := config.DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate cleanly, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error, got %v", err)
	}
	if cfg.Simulation.NumRuns != config.DefaultConfig().Simulation.NumRuns {
		t.Fatalf("Load of a missing file should return DefaultConfig, got NumRuns=%d", cfg.Simulation.NumRuns)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battlesim.yaml")
	contents := "simulation:\n  num_runs: 42\n  rng_kind: keyed\nreporting:\n  output_dir: ./custom\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.NumRuns != 42 {
		t.Fatalf("Simulation.NumRuns = %d, want 42", cfg.Simulation.NumRuns)
	}
	if cfg.Simulation.RNGKind != "keyed" {
		t.Fatalf("Simulation.RNGKind = %q, want keyed", cfg.Simulation.RNGKind)
	}
	if cfg.Reporting.OutputDir != "./custom" {
		t.Fatalf("Reporting.OutputDir = %q, want ./custom", cfg.Reporting.OutputDir)
	}
	// Unset fields should keep their defaults rather than zeroing out.
	if cfg.Logging.Level != "info" {
		t.Fatalf("unset Logging.Level should keep the default, got %q", cfg.Logging.Level)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("BATTLESIM_TEST_OUTPUT_DIR", "./env-expanded")
	path := filepath.Join(t.TempDir(), "battlesim.yaml")
	contents := "reporting:\n  output_dir: ${BATTLESIM_TEST_OUTPUT_DIR}\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Reporting.OutputDir != "./env-expanded" {
		t.Fatalf("Reporting.OutputDir = %q, want ./env-expanded", cfg.Reporting.OutputDir)
	}
}

func TestLoadNumRunsEnvOverrideWinsOverFile(t *testing.T) {
	t.Setenv("BATTLESIM_NUM_RUNS", "777")
	path := filepath.Join(t.TempDir(), "battlesim.yaml")
	contents := "simulation:\n  num_runs: 42\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.NumRuns != 777 {
		t.Fatalf("BATTLESIM_NUM_RUNS should override the file value: NumRuns = %d, want 777", cfg.Simulation.NumRuns)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero runs", func(c *config.Config) { c.Simulation.NumRuns = 0 }},
		{"bad rng kind", func(c *config.Config) { c.Simulation.RNGKind = "quantum" }},
		{"bad objective", func(c *config.Config) { c.Simulation.Objective = "vibes" }},
		{"empty output dir", func(c *config.Config) { c.Reporting.OutputDir = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate should reject %s", tc.name)
			}
		})
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battlesim.yaml")
	original := config.DefaultConfig()
	original.Simulation.NumRuns = 321
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Simulation.NumRuns != 321 {
		t.Fatalf("round-tripped NumRuns = %d, want 321", loaded.Simulation.NumRuns)
	}
}
