package main

import (
	"fmt"
	"os"

	"github.com/twanvl/battlegrounds-sim/pkg/battle"
	"github.com/twanvl/battlegrounds-sim/pkg/boardtext"
	"github.com/twanvl/battlegrounds-sim/pkg/config"
	"github.com/twanvl/battlegrounds-sim/pkg/reporting"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
	"github.com/twanvl/battlegrounds-sim/pkg/simulation"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "./battlesim.yaml"
	}
	return config.Load(path)
}

func newLogger(cfg *config.Config) *reporting.Logger {
	level := reporting.LogLevel(cfg.Logging.Level)
	if verbose {
		level = reporting.LogLevelDebug
	}
	return reporting.NewLogger(reporting.LoggerConfig{
		Level:  level,
		Format: reporting.LogFormat(cfg.Logging.Format),
		Output: os.Stdout,
	})
}

// loadBoardFile parses a text board file into two boards, the
// first "board" group and first "vs" group found.
func loadBoardFile(path string) (board0, board1 *battle.Board, label0, label1 string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	eh := &boardtext.ErrorHandler{Out: os.Stderr, Filename: path}
	groups := boardtext.ParseBoards(f, eh)

	board0, board1 = battle.NewBoard(), battle.NewBoard()
	have0, have1 := false, false
	for _, g := range groups {
		if g.Side == 0 && !have0 {
			board0, label0, have0 = g.Board, g.Label, true
		} else if g.Side == 1 && !have1 {
			board1, label1, have1 = g.Board, g.Label, true
		}
	}
	return board0, board1, label0, label1, nil
}

// newRNGSource builds an rng.Source matching kind ("base", "lowvariance",
// "keyed").
func newRNGSource(kind string, budget int, seed *rng.Xoroshiro) rng.Source {
	switch kind {
	case "keyed":
		return rng.NewKeyedRNG(seed)
	case "base":
		return seed
	default:
		return rng.NewLowVarianceRNG(seed, budget)
	}
}

func parseObjective(name string) (simulation.Objective, error) {
	switch name {
	case "score":
		return simulation.ObjectiveScore, nil
	case "winrate", "":
		return simulation.ObjectiveWinRate, nil
	case "damagetaken":
		return simulation.ObjectiveDamageTaken, nil
	case "deathrate":
		return simulation.ObjectiveDeathRate, nil
	default:
		return 0, fmt.Errorf("unknown objective: %s", name)
	}
}
