package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
	"github.com/twanvl/battlegrounds-sim/pkg/simulation"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Args:  cobra.NoArgs,
	Short: "Search for the minion order that maximizes an objective",
	Long:  `Loads two boards and searches every permutation of the selected player's minions (player 0 unless --player is given) for the one that performs best against the other side, under the selected objective.`,
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().String("board", "", "path to a text board file (required)")
	optimizeCmd.Flags().String("objective", "", "objective: score, winrate, damagetaken, deathrate")
	optimizeCmd.Flags().Int("budget", 0, "simulated-battle budget: runs for the baseline order, from which the per-permutation run count is derived (default: config value)")
	optimizeCmd.Flags().String("rng", "", "RNG variant: base, lowvariance, keyed")
	optimizeCmd.Flags().Int("player", 0, "which side (0 or 1) to reorder")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	boardPath, _ := cmd.Flags().GetString("board")
	if boardPath == "" {
		return fmt.Errorf("--board flag is required")
	}
	objectiveFlag, _ := cmd.Flags().GetString("objective")
	budgetFlag, _ := cmd.Flags().GetInt("budget")
	rngFlag, _ := cmd.Flags().GetString("rng")
	player, _ := cmd.Flags().GetInt("player")
	if player != 0 && player != 1 {
		return fmt.Errorf("--player must be 0 or 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if objectiveFlag == "" {
		objectiveFlag = cfg.Simulation.Objective
	}
	objective, err := parseObjective(objectiveFlag)
	if err != nil {
		return err
	}
	budget := cfg.Simulation.OptimizeBudget
	if budgetFlag > 0 {
		budget = budgetFlag
	}
	rngKind := cfg.Simulation.RNGKind
	if rngFlag != "" {
		rngKind = rngFlag
	}

	board0, board1, _, _, err := loadBoardFile(boardPath)
	if err != nil {
		return err
	}
	self, enemy := board0, board1
	if player == 1 {
		self, enemy = board1, board0
	}

	seed := rng.NewXoroshiro()
	result := simulation.OptimizeMinionOrder(*self, *enemy, player, seed,
		func(s *rng.Xoroshiro) rng.Source { return newRNGSource(rngKind, cfg.Simulation.LowVarianceBudget, s) },
		objective, budget)

	fmt.Printf("Best order for player %d: %v\n", player, result.Order)
	fmt.Printf("Objective (%s) value: %.4f over %d runs\n", objective, result.Value, result.Runs)
	return nil
}
