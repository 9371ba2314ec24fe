package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/twanvl/battlegrounds-sim/pkg/metrics"
	"github.com/twanvl/battlegrounds-sim/pkg/reporting"
	"github.com/twanvl/battlegrounds-sim/pkg/rng"
	"github.com/twanvl/battlegrounds-sim/pkg/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Simulate a matchup many times and report win/tie/loss statistics",
	Long:  `Loads two boards from a text board file and runs N independent Monte-Carlo battles.`,
	RunE:  runBattleSim,
}

func init() {
	runCmd.Flags().String("board", "", "path to a text board file (required)")
	runCmd.Flags().Int("runs", 0, "number of simulation runs (default: config value)")
	runCmd.Flags().String("rng", "", "RNG variant: base, lowvariance, keyed (default: config value)")
	runCmd.Flags().String("objective", "", "objective for reporting: score, winrate, damagetaken, deathrate")
	runCmd.Flags().String("out", "", "path to write a text report (optional); a JSON copy is saved under the configured reporting output dir")
	runCmd.Flags().String("metrics-addr", "", "if set, serve Prometheus metrics on this address while running")
}

func runBattleSim(cmd *cobra.Command, args []string) error {
	boardPath, _ := cmd.Flags().GetString("board")
	if boardPath == "" {
		return fmt.Errorf("--board flag is required")
	}
	runsFlag, _ := cmd.Flags().GetInt("runs")
	rngFlag, _ := cmd.Flags().GetString("rng")
	objectiveFlag, _ := cmd.Flags().GetString("objective")
	outPath, _ := cmd.Flags().GetString("out")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg)

	numRuns := cfg.Simulation.NumRuns
	if runsFlag > 0 {
		numRuns = runsFlag
	}
	rngKind := cfg.Simulation.RNGKind
	if rngFlag != "" {
		rngKind = rngFlag
	}
	if objectiveFlag == "" {
		objectiveFlag = cfg.Simulation.Objective
	}
	objective, err := parseObjective(objectiveFlag)
	if err != nil {
		return err
	}

	board0, board1, label0, label1, err := loadBoardFile(boardPath)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if metricsAddr != "" {
		m = metrics.New()
		srv := metrics.NewServer(metricsAddr, m.Registry())
		go func() {
			if err := srv.Run(cmd.Context()); err != nil {
				logger.Warn("metrics server stopped", "error", err)
			}
		}()
	}

	logger.Info("starting simulation run", "runs", numRuns, "rng", rngKind)
	start := time.Now()

	seed := rng.NewXoroshiro()
	src := newRNGSource(rngKind, cfg.Simulation.LowVarianceBudget, seed)
	s0, s1 := simulation.Simulate(*board0, *board1, src, numRuns)
	if m != nil {
		outcome0 := "draw"
		if s0.WinRate() > s1.WinRate() {
			outcome0 = "win"
		} else if s0.WinRate() < s1.WinRate() {
			outcome0 = "loss"
		}
		m.ObserveOutcome(objective.String(), outcome0)
	}

	end := time.Now()
	report := &reporting.SimulationReport{
		RunID:     fmt.Sprintf("run-%d", end.UnixNano()),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start).String(),
		Status:    reporting.StatusCompleted,
		Matchup: reporting.MatchupInfo{
			Label0: label0,
			Label1: label1,
			Board0: boardPath,
			Board1: boardPath,
		},
		NumRuns:   numRuns,
		RNGKind:   rngKind,
		Objective: objective.String(),
		Player0:   toSideResult(s0),
		Player1:   toSideResult(s1),
	}

	formatter := reporting.NewFormatter(logger)
	fmt.Println(formatSideSummary("Player 0", report.Player0))
	fmt.Println(formatSideSummary("Player 1", report.Player1))

	if outPath != "" {
		storage, err := reporting.NewStorage(cfg.Reporting.OutputDir, cfg.Reporting.KeepLastN, logger)
		if err != nil {
			return fmt.Errorf("failed to create storage: %w", err)
		}
		if _, err := storage.SaveReport(report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		if err := formatter.GenerateReport(report, reporting.ReportFormatText, outPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

func toSideResult(s simulation.ScoreSummary) reporting.SideResult {
	return reporting.SideResult{
		WinRate:         s.WinRate(),
		DrawRate:        s.DrawRate(),
		BalancedWinRate: s.BalancedWinRate(),
		DeathRate:       s.DeathRate(),
		MeanDamageTaken: s.MeanDamageTaken(),
		MeanScore:       s.MeanScore(),
	}
}

func formatSideSummary(name string, s reporting.SideResult) string {
	return fmt.Sprintf("%s: win %.1f%% draw %.1f%% death %.1f%% mean score %.2f",
		name, s.WinRate*100, s.DrawRate*100, s.DeathRate*100, s.MeanScore)
}
