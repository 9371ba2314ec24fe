package reporting

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OutputFormat represents the progress output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTUI  OutputFormat = "tui"
)

// ProgressReporter reports simulation-run progress to the terminal (or as
// newline-delimited JSON for machine consumption) over LiveRunState and
// SimulationReport.
type ProgressReporter struct {
	format OutputFormat
	logger *Logger
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(format OutputFormat, logger *Logger) *ProgressReporter {
	return &ProgressReporter{
		format: format,
		logger: logger,
	}
}

// ReportState reports the current run state
func (pr *ProgressReporter) ReportState(state LiveRunState) {
	switch pr.format {
	case FormatJSON:
		pr.reportJSON(state)
	case FormatTUI:
		pr.reportTUI(state)
	default:
		pr.reportText(state)
	}
}

// ReportRunCompleted reports the final SimulationReport
func (pr *ProgressReporter) ReportRunCompleted(report *SimulationReport) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"event":  "run_completed",
			"report": report,
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		pr.printSummary(report)
	default:
		pr.printSummary(report)
	}
}

// reportText outputs progress in plain text format
func (pr *ProgressReporter) reportText(state LiveRunState) {
	fmt.Printf("[%s] %s | %d/%d runs | elapsed %s",
		time.Now().Format("15:04:05"),
		state.State,
		state.RunsDone, state.RunsTotal,
		state.Elapsed.Round(time.Second),
	)
	if state.CurrentRate > 0 {
		fmt.Printf(" | %.0f runs/s", state.CurrentRate)
	}
	fmt.Println()
}

// reportJSON outputs progress in JSON format
func (pr *ProgressReporter) reportJSON(state LiveRunState) {
	data, err := json.Marshal(state)
	if err != nil {
		pr.logger.Error("Failed to marshal state", "error", err)
		return
	}
	fmt.Println(string(data))
}

// reportTUI outputs a single-screen progress view
func (pr *ProgressReporter) reportTUI(state LiveRunState) {
	pr.clearScreen()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("   Simulation run %s\n", state.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Printf("State:   %s\n", state.State)
	fmt.Printf("Elapsed: %s\n", state.Elapsed.Round(time.Second))
	fmt.Printf("Runs:    %d / %d\n", state.RunsDone, state.RunsTotal)
	if state.RunsTotal > 0 {
		fmt.Printf("Progress: %s\n", progressBar(state.RunsDone, state.RunsTotal, 40))
	}
	if state.CurrentRate > 0 {
		fmt.Printf("Rate:    %.0f runs/s\n", state.CurrentRate)
	}
	fmt.Println(strings.Repeat("-", 60))
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// printSummary prints a one-shot textual summary of a SimulationReport.
func (pr *ProgressReporter) printSummary(report *SimulationReport) {
	fmt.Println()
	fmt.Printf("[SIMULATION %s] %s\n", report.Status, report.RunID)
	fmt.Printf("  Matchup:  %s vs %s\n", matchupLabel(report.Matchup.Label0, report.Matchup.Board0), matchupLabel(report.Matchup.Label1, report.Matchup.Board1))
	fmt.Printf("  Runs:     %d (%s)\n", report.NumRuns, report.RNGKind)
	fmt.Printf("  Duration: %s\n", report.Duration)
	fmt.Printf("  P0: win %.1f%% draw %.1f%% mean score %.2f\n", report.Player0.WinRate*100, report.Player0.DrawRate*100, report.Player0.MeanScore)
	fmt.Printf("  P1: win %.1f%% draw %.1f%% mean score %.2f\n", report.Player1.WinRate*100, report.Player1.DrawRate*100, report.Player1.MeanScore)
	if report.Optimization != nil {
		fmt.Printf("  Best order for player %d: %v (value %.4f)\n", report.Optimization.Player, report.Optimization.BestOrder, report.Optimization.BestValue)
	}
	fmt.Println()
}

// clearScreen clears the terminal screen
func (pr *ProgressReporter) clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// clearLine clears the current line
func (pr *ProgressReporter) clearLine() {
	fmt.Print("\033[K")
}
