package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"
)

// ReportFormat represents the report output format
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatText ReportFormat = "text"
	ReportFormatJSON ReportFormat = "json"
)

// Formatter generates formatted reports from a SimulationReport
type Formatter struct {
	logger *Logger
}

// NewFormatter creates a new report formatter
func NewFormatter(logger *Logger) *Formatter {
	return &Formatter{
		logger: logger,
	}
}

// GenerateReport generates a report in the specified format
func (f *Formatter) GenerateReport(report *SimulationReport, format ReportFormat, outputPath string) error {
	switch format {
	case ReportFormatHTML:
		return f.generateHTMLReport(report, outputPath)
	case ReportFormatText:
		return f.generateTextReport(report, outputPath)
	case ReportFormatJSON:
		// Already handled by storage
		return fmt.Errorf("JSON format is automatically saved by storage")
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// generateHTMLReport generates an HTML report
func (f *Formatter) generateHTMLReport(report *SimulationReport, outputPath string) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
	}).Parse(htmlTemplate)

	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	f.logger.Info("HTML report generated", "path", outputPath)
	return nil
}

// generateTextReport generates a plain text report
func (f *Formatter) generateTextReport(report *SimulationReport, outputPath string) error {
	buf := f.renderText(report)

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	f.logger.Info("Text report generated", "path", outputPath)
	return nil
}

func (f *Formatter) renderText(report *SimulationReport) bytes.Buffer {
	var buf bytes.Buffer

	buf.WriteString(strings.Repeat("=", 80) + "\n")
	buf.WriteString("   BATTLEGROUNDS SIMULATION REPORT\n")
	buf.WriteString(strings.Repeat("=", 80) + "\n\n")

	buf.WriteString("RUN SUMMARY\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	buf.WriteString(fmt.Sprintf("Status:       %s\n", report.Status))
	buf.WriteString(fmt.Sprintf("Run ID:       %s\n", report.RunID))
	buf.WriteString(fmt.Sprintf("Matchup:      %s vs %s\n", matchupLabel(report.Matchup.Label0, report.Matchup.Board0), matchupLabel(report.Matchup.Label1, report.Matchup.Board1)))
	buf.WriteString(fmt.Sprintf("Start Time:   %s\n", report.StartTime.Format("2006-01-02 15:04:05")))
	buf.WriteString(fmt.Sprintf("Duration:     %s\n", report.Duration))
	buf.WriteString(fmt.Sprintf("Runs:         %d\n", report.NumRuns))
	buf.WriteString(fmt.Sprintf("RNG:          %s\n", report.RNGKind))
	if report.Objective != "" {
		buf.WriteString(fmt.Sprintf("Objective:    %s\n", report.Objective))
	}
	if report.Message != "" {
		buf.WriteString(fmt.Sprintf("Message:      %s\n", report.Message))
	}
	buf.WriteString("\n")

	buf.WriteString("RESULTS\n")
	buf.WriteString(strings.Repeat("-", 80) + "\n")
	writeSide(&buf, "Player 0", report.Player0)
	writeSide(&buf, "Player 1", report.Player1)
	buf.WriteString("\n")

	if report.Optimization != nil {
		opt := report.Optimization
		buf.WriteString("OPTIMIZATION\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		buf.WriteString(fmt.Sprintf("Player:       %d\n", opt.Player))
		buf.WriteString(fmt.Sprintf("Best order:   %v\n", opt.BestOrder))
		buf.WriteString(fmt.Sprintf("Best value:   %.4f\n", opt.BestValue))
		buf.WriteString(fmt.Sprintf("Budget:       %d\n", opt.SearchBudget))
		buf.WriteString("\n")
	}

	if len(report.Errors) > 0 {
		buf.WriteString("ERRORS\n")
		buf.WriteString(strings.Repeat("-", 80) + "\n")
		for _, e := range report.Errors {
			buf.WriteString("  - " + e + "\n")
		}
		buf.WriteString("\n")
	}

	buf.WriteString(strings.Repeat("=", 80) + "\n")
	return buf
}

func matchupLabel(label, board string) string {
	if label != "" {
		return label
	}
	return board
}

func writeSide(buf *bytes.Buffer, name string, s SideResult) {
	buf.WriteString(fmt.Sprintf("%s:\n", name))
	buf.WriteString(fmt.Sprintf("  Win rate:          %.1f%%\n", s.WinRate*100))
	buf.WriteString(fmt.Sprintf("  Draw rate:         %.1f%%\n", s.DrawRate*100))
	buf.WriteString(fmt.Sprintf("  Balanced win rate: %.1f%%\n", s.BalancedWinRate*100))
	buf.WriteString(fmt.Sprintf("  Death rate:        %.1f%%\n", s.DeathRate*100))
	buf.WriteString(fmt.Sprintf("  Mean damage taken: %.2f\n", s.MeanDamageTaken))
	buf.WriteString(fmt.Sprintf("  Mean score:        %.2f\n", s.MeanScore))
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Battlegrounds simulation report {{.RunID}}</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
td, th { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
h1, h2 { color: #333; }
.status-completed { color: #2a7; }
.status-failed { color: #c33; }
</style>
</head>
<body>
<h1>Simulation report {{.RunID}}</h1>
<p class="status-{{.Status}}">Status: {{.Status}}</p>
<p>{{.Matchup.Board0}} vs {{.Matchup.Board1}}</p>
<p>Started {{formatTime .StartTime}}, ran for {{.Duration}}, {{.NumRuns}} runs via {{.RNGKind}}.</p>

<h2>Player 0</h2>
<table>
<tr><th>Win rate</th><td>{{pct .Player0.WinRate}}</td></tr>
<tr><th>Draw rate</th><td>{{pct .Player0.DrawRate}}</td></tr>
<tr><th>Death rate</th><td>{{pct .Player0.DeathRate}}</td></tr>
<tr><th>Mean damage taken</th><td>{{printf "%.2f" .Player0.MeanDamageTaken}}</td></tr>
</table>

<h2>Player 1</h2>
<table>
<tr><th>Win rate</th><td>{{pct .Player1.WinRate}}</td></tr>
<tr><th>Draw rate</th><td>{{pct .Player1.DrawRate}}</td></tr>
<tr><th>Death rate</th><td>{{pct .Player1.DeathRate}}</td></tr>
<tr><th>Mean damage taken</th><td>{{printf "%.2f" .Player1.MeanDamageTaken}}</td></tr>
</table>

{{if .Optimization}}
<h2>Optimization</h2>
<table>
<tr><th>Player</th><td>{{.Optimization.Player}}</td></tr>
<tr><th>Best order</th><td>{{.Optimization.BestOrder}}</td></tr>
<tr><th>Best value</th><td>{{printf "%.4f" .Optimization.BestValue}}</td></tr>
</table>
{{end}}
</body>
</html>
`
