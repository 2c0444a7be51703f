// Package outwriter has console output logic for aggregated artifacts.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

// ReportConfig controls how the report command renders artifacts.
type ReportConfig struct {
	Output     schema.OutputMode
	OutputFile string
	UseColors  bool
	Width      int // terminal width override (0 = auto-detect)
}

// WriteReport renders the two artifacts, dispatching on the configured
// output format.
func WriteReport(engagement *schema.EngagementMetrics, report *schema.SystemEngagementReport, cfg *ReportConfig) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, engagement, report)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(w, engagement, report, cfg)
		}, "Wrote report")
	}
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeReportJSON emits both artifacts under one envelope.
func writeReportJSON(w io.Writer, engagement *schema.EngagementMetrics, report *schema.SystemEngagementReport) error {
	envelope := struct {
		Engagement *schema.EngagementMetrics      `json:"engagement_metrics"`
		Report     *schema.SystemEngagementReport `json:"system_engagement_report"`
	}{engagement, report}
	return writeJSON(w, envelope)
}

// getMaxTablePathWidth calculates the maximum width for page paths in table
// output based on terminal width.
func getMaxTablePathWidth(cfg *ReportConfig) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank, views and unique columns with borders.
	pathWidth := termWidth - 30
	if pathWidth < 20 {
		pathWidth = 20
	}
	return pathWidth
}
