package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/internal/outwriter"
	"github.com/organvm/analytics-engine/schema"
)

// reportCmd renders the latest artifacts for the console.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the latest aggregated metrics as console tables.",
	Long: `Render the current engagement-metrics.json and
system-engagement-report.json as human-readable tables: headline totals
with trends, pages ranked by views, the per-organ activity breakdown and
any triggered alerts.

Missing artifacts render as empty sections, not errors.

Examples:
  # Table view of the current artifacts
  analytics-engine report

  # Machine-readable envelope with both artifacts
  analytics-engine report --format json --output-file report.json`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		inputDir := viper.GetString("report.input")

		var engagement schema.EngagementMetrics
		if err := readArtifact(filepath.Join(inputDir, schema.EngagementMetricsFile), &engagement); err != nil {
			contract.LogFatal("Cannot read engagement metrics", err)
		}
		var report schema.SystemEngagementReport
		if err := readArtifact(filepath.Join(inputDir, schema.SystemReportFile), &report); err != nil {
			contract.LogFatal("Cannot read system report", err)
		}

		cfg := &outwriter.ReportConfig{
			Output:     schema.OutputMode(viper.GetString("report.format")),
			OutputFile: viper.GetString("report.output-file"),
			UseColors:  useColors(),
		}
		if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
			contract.LogFatal("Cannot render report", fmt.Errorf("invalid format %q", cfg.Output))
		}
		if err := outwriter.WriteReport(&engagement, &report, cfg); err != nil {
			contract.LogFatal("Cannot render report", err)
		}
	},
}

// readArtifact parses an artifact file into out, leaving out zero-valued
// when the file does not exist yet.
func readArtifact(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return nil
}
