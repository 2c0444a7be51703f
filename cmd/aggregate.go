package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/core"
	"github.com/organvm/analytics-engine/internal/contract"
)

// aggregateCmd runs one pass of the aggregation pipeline.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Merge the latest raw snapshots into engagement artifacts.",
	Long: `Run the aggregation pipeline once.

Reads the most recent raw snapshot of each source from the input directory,
computes week-over-week trends against the most recent history copy,
evaluates the threshold rule file, writes engagement-metrics.json and
system-engagement-report.json to the output directory, and copies both
into history under today's date.

Sources with no raw snapshot are treated as unavailable, not as errors.
Malformed JSON and write failures abort the run.

Examples:
  # Aggregate with the default directory layout
  analytics-engine aggregate

  # Explicit directories and rule file
  analytics-engine aggregate --input data/raw --output data --history data/history --thresholds config/thresholds.yaml`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		cfg := &contract.EngineConfig{
			RawDir:         viper.GetString("aggregate.input"),
			OutputDir:      viper.GetString("aggregate.output"),
			HistoryDir:     viper.GetString("aggregate.history"),
			ThresholdsPath: viper.GetString("aggregate.thresholds"),
		}
		if err := core.ExecuteAggregate(cfg); err != nil {
			contract.LogFatal("Cannot aggregate metrics", err)
		}
	},
}
