// Package cmd defines the command-line interface for analytics-engine.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the collect subcommands to the parent collect command
	collectCmd.AddCommand(collectGoatCounterCmd)
	collectCmd.AddCommand(collectGitHubCmd)

	// Bind persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind aggregate flags under the aggregate.* namespace
	aggregateCmd.Flags().StringP("input", "i", contract.DefaultRawDir, "Input directory with raw JSON snapshots")
	aggregateCmd.Flags().StringP("output", "o", contract.DefaultOutputDir, "Output directory for aggregated JSON artifacts")
	aggregateCmd.Flags().String("history", contract.DefaultHistoryDir, "History directory for trend baselines")
	aggregateCmd.Flags().String("thresholds", contract.DefaultThresholds, "Path to the threshold rule file")
	bindCommandFlags(aggregateCmd, "aggregate", "input", "output", "history", "thresholds")

	// Bind collect flags under the collect.* namespace. They live on the
	// parent command so both sources share one flag instance.
	collectCmd.PersistentFlags().Int("days", contract.DefaultWindowDays, "Number of days to collect")
	collectCmd.PersistentFlags().StringP("output", "o", contract.DefaultRawDir, "Output directory for raw JSON snapshots")
	for _, name := range []string{"days", "output"} {
		if err := viper.BindPFlag("collect."+name, collectCmd.PersistentFlags().Lookup(name)); err != nil {
			contract.LogFatal("Error binding collect flags", err)
		}
	}

	// Bind dashboard flags under the dashboard.* namespace
	dashboardCmd.Flags().StringP("input", "i", contract.DefaultOutputDir, "Input directory with aggregated JSON artifacts")
	dashboardCmd.Flags().StringP("output", "o", contract.DefaultDashboardDir, "Output directory for dashboard HTML")
	bindCommandFlags(dashboardCmd, "dashboard", "input", "output")

	// Bind report flags under the report.* namespace
	reportCmd.Flags().StringP("input", "i", contract.DefaultOutputDir, "Input directory with aggregated JSON artifacts")
	reportCmd.Flags().String("format", string(schema.TextOut), "Output format: text or json")
	reportCmd.Flags().String("output-file", "", "Optional path to write output to")
	bindCommandFlags(reportCmd, "report", "input", "format", "output-file")
}

// bindCommandFlags binds a command's local flags to namespaced viper keys so
// flag names can repeat across subcommands without clobbering each other.
func bindCommandFlags(cmd *cobra.Command, namespace string, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(namespace+"."+name, cmd.Flags().Lookup(name)); err != nil {
			contract.LogFatal("Error binding "+namespace+" flags", err)
		}
	}
}
