package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "analytics-engine",
	Short:              "Collect, aggregate and render ORGANVM usage metrics.",
	Long:               `analytics-engine is a scheduled batch pipeline: collectors pull raw snapshots from GoatCounter and GitHub, the aggregator merges them with history into trend and alert artifacts, and the dashboard renders the result as static HTML.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".analytics-engine") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	viper.SetEnvPrefix("ANALYTICS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("color", "yes")
	viper.SetDefault("aggregate.input", contract.DefaultRawDir)
	viper.SetDefault("aggregate.output", contract.DefaultOutputDir)
	viper.SetDefault("aggregate.history", contract.DefaultHistoryDir)
	viper.SetDefault("aggregate.thresholds", contract.DefaultThresholds)
	viper.SetDefault("collect.days", contract.DefaultWindowDays)
	viper.SetDefault("collect.output", contract.DefaultRawDir)
	viper.SetDefault("dashboard.input", contract.DefaultOutputDir)
	viper.SetDefault("dashboard.output", contract.DefaultDashboardDir)
	viper.SetDefault("report.input", contract.DefaultOutputDir)
	viper.SetDefault("report.format", string(schema.TextOut))
	viper.SetDefault("report.output-file", "")
}

// sharedSetup loads the optional config file before a command runs.
func sharedSetup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// useColors reports whether colored labels are enabled.
func useColors() bool {
	switch strings.ToLower(viper.GetString("color")) {
	case "no", "false", "0":
		return false
	default:
		return true
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
