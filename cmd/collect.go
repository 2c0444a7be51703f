package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/internal"
	"github.com/organvm/analytics-engine/internal/collector"
	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

// collectCmd groups the per-source collectors.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Pull raw usage snapshots from external APIs.",
	Long: `Collect raw metrics from one external source and write a dated JSON
snapshot into the raw snapshot store.

Each collector makes one bounded set of API calls and never retries. When
credentials are missing or an API call fails, the collector writes an
unavailable placeholder snapshot instead, so the aggregator always has a
file to read.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// collectGoatCounterCmd collects web analytics from the GoatCounter API.
var collectGoatCounterCmd = &cobra.Command{
	Use:   "goatcounter",
	Short: "Collect page views and unique visitors from GoatCounter.",
	Long: `Collect per-page hit counts and site totals from the GoatCounter API
for the trailing window.

Requires GOATCOUNTER_SITE and GOATCOUNTER_TOKEN in the environment. Writes
goatcounter-{date}.json into the output directory; writes a placeholder
with available=false when unconfigured or on API failure.

Examples:
  analytics-engine collect goatcounter --days 7 --output data/raw`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		days := viper.GetInt("collect.days")
		outDir := viper.GetString("collect.output")
		now := time.Now().UTC()

		cfg := contract.GoatCounterFromEnv()
		var snap *schema.AnalyticsSnapshot
		if !cfg.Configured() {
			internal.Warning("GoatCounter not configured, writing placeholder")
			snap = collector.UnavailableAnalytics(days, "GOATCOUNTER_SITE and/or GOATCOUNTER_TOKEN not set", now)
		} else {
			client := collector.NewGoatCounterClient(cfg)
			collected, err := client.Collect(rootCtx, days, now)
			if err != nil {
				internal.Warning(fmt.Sprintf("GoatCounter API error: %v, writing placeholder", err))
				snap = collector.UnavailableAnalytics(days, fmt.Sprintf("API error: %v", err), now)
			} else {
				snap = collected
				fmt.Printf("Collected metrics: %d views\n", snap.SiteTotals.PageViews)
			}
		}

		path, err := collector.WriteSnapshot(outDir, schema.GoatCounterSource, snap, now)
		if err != nil {
			contract.LogFatal("Cannot write analytics snapshot", err)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

// collectGitHubCmd collects org activity from the GitHub events API.
var collectGitHubCmd = &cobra.Command{
	Use:   "github",
	Short: "Collect commit, PR and release activity across ORGANVM orgs.",
	Long: `Collect public event activity for every configured GitHub organization
over the trailing window and tally commits, pull requests and releases per
organ.

Requires GITHUB_TOKEN in the environment. Writes github-activity-{date}.json
into the output directory; a failing org keeps zeroed counts rather than
aborting the sweep.

Examples:
  analytics-engine collect github --days 7 --output data/raw`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		days := viper.GetInt("collect.days")
		outDir := viper.GetString("collect.output")
		now := time.Now().UTC()

		cfg := contract.GitHubFromEnv()
		var snap *schema.ActivitySnapshot
		if !cfg.Configured() {
			internal.Warning("GitHub token not configured, writing placeholder")
			snap = collector.UnavailableActivity(days, "GITHUB_TOKEN not set", now)
		} else {
			gh, err := collector.NewGitHubCollector(cfg)
			if err != nil {
				contract.LogFatal("Cannot create GitHub client", err)
			}
			snap = gh.Collect(rootCtx, days, now)
			fmt.Printf("Collected activity: %d commits, %d PRs, %d releases\n",
				snap.Totals.Commits, snap.Totals.PRs, snap.Totals.Releases)
		}

		path, err := collector.WriteSnapshot(outDir, schema.GitHubSource, snap, now)
		if err != nil {
			contract.LogFatal("Cannot write activity snapshot", err)
		}
		fmt.Printf("Wrote %s\n", path)
	},
}
