package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/internal/dashboard"
)

// dashboardCmd renders the aggregated artifacts as a static HTML page.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Generate the static HTML analytics dashboard.",
	Long: `Render the two aggregated artifacts as a self-contained HTML page with
inline CSS and inline SVG charts. Zero JavaScript.

Missing artifacts render as an empty dashboard, not an error, so the
dashboard can be generated before the first collection run.

Examples:
  analytics-engine dashboard --input data --output docs/dashboard`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		path, err := dashboard.Generate(viper.GetString("dashboard.input"), viper.GetString("dashboard.output"))
		if err != nil {
			contract.LogFatal("Cannot generate dashboard", err)
		}
		fmt.Printf("Dashboard generated: %s\n", path)
	},
}
