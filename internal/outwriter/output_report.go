package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/organvm/analytics-engine/internal/contract"
	"github.com/organvm/analytics-engine/schema"
)

// writeReportTables renders the human-readable console view: a headline with
// totals and trends, then pages, organ breakdown and alert tables.
func writeReportTables(w io.Writer, engagement *schema.EngagementMetrics, report *schema.SystemEngagementReport, cfg *ReportConfig) error {
	fmt.Fprintf(w, "📊 Engagement %s → %s\n", orNA(engagement.Period.Start), orNA(engagement.Period.End))
	fmt.Fprintf(w, "   Views: %s%s  Visitors: %s%s  Commits: %s\n\n",
		humanize.Comma(int64(engagement.SiteTotals.PageViews)),
		formatTrend(engagement.Trends.ViewsDeltaPct),
		humanize.Comma(int64(engagement.SiteTotals.UniqueVisitors)),
		formatTrend(engagement.Trends.VisitorsDeltaPct),
		humanize.Comma(int64(report.GitHubActivity.TotalCommits)))

	if err := writePagesTable(w, engagement.Pages, cfg); err != nil {
		return err
	}
	if err := writeOrganTable(w, report.GitHubActivity.OrganBreakdown); err != nil {
		return err
	}
	return writeAlertsTable(w, report.Alerts, cfg)
}

// writePagesTable renders page metrics sorted by views descending.
func writePagesTable(w io.Writer, pages []schema.PageMetrics, cfg *ReportConfig) error {
	if len(pages) == 0 {
		fmt.Fprintln(w, "No page data available.")
		fmt.Fprintln(w)
		return nil
	}

	sorted := make([]schema.PageMetrics, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Views > sorted[j].Views })

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Path", "Views", "Unique"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := getMaxTablePathWidth(cfg)
	var data [][]string
	for i, p := range sorted {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(p.Path, pathWidth),
			humanize.Comma(int64(p.Views)),
			humanize.Comma(int64(p.UniqueVisitors)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// writeOrganTable renders the per-organ activity breakdown, sorted by label
// for stable output.
func writeOrganTable(w io.Writer, breakdown map[string]schema.ActivityTotals) error {
	if len(breakdown) == 0 {
		fmt.Fprintln(w, "No activity data available.")
		fmt.Fprintln(w)
		return nil
	}

	organs := make([]string, 0, len(breakdown))
	for organ := range breakdown {
		organs = append(organs, organ)
	}
	sort.Strings(organs)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Organ", "Commits", "PRs", "Releases"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, organ := range organs {
		counts := breakdown[organ]
		data = append(data, []string{
			organ,
			strconv.Itoa(counts.Commits),
			strconv.Itoa(counts.PRs),
			strconv.Itoa(counts.Releases),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// writeAlertsTable renders triggered alerts with colored severity labels.
func writeAlertsTable(w io.Writer, alerts []schema.Alert, cfg *ReportConfig) error {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts triggered.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rule", "Severity", "Description", "Triggered"})

	var data [][]string
	for _, a := range alerts {
		severity := a.Severity
		if cfg.UseColors {
			severity = contract.GetColorSeverity(a.Severity)
		}
		data = append(data, []string{a.Rule, severity, a.Description, a.TriggeredAt})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatTrend renders a trend delta as a parenthesized suffix, empty when
// there is no baseline.
func formatTrend(deltaPct *float64) string {
	if deltaPct == nil {
		return ""
	}
	return fmt.Sprintf(" (%+.1f%%)", *deltaPct)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
