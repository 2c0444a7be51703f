// Package dashboard renders the two aggregated artifacts as a self-contained
// static HTML page with inline CSS and inline SVG charts. No JavaScript.
package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/organvm/analytics-engine/schema"
)

// TrendIndicator renders trend direction and magnitude. Nil means no
// baseline and renders as a neutral placeholder.
func TrendIndicator(deltaPct *float64) template.HTML {
	if deltaPct == nil {
		return `<span class="trend neutral">--</span>`
	}

	var arrow, cls string
	switch {
	case *deltaPct > 0:
		arrow, cls = "&#9650;", "up"
	case *deltaPct < 0:
		arrow, cls = "&#9660;", "down"
	default:
		arrow, cls = "&#9654;", "neutral"
	}
	return template.HTML(fmt.Sprintf(`<span class="trend %s">%s %+.1f%%</span>`, cls, arrow, *deltaPct))
}

// pagesTable renders page metrics as an HTML table sorted by views descending.
func pagesTable(pages []schema.PageMetrics) template.HTML {
	if len(pages) == 0 {
		return `<p class="empty-notice">No page data available.</p>`
	}

	sorted := make([]schema.PageMetrics, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Views > sorted[j].Views })

	var rows strings.Builder
	for _, p := range sorted {
		title := p.Title
		if title == "" {
			title = p.Path
		}
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td class='num'>%d</td><td class='num'>%d</td></tr>",
			template.HTMLEscapeString(title), template.HTMLEscapeString(p.Path), p.Views, p.UniqueVisitors)
	}

	return template.HTML(
		`<table><thead><tr><th>Title</th><th>Path</th><th>Views</th><th>Unique</th></tr></thead><tbody>` +
			rows.String() + `</tbody></table>`)
}

// alertsList renders alert entries as severity-classed list items.
func alertsList(alerts []schema.Alert) template.HTML {
	if len(alerts) == 0 {
		return `<p class="empty-notice">No alerts triggered.</p>`
	}

	var items strings.Builder
	for _, a := range alerts {
		desc := a.Description
		if desc == "" {
			desc = a.Rule
		}
		fmt.Fprintf(&items, `<li class="alert-%s">%s</li>`,
			template.HTMLEscapeString(a.Severity), template.HTMLEscapeString(desc))
	}
	return template.HTML(`<ul class="alerts">` + items.String() + `</ul>`)
}

// renderModel is the data handed to the page template.
type renderModel struct {
	PeriodStart   string
	PeriodEnd     string
	GeneratedDate string
	HasData       bool
	PageViews     string
	Visitors      string
	Commits       string
	PRs           string
	ViewsTrend    template.HTML
	VisitorsTrend template.HTML
	PagesTable    template.HTML
	OrganChart    template.HTML
	Alerts        template.HTML
}

// Render produces the full dashboard page from the two artifacts.
func Render(engagement *schema.EngagementMetrics, report *schema.SystemEngagementReport) (string, error) {
	gh := report.GitHubActivity

	organs := make([]string, 0, len(gh.OrganBreakdown))
	for organ := range gh.OrganBreakdown {
		organs = append(organs, organ)
	}
	sort.Strings(organs)
	commits := make([]int, len(organs))
	for i, organ := range organs {
		commits[i] = gh.OrganBreakdown[organ].Commits
	}

	orDefault := func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return s
	}
	generated := engagement.GeneratedAt
	if len(generated) > 10 {
		generated = generated[:10]
	}

	model := renderModel{
		PeriodStart:   orDefault(engagement.Period.Start, "N/A"),
		PeriodEnd:     orDefault(engagement.Period.End, "N/A"),
		GeneratedDate: orDefault(generated, "N/A"),
		HasData:       engagement.SiteTotals.PageViews > 0 || gh.TotalCommits > 0,
		PageViews:     humanize.Comma(int64(engagement.SiteTotals.PageViews)),
		Visitors:      humanize.Comma(int64(engagement.SiteTotals.UniqueVisitors)),
		Commits:       humanize.Comma(int64(gh.TotalCommits)),
		PRs:           humanize.Comma(int64(gh.TotalPRs)),
		ViewsTrend:    TrendIndicator(engagement.Trends.ViewsDeltaPct),
		VisitorsTrend: TrendIndicator(engagement.Trends.VisitorsDeltaPct),
		PagesTable:    pagesTable(engagement.Pages),
		OrganChart:    BarChartSVG(organs, commits, 400, 24),
		Alerts:        alertsList(report.Alerts),
	}

	var out strings.Builder
	if err := pageTemplate.Execute(&out, model); err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}
	return out.String(), nil
}

// Generate loads the aggregated artifacts from inputDir (substituting empty
// defaults for missing files), renders the page and writes index.html to
// outputDir. Returns the path of the generated file.
func Generate(inputDir, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create dashboard dir %s: %w", outputDir, err)
	}

	var engagement schema.EngagementMetrics
	if err := readArtifact(filepath.Join(inputDir, schema.EngagementMetricsFile), &engagement); err != nil {
		return "", err
	}
	var report schema.SystemEngagementReport
	if err := readArtifact(filepath.Join(inputDir, schema.SystemReportFile), &report); err != nil {
		return "", err
	}

	html, err := Render(&engagement, &report)
	if err != nil {
		return "", err
	}

	outputFile := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(outputFile, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write dashboard %s: %w", outputFile, err)
	}
	return outputFile, nil
}

// readArtifact parses an artifact file into out, leaving out zero-valued
// when the file does not exist yet.
func readArtifact(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return nil
}
