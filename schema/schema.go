// Package schema has models, enums and placeholder constructors for all parts of analytics-engine.
package schema

// Source prefixes used for dated raw snapshot filenames.
const (
	GoatCounterSource = "goatcounter"
	GitHubSource      = "github-activity"
)

// Output artifact filenames produced by every aggregation run.
const (
	EngagementMetricsFile = "engagement-metrics.json"
	SystemReportFile      = "system-engagement-report.json"
)

// Period is the collection window of a snapshot or artifact.
// Start and end are opaque calendar-date strings; whether the end is
// inclusive depends on the source, so nothing downstream interprets them.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days,omitempty"`
}

// SiteTotals holds site-wide web analytics counters.
type SiteTotals struct {
	PageViews      int `json:"page_views"`
	UniqueVisitors int `json:"unique_visitors"`
}

// PageStat is one page entry in a raw analytics snapshot, in collector shape.
type PageStat struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Count       int    `json:"count"`
	CountUnique int    `json:"count_unique"`
}

// AnalyticsSnapshot is one dated capture of the GoatCounter collector output.
// Immutable once written; identified by a goatcounter-{date}.json filename.
type AnalyticsSnapshot struct {
	Source      string     `json:"source,omitempty"`
	CollectedAt string     `json:"collected_at,omitempty"`
	Available   bool       `json:"available"`
	Reason      string     `json:"reason,omitempty"`
	Period      Period     `json:"period"`
	SiteTotals  SiteTotals `json:"site_totals"`
	Pages       []PageStat `json:"pages"`
}

// Normalize fills nil collections so downstream logic and JSON output
// always see fully-populated structures.
func (s *AnalyticsSnapshot) Normalize() {
	if s.Pages == nil {
		s.Pages = []PageStat{}
	}
}

// ActivityTotals holds commit, PR and release counters for one window.
type ActivityTotals struct {
	Commits  int `json:"commits"`
	PRs      int `json:"prs"`
	Releases int `json:"releases"`
}

// ActivitySnapshot is one dated capture of the GitHub activity collector output.
// The breakdown has one entry per configured organ even when no events occurred.
type ActivitySnapshot struct {
	Source         string                    `json:"source,omitempty"`
	CollectedAt    string                    `json:"collected_at,omitempty"`
	Available      bool                      `json:"available"`
	Reason         string                    `json:"reason,omitempty"`
	Period         Period                    `json:"period"`
	Totals         ActivityTotals            `json:"totals"`
	OrganBreakdown map[string]ActivityTotals `json:"organ_breakdown"`
}

// Normalize fills nil collections so downstream logic and JSON output
// always see fully-populated structures.
func (s *ActivitySnapshot) Normalize() {
	if s.OrganBreakdown == nil {
		s.OrganBreakdown = map[string]ActivityTotals{}
	}
}

// UnavailableAnalytics returns the placeholder snapshot used when no
// analytics raw file exists. Missing source data is not an error; the
// placeholder flows through the pipeline with zeroed fields.
func UnavailableAnalytics() *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		Available: false,
		Pages:     []PageStat{},
	}
}

// UnavailableActivity returns the placeholder snapshot used when no
// activity raw file exists.
func UnavailableActivity() *ActivitySnapshot {
	return &ActivitySnapshot{
		Available:      false,
		OrganBreakdown: map[string]ActivityTotals{},
	}
}

// RunSummary reports what a single aggregation run produced.
type RunSummary struct {
	GoatCounterAvailable bool `json:"goatcounter_available"`
	GitHubAvailable      bool `json:"github_available"`
	PageCount            int  `json:"page_count"`
	AlertCount           int  `json:"alert_count"`
}
