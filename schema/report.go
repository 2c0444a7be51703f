package schema

// AggregateTotals extends site totals with the referrer counter carried
// in the engagement artifact. ReferrerCount is always 0 until a referrer
// data source is wired in.
type AggregateTotals struct {
	PageViews      int `json:"page_views"`
	UniqueVisitors int `json:"unique_visitors"`
	ReferrerCount  int `json:"referrer_count"`
}

// PageMetrics is one page entry in the aggregated engagement artifact.
type PageMetrics struct {
	Path           string `json:"path"`
	Title          string `json:"title"`
	Views          int    `json:"views"`
	UniqueVisitors int    `json:"unique_visitors"`
}

// Trends holds week-over-week percentage deltas. A nil pointer marshals
// to JSON null and means no prior baseline existed (or the baseline was
// zero, which yields no meaningful percent change).
type Trends struct {
	ViewsDeltaPct    *float64 `json:"views_delta_pct"`
	VisitorsDeltaPct *float64 `json:"visitors_delta_pct"`
}

// EngagementMetrics is aggregated artifact #1 (engagement-metrics.json).
// The most recently written copy becomes the trend baseline for the next
// run via the history store.
type EngagementMetrics struct {
	GeneratedAt string          `json:"generated_at"`
	Period      Period          `json:"period"`
	SiteTotals  AggregateTotals `json:"site_totals"`
	Pages       []PageMetrics   `json:"pages"`
	Trends      Trends          `json:"trends"`
}

// WebEngagement summarizes web analytics in the system report.
// TopEssay is the slug of the highest-view page, nil when no pages exist.
type WebEngagement struct {
	TotalViews    int     `json:"total_views"`
	TotalVisitors int     `json:"total_visitors"`
	TopEssay      *string `json:"top_essay"`
}

// GitHubActivity summarizes code-hosting activity in the system report.
type GitHubActivity struct {
	TotalCommits   int                       `json:"total_commits"`
	TotalPRs       int                       `json:"total_prs"`
	TotalReleases  int                       `json:"total_releases"`
	OrganBreakdown map[string]ActivityTotals `json:"organ_breakdown"`
}

// SystemEngagementReport is aggregated artifact #2 (system-engagement-report.json).
type SystemEngagementReport struct {
	GeneratedAt    string         `json:"generated_at"`
	Period         Period         `json:"period"`
	WebEngagement  WebEngagement  `json:"web_engagement"`
	GitHubActivity GitHubActivity `json:"github_activity"`
	Alerts         []Alert        `json:"alerts"`
}

// Alert is one triggered threshold rule. Alerts are ephemeral: recomputed
// every run and persisted only inside the system report. CurrentValue and
// Threshold are omitted on the zero-traffic alert variant.
type Alert struct {
	Rule         string   `json:"rule"`
	Description  string   `json:"description"`
	Severity     string   `json:"severity"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Threshold    *float64 `json:"threshold,omitempty"`
	TriggeredAt  string   `json:"triggered_at"`
}
