package core

import (
	"strings"
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// BuildSystemReport composes analytics totals, activity totals and the alert
// list into the system-engagement-report artifact. Pure. The period prefers
// the analytics window, falling back per-field to the activity window when
// the analytics value is empty.
func BuildSystemReport(
	analytics *schema.AnalyticsSnapshot,
	activity *schema.ActivitySnapshot,
	alerts []schema.Alert,
	now time.Time,
) schema.SystemEngagementReport {
	start := analytics.Period.Start
	if start == "" {
		start = activity.Period.Start
	}
	end := analytics.Period.End
	if end == "" {
		end = activity.Period.End
	}

	if alerts == nil {
		alerts = []schema.Alert{}
	}

	return schema.SystemEngagementReport{
		GeneratedAt: now.Format(time.RFC3339),
		Period:      schema.Period{Start: start, End: end},
		WebEngagement: schema.WebEngagement{
			TotalViews:    analytics.SiteTotals.PageViews,
			TotalVisitors: analytics.SiteTotals.UniqueVisitors,
			TopEssay:      topEssay(analytics.Pages),
		},
		GitHubActivity: schema.GitHubActivity{
			TotalCommits:   activity.Totals.Commits,
			TotalPRs:       activity.Totals.PRs,
			TotalReleases:  activity.Totals.Releases,
			OrganBreakdown: activity.OrganBreakdown,
		},
		Alerts: alerts,
	}
}

// topEssay extracts a short identifier for the page with the most views:
// the last non-empty /-delimited segment of its path, e.g.
// /essays/meta-system/01-orchestrate/ -> 01-orchestrate. Ties go to the
// first maximal page in input order. Nil when there are no pages at all.
func topEssay(pages []schema.PageStat) *string {
	if len(pages) == 0 {
		return nil
	}

	top := pages[0]
	for _, p := range pages[1:] {
		if p.Count > top.Count {
			top = p
		}
	}

	var parts []string
	for _, seg := range strings.Split(strings.Trim(top.Path, "/"), "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	if len(parts) == 0 {
		return &top.Path
	}
	return &parts[len(parts)-1]
}
