package core

import (
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// BuildEngagementMetrics builds the engagement-metrics artifact from the
// current analytics snapshot and the previous aggregate (nil when no baseline
// exists). Pure: missing fields default to their zero values and absence of
// the analytics source arrives as an unavailable placeholder, so this never
// fails. ReferrerCount is hardcoded to 0 pending a referrer data source.
func BuildEngagementMetrics(current *schema.AnalyticsSnapshot, previous *schema.EngagementMetrics, now time.Time) schema.EngagementMetrics {
	pages := make([]schema.PageMetrics, 0, len(current.Pages))
	for _, p := range current.Pages {
		pages = append(pages, schema.PageMetrics{
			Path:           p.Path,
			Title:          p.Title,
			Views:          p.Count,
			UniqueVisitors: p.CountUnique,
		})
	}

	var prevViews, prevVisitors *float64
	if previous != nil {
		prevViews = baselineOf(previous.SiteTotals.PageViews)
		prevVisitors = baselineOf(previous.SiteTotals.UniqueVisitors)
	}

	return schema.EngagementMetrics{
		GeneratedAt: now.Format(time.RFC3339),
		Period: schema.Period{
			Start: current.Period.Start,
			End:   current.Period.End,
		},
		SiteTotals: schema.AggregateTotals{
			PageViews:      current.SiteTotals.PageViews,
			UniqueVisitors: current.SiteTotals.UniqueVisitors,
			ReferrerCount:  0,
		},
		Pages: pages,
		Trends: schema.Trends{
			ViewsDeltaPct:    ComputeTrend(float64(current.SiteTotals.PageViews), prevViews),
			VisitorsDeltaPct: ComputeTrend(float64(current.SiteTotals.UniqueVisitors), prevVisitors),
		},
	}
}
