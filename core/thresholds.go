package core

import (
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// EvaluateThresholds checks every rule against current values and returns the
// triggered alerts in rule declaration order. Rules naming unknown or
// unavailable metrics are skipped, never errored: old rule files must keep
// working as metrics come and go.
func EvaluateThresholds(
	rules []schema.ThresholdRule,
	analytics *schema.AnalyticsSnapshot,
	activity *schema.ActivitySnapshot,
	trends schema.Trends,
	now time.Time,
) []schema.Alert {
	alerts := []schema.Alert{}

	metricValues := map[schema.MetricKey]*float64{
		schema.MetricViewsDelta:    trends.ViewsDeltaPct,
		schema.MetricVisitorsDelta: trends.VisitorsDeltaPct,
		schema.MetricTotalCommits:  baselineOf(activity.Totals.Commits),
	}

	hasZeroTraffic := false
	for _, p := range analytics.Pages {
		if p.Count == 0 {
			hasZeroTraffic = true
			break
		}
	}

	triggeredAt := now.Format(time.RFC3339)

	for _, rule := range rules {
		// A live page with zero traffic is a content problem, not a data
		// problem, so this variant only fires when the source is available.
		if rule.Metric == schema.MetricPageViews && rule.Operator == schema.OpEqual && rule.Value == 0 {
			if hasZeroTraffic && analytics.Available {
				alerts = append(alerts, schema.Alert{
					Rule:        rule.Name,
					Description: rule.Description,
					Severity:    rule.Severity,
					TriggeredAt: triggeredAt,
				})
			}
			continue
		}

		// referrer_share_pct rules are accepted but not evaluated until a
		// referrer data source exists.
		if rule.Metric == schema.MetricReferrerShare {
			continue
		}

		value, ok := metricValues[rule.Metric]
		if !ok || value == nil {
			continue
		}

		triggered := false
		switch rule.Operator {
		case schema.OpLess:
			triggered = *value < rule.Value
		case schema.OpGreater:
			triggered = *value > rule.Value
		case schema.OpEqual:
			triggered = *value == rule.Value
		}

		if triggered {
			threshold := rule.Value
			alerts = append(alerts, schema.Alert{
				Rule:         rule.Name,
				Description:  rule.Description,
				Severity:     rule.Severity,
				CurrentValue: value,
				Threshold:    &threshold,
				TriggeredAt:  triggeredAt,
			})
		}
	}

	return alerts
}
