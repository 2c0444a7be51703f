package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organvm/analytics-engine/schema"
)

func trafficDropRule() schema.ThresholdRule {
	return schema.ThresholdRule{
		Name:        "traffic_drop",
		Description: "Page views dropped sharply week-over-week",
		Metric:      schema.MetricViewsDelta,
		Operator:    schema.OpLess,
		Value:       -30,
		Severity:    schema.WarningSeverity,
	}
}

func stallRule() schema.ThresholdRule {
	return schema.ThresholdRule{
		Name:        "github_stall",
		Description: "Very little commit activity this window",
		Metric:      schema.MetricTotalCommits,
		Operator:    schema.OpLess,
		Value:       5,
		Severity:    schema.InfoSeverity,
	}
}

func zeroTrafficRule() schema.ThresholdRule {
	return schema.ThresholdRule{
		Name:        "zero_traffic_page",
		Description: "A tracked page received no views",
		Metric:      schema.MetricPageViews,
		Operator:    schema.OpEqual,
		Value:       0,
		Severity:    schema.InfoSeverity,
	}
}

func TestEvaluateThresholdsTrafficDropFires(t *testing.T) {
	analytics := schema.UnavailableAnalytics()
	activity := schema.UnavailableActivity()
	trends := schema.Trends{ViewsDeltaPct: fptr(-45.2)}

	alerts := EvaluateThresholds([]schema.ThresholdRule{trafficDropRule()}, analytics, activity, trends, testNow)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, "traffic_drop", alert.Rule)
	assert.Equal(t, schema.WarningSeverity, alert.Severity)
	require.NotNil(t, alert.CurrentValue)
	assert.Equal(t, -45.2, *alert.CurrentValue)
	require.NotNil(t, alert.Threshold)
	assert.Equal(t, -30.0, *alert.Threshold)
	assert.Equal(t, "2026-02-24T12:00:00Z", alert.TriggeredAt)
}

func TestEvaluateThresholdsTrafficDropNotTriggered(t *testing.T) {
	trends := schema.Trends{ViewsDeltaPct: fptr(-10.0)}

	alerts := EvaluateThresholds([]schema.ThresholdRule{trafficDropRule()}, schema.UnavailableAnalytics(), schema.UnavailableActivity(), trends, testNow)

	assert.Empty(t, alerts)
	assert.NotNil(t, alerts, "no alerts is an empty slice, not nil")
}

func TestEvaluateThresholdsNilTrendSkipped(t *testing.T) {
	alerts := EvaluateThresholds([]schema.ThresholdRule{trafficDropRule()}, schema.UnavailableAnalytics(), schema.UnavailableActivity(), schema.Trends{}, testNow)

	assert.Empty(t, alerts, "rule over a missing trend never fires")
}

func TestEvaluateThresholdsCommitStall(t *testing.T) {
	activity := schema.UnavailableActivity()
	activity.Totals.Commits = 2

	alerts := EvaluateThresholds([]schema.ThresholdRule{stallRule()}, schema.UnavailableAnalytics(), activity, schema.Trends{}, testNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, "github_stall", alerts[0].Rule)
	assert.Equal(t, 2.0, *alerts[0].CurrentValue)
	assert.Equal(t, 5.0, *alerts[0].Threshold)
}

func TestEvaluateThresholdsCommitStallNotTriggered(t *testing.T) {
	activity := schema.UnavailableActivity()
	activity.Totals.Commits = 10

	alerts := EvaluateThresholds([]schema.ThresholdRule{stallRule()}, schema.UnavailableAnalytics(), activity, schema.Trends{}, testNow)

	assert.Empty(t, alerts)
}

func TestEvaluateThresholdsZeroTrafficPage(t *testing.T) {
	analytics := &schema.AnalyticsSnapshot{
		Available: true,
		Pages: []schema.PageStat{
			{Path: "/busy/", Count: 50},
			{Path: "/dead/", Count: 0},
		},
	}

	alerts := EvaluateThresholds([]schema.ThresholdRule{zeroTrafficRule()}, analytics, schema.UnavailableActivity(), schema.Trends{}, testNow)

	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, "zero_traffic_page", alert.Rule)
	assert.Nil(t, alert.CurrentValue, "zero-traffic variant carries no value fields")
	assert.Nil(t, alert.Threshold)
}

func TestEvaluateThresholdsZeroTrafficRequiresAvailableSource(t *testing.T) {
	analytics := &schema.AnalyticsSnapshot{
		Available: false,
		Pages:     []schema.PageStat{{Path: "/dead/", Count: 0}},
	}

	alerts := EvaluateThresholds([]schema.ThresholdRule{zeroTrafficRule()}, analytics, schema.UnavailableActivity(), schema.Trends{}, testNow)

	assert.Empty(t, alerts, "a zero count from an unavailable source is noise")
}

func TestEvaluateThresholdsReferrerShareSkipped(t *testing.T) {
	rule := schema.ThresholdRule{
		Name:     "referrer_concentration",
		Metric:   schema.MetricReferrerShare,
		Operator: schema.OpGreater,
		Value:    80,
		Severity: schema.InfoSeverity,
	}

	alerts := EvaluateThresholds([]schema.ThresholdRule{rule}, schema.UnavailableAnalytics(), schema.UnavailableActivity(), schema.Trends{}, testNow)

	assert.Empty(t, alerts)
}

func TestEvaluateThresholdsUnknownMetricSkipped(t *testing.T) {
	rule := schema.ThresholdRule{
		Name:     "mystery",
		Metric:   schema.MetricKey("bounce_rate"),
		Operator: schema.OpGreater,
		Value:    1,
		Severity: schema.WarningSeverity,
	}

	alerts := EvaluateThresholds([]schema.ThresholdRule{rule}, schema.UnavailableAnalytics(), schema.UnavailableActivity(), schema.Trends{}, testNow)

	assert.Empty(t, alerts)
}

func TestEvaluateThresholdsPreservesRuleOrder(t *testing.T) {
	analytics := &schema.AnalyticsSnapshot{
		Available: true,
		Pages:     []schema.PageStat{{Path: "/dead/", Count: 0}},
	}
	activity := schema.UnavailableActivity()
	activity.Totals.Commits = 1
	trends := schema.Trends{ViewsDeltaPct: fptr(-50.0), VisitorsDeltaPct: fptr(12.0)}

	rules := []schema.ThresholdRule{
		stallRule(),
		trafficDropRule(),
		zeroTrafficRule(),
	}

	alerts := EvaluateThresholds(rules, analytics, activity, trends, testNow)

	require.Len(t, alerts, 3)
	assert.Equal(t, "github_stall", alerts[0].Rule)
	assert.Equal(t, "traffic_drop", alerts[1].Rule)
	assert.Equal(t, "zero_traffic_page", alerts[2].Rule)
}

func TestEvaluateThresholdsOperators(t *testing.T) {
	cases := []struct {
		name     string
		operator schema.Operator
		value    float64
		trend    float64
		fires    bool
	}{
		{"less fires", schema.OpLess, 0, -0.1, true},
		{"less strict at boundary", schema.OpLess, 0, 0, false},
		{"greater fires", schema.OpGreater, 10, 10.1, true},
		{"greater strict at boundary", schema.OpGreater, 10, 10, false},
		{"equal fires", schema.OpEqual, 5, 5, true},
		{"equal misses", schema.OpEqual, 5, 5.1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule := schema.ThresholdRule{
				Name:     "probe",
				Metric:   schema.MetricViewsDelta,
				Operator: tc.operator,
				Value:    tc.value,
				Severity: schema.WarningSeverity,
			}
			trends := schema.Trends{ViewsDeltaPct: fptr(tc.trend)}

			alerts := EvaluateThresholds([]schema.ThresholdRule{rule}, schema.UnavailableAnalytics(), schema.UnavailableActivity(), trends, testNow)

			if tc.fires {
				assert.Len(t, alerts, 1)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}
