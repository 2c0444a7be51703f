package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organvm/analytics-engine/schema"
)

const rawAnalytics = `{
  "available": true,
  "period": {"start": "2026-02-17", "end": "2026-02-24", "days": 7},
  "site_totals": {"page_views": 1077, "unique_visitors": 782},
  "pages": [
    {"path": "/essays/meta-system/01-orchestrate/", "title": "Orchestrate", "count": 450, "count_unique": 300},
    {"path": "/about/", "title": "About", "count": 80, "count_unique": 60}
  ]
}`

const rawActivity = `{
  "available": true,
  "period": {"start": "2026-02-17", "end": "2026-02-24", "days": 7},
  "totals": {"commits": 12, "prs": 3, "releases": 1},
  "organ_breakdown": {"I": {"commits": 12, "prs": 3, "releases": 1}}
}`

func readJSONFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestAggregateFullPipeline(t *testing.T) {
	rawDir := t.TempDir()
	outputDir := t.TempDir()
	historyDir := filepath.Join(t.TempDir(), "history")
	writeFile(t, rawDir, "goatcounter-2026-02-24.json", rawAnalytics)
	writeFile(t, rawDir, "github-activity-2026-02-24.json", rawActivity)

	summary, err := Aggregate(rawDir, outputDir, historyDir, nil)
	require.NoError(t, err)

	assert.True(t, summary.GoatCounterAvailable)
	assert.True(t, summary.GitHubAvailable)
	assert.Equal(t, 2, summary.PageCount)
	assert.Zero(t, summary.AlertCount)

	var engagement schema.EngagementMetrics
	readJSONFile(t, filepath.Join(outputDir, schema.EngagementMetricsFile), &engagement)
	assert.Equal(t, 1077, engagement.SiteTotals.PageViews)
	assert.Nil(t, engagement.Trends.ViewsDeltaPct, "first run has no baseline")

	var report schema.SystemEngagementReport
	readJSONFile(t, filepath.Join(outputDir, schema.SystemReportFile), &report)
	require.NotNil(t, report.WebEngagement.TopEssay)
	assert.Equal(t, "01-orchestrate", *report.WebEngagement.TopEssay)
	assert.Equal(t, 12, report.GitHubActivity.TotalCommits)

	raw, err := os.ReadFile(filepath.Join(outputDir, schema.EngagementMetricsFile))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), "}\n"), "artifacts end with a newline")
	assert.Contains(t, string(raw), "\n  \"period\"", "artifacts are indented")

	entries, err := os.ReadDir(historyDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "both artifacts rolled into history")
}

func TestAggregateEmptyRawDir(t *testing.T) {
	summary, err := Aggregate(t.TempDir(), t.TempDir(), t.TempDir(), nil)
	require.NoError(t, err)

	assert.False(t, summary.GoatCounterAvailable)
	assert.False(t, summary.GitHubAvailable)
	assert.Zero(t, summary.PageCount)
}

func TestAggregateTrendFromHistory(t *testing.T) {
	rawDir := t.TempDir()
	outputDir := t.TempDir()
	historyDir := t.TempDir()
	writeFile(t, rawDir, "goatcounter-2026-02-24.json", rawAnalytics)
	writeFile(t, historyDir, "engagement-metrics-2026-02-17.json",
		`{"site_totals": {"page_views": 950, "unique_visitors": 680}, "pages": []}`)

	_, err := Aggregate(rawDir, outputDir, historyDir, nil)
	require.NoError(t, err)

	var engagement schema.EngagementMetrics
	readJSONFile(t, filepath.Join(outputDir, schema.EngagementMetricsFile), &engagement)
	require.NotNil(t, engagement.Trends.ViewsDeltaPct)
	assert.InDelta(t, 13.4, *engagement.Trends.ViewsDeltaPct, 1e-9)
	require.NotNil(t, engagement.Trends.VisitorsDeltaPct)
	assert.InDelta(t, 15.0, *engagement.Trends.VisitorsDeltaPct, 1e-9)
}

func TestAggregateAlertFlowsIntoReport(t *testing.T) {
	rawDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, rawDir, "github-activity-2026-02-24.json",
		`{"available": true, "period": {"start": "2026-02-17", "end": "2026-02-24"}, "totals": {"commits": 1}, "organ_breakdown": {}}`)

	rules := []schema.ThresholdRule{{
		Name:        "github_stall",
		Description: "Very little commit activity this window",
		Metric:      schema.MetricTotalCommits,
		Operator:    schema.OpLess,
		Value:       5,
		Severity:    schema.InfoSeverity,
	}}

	summary, err := Aggregate(rawDir, outputDir, t.TempDir(), rules)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AlertCount)

	var report schema.SystemEngagementReport
	readJSONFile(t, filepath.Join(outputDir, schema.SystemReportFile), &report)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, "github_stall", report.Alerts[0].Rule)
	assert.Equal(t, "2026-02-17", report.Period.Start, "report period falls back to the activity window")
}

func TestAggregateMalformedRawSnapshot(t *testing.T) {
	rawDir := t.TempDir()
	writeFile(t, rawDir, "goatcounter-2026-02-24.json", `{not json`)

	_, err := Aggregate(rawDir, t.TempDir(), t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goatcounter-2026-02-24.json")
}

func TestAggregateNullTrendsInArtifact(t *testing.T) {
	outputDir := t.TempDir()

	_, err := Aggregate(t.TempDir(), outputDir, t.TempDir(), nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(outputDir, schema.EngagementMetricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"views_delta_pct": null`)
	assert.Contains(t, string(raw), `"visitors_delta_pct": null`)
}
