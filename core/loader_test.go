package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadLatestAnalytics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "goatcounter-2026-02-24.json", `{"available": true, "site_totals": {"page_views": 42}}`)

	snap, err := LoadLatestAnalytics(dir)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.True(t, snap.Available)
	assert.Equal(t, 42, snap.SiteTotals.PageViews)
	assert.NotNil(t, snap.Pages, "pages should be normalized to an empty slice")
}

func TestLoadLatestAnalyticsPicksMostRecent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "goatcounter-2026-02-17.json", `{"site_totals": {"page_views": 1}}`)
	writeFile(t, dir, "goatcounter-2026-02-24.json", `{"site_totals": {"page_views": 2}}`)
	// Files from other sources never match the prefix.
	writeFile(t, dir, "github-activity-2026-02-25.json", `{"totals": {"commits": 9}}`)

	snap, err := LoadLatestAnalytics(dir)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 2, snap.SiteTotals.PageViews)
}

func TestLoadLatestAnalyticsNoFiles(t *testing.T) {
	snap, err := LoadLatestAnalytics(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLoadLatestAnalyticsMissingDir(t *testing.T) {
	snap, err := LoadLatestAnalytics(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLoadLatestAnalyticsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "goatcounter-2026-02-24.json", `{not json`)

	_, err := LoadLatestAnalytics(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goatcounter-2026-02-24.json")
}

func TestLoadLatestActivity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "github-activity-2026-02-24.json", `{"available": true, "totals": {"commits": 47, "prs": 3, "releases": 1}}`)

	snap, err := LoadLatestActivity(dir)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 47, snap.Totals.Commits)
	assert.NotNil(t, snap.OrganBreakdown, "breakdown should be normalized to an empty map")
}

func TestLoadPreviousMetrics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "engagement-metrics-2026-02-10.json", `{"site_totals": {"page_views": 800}}`)
	writeFile(t, dir, "engagement-metrics-2026-02-17.json", `{"site_totals": {"page_views": 950}}`)
	// Report copies in the same directory must not be picked up.
	writeFile(t, dir, "system-engagement-report-2026-02-24.json", `{}`)

	prev, err := LoadPreviousMetrics(dir)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 950, prev.SiteTotals.PageViews)
}

func TestLoadPreviousMetricsEmpty(t *testing.T) {
	prev, err := LoadPreviousMetrics(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, prev)
}
