package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// Aggregate runs the full pipeline once: load the latest raw snapshot of each
// source (substituting an unavailable placeholder when none exists), load the
// previous aggregate for the trend baseline, build both artifacts, evaluate
// thresholds, write the artifacts and roll them over into history.
//
// Single-threaded and sequential; any I/O failure or malformed JSON aborts
// the run. Partial failure is not a supported state.
func Aggregate(rawDir, outputDir, historyDir string, rules []schema.ThresholdRule) (schema.RunSummary, error) {
	var summary schema.RunSummary

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	analytics, err := LoadLatestAnalytics(rawDir)
	if err != nil {
		return summary, err
	}
	if analytics == nil {
		analytics = schema.UnavailableAnalytics()
	}

	activity, err := LoadLatestActivity(rawDir)
	if err != nil {
		return summary, err
	}
	if activity == nil {
		activity = schema.UnavailableActivity()
	}

	previous, err := LoadPreviousMetrics(historyDir)
	if err != nil {
		return summary, err
	}

	now := time.Now().UTC()
	engagement := BuildEngagementMetrics(analytics, previous, now)
	alerts := EvaluateThresholds(rules, analytics, activity, engagement.Trends, now)
	report := BuildSystemReport(analytics, activity, alerts, now)

	if err := WriteArtifact(filepath.Join(outputDir, schema.EngagementMetricsFile), engagement); err != nil {
		return summary, err
	}
	if err := WriteArtifact(filepath.Join(outputDir, schema.SystemReportFile), report); err != nil {
		return summary, err
	}

	if err := SaveToHistory(outputDir, historyDir, now); err != nil {
		return summary, err
	}

	summary = schema.RunSummary{
		GoatCounterAvailable: analytics.Available,
		GitHubAvailable:      activity.Available,
		PageCount:            len(engagement.Pages),
		AlertCount:           len(alerts),
	}
	return summary, nil
}

// WriteArtifact writes v as pretty-printed JSON with a trailing newline.
func WriteArtifact(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}
