// Package core has the aggregation engine: snapshot loading, trend math,
// artifact building, threshold evaluation and history rollover.
package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/organvm/analytics-engine/schema"
)

// latestFile returns the lexicographically greatest filename in dir matching
// {prefix}-*.json, or empty string when none exist. Snapshots carry zero-padded
// ISO date suffixes, so lexicographic order is chronological order.
func latestFile(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read snapshot dir %s: %w", dir, err)
	}

	var latest string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix+"-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if name > latest {
			latest = name
		}
	}
	if latest == "" {
		return "", nil
	}
	return filepath.Join(dir, latest), nil
}

// loadLatest parses the most recent dated JSON file for the given prefix.
// Returns (nil, nil) when no matching file exists. Malformed JSON is fatal
// and propagates with the offending filename.
func loadLatest[T any](dir, prefix string) (*T, error) {
	path, err := latestFile(dir, prefix)
	if err != nil || path == "" {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &out, nil
}

// LoadLatestAnalytics returns the most recent raw analytics snapshot in rawDir,
// or nil when none has been collected yet.
func LoadLatestAnalytics(rawDir string) (*schema.AnalyticsSnapshot, error) {
	snap, err := loadLatest[schema.AnalyticsSnapshot](rawDir, schema.GoatCounterSource)
	if snap != nil {
		snap.Normalize()
	}
	return snap, err
}

// LoadLatestActivity returns the most recent raw activity snapshot in rawDir,
// or nil when none has been collected yet.
func LoadLatestActivity(rawDir string) (*schema.ActivitySnapshot, error) {
	snap, err := loadLatest[schema.ActivitySnapshot](rawDir, schema.GitHubSource)
	if snap != nil {
		snap.Normalize()
	}
	return snap, err
}

// LoadPreviousMetrics returns the most recent engagement metrics copy from the
// history directory, used as the trend baseline. Nil when history is empty.
func LoadPreviousMetrics(historyDir string) (*schema.EngagementMetrics, error) {
	return loadLatest[schema.EngagementMetrics](historyDir, "engagement-metrics")
}
