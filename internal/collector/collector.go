// Package collector gathers raw usage snapshots from the GoatCounter and
// GitHub APIs and writes them as dated JSON files into the raw snapshot store.
package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// window returns the collection period ending today and spanning the given
// number of days, as zero-padded ISO date strings.
func window(days int, now time.Time) schema.Period {
	end := now.UTC()
	start := end.AddDate(0, 0, -days)
	return schema.Period{
		Start: start.Format(time.DateOnly),
		End:   end.Format(time.DateOnly),
		Days:  days,
	}
}

// WriteSnapshot writes a raw snapshot as {prefix}-{date}.json in dir,
// pretty-printed with a trailing newline, creating the directory if needed.
// A second collection on the same calendar date overwrites the first.
func WriteSnapshot(dir, prefix string, snapshot any, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create raw dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s snapshot: %w", prefix, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", prefix, now.UTC().Format(time.DateOnly)))
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return path, nil
}
