package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/organvm/analytics-engine/schema"
)

// artifactNames lists the files copied to history after every run.
var artifactNames = []string{
	schema.EngagementMetricsFile,
	schema.SystemReportFile,
}

// SaveToHistory copies the current output artifacts into the history
// directory with the given date appended before the extension. A rerun on
// the same calendar date overwrites the prior copy (last write wins).
// History is never pruned; unbounded growth is accepted scope.
func SaveToHistory(outputDir, historyDir string, today time.Time) error {
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return fmt.Errorf("create history dir %s: %w", historyDir, err)
	}

	date := today.Format(time.DateOnly)
	for _, name := range artifactNames {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read artifact %s: %w", name, err)
		}

		dated := fmt.Sprintf("%s-%s.json", strings.TrimSuffix(name, ".json"), date)
		if err := os.WriteFile(filepath.Join(historyDir, dated), data, 0o644); err != nil {
			return fmt.Errorf("write history copy %s: %w", dated, err)
		}
	}
	return nil
}
