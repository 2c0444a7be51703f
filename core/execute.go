package core

import (
	"fmt"

	"github.com/organvm/analytics-engine/internal/contract"
)

// ExecuteAggregate loads the threshold rule set and runs one aggregation
// pass, printing the one-line run summary on success.
func ExecuteAggregate(cfg *contract.EngineConfig) error {
	rules, err := contract.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		return err
	}

	summary, err := Aggregate(cfg.RawDir, cfg.OutputDir, cfg.HistoryDir, rules)
	if err != nil {
		return err
	}

	fmt.Printf("Aggregated: GoatCounter %s, GitHub %s, %d pages, %d alerts\n",
		availability(summary.GoatCounterAvailable),
		availability(summary.GitHubAvailable),
		summary.PageCount,
		summary.AlertCount)
	return nil
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}
