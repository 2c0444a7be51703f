package core

import "math"

// ComputeTrend returns the week-over-week percentage change from previous to
// current, rounded half away from zero to one decimal place. Nil when there
// is no baseline or the baseline is zero: a zero previous value yields no
// meaningful percent change, so it is treated the same as no baseline.
func ComputeTrend(current float64, previous *float64) *float64 {
	if previous == nil || *previous == 0 {
		return nil
	}
	pct := math.Round(((current-*previous)/(*previous))*1000) / 10
	return &pct
}

// baselineOf lifts an integer counter into a trend baseline pointer.
func baselineOf(v int) *float64 {
	f := float64(v)
	return &f
}
