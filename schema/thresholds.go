package schema

// Custom string types for type safety.
type (
	// MetricKey identifies the metric a threshold rule is evaluated against.
	MetricKey string

	// Operator is a threshold comparison operator.
	Operator string

	// OutputMode represents the format of console output.
	OutputMode string
)

// Metric keys understood by the threshold evaluator. Rules naming any
// other key are silently skipped, which keeps old rule files forward
// compatible with metrics that no longer exist.
const (
	MetricViewsDelta    MetricKey = "views_delta_pct"
	MetricVisitorsDelta MetricKey = "visitors_delta_pct"
	MetricTotalCommits  MetricKey = "total_commits"
	MetricPageViews     MetricKey = "page_views"
	MetricReferrerShare MetricKey = "referrer_share_pct" // declared but never evaluated
)

// All comparison operators supported. Operators are strict numeric
// comparisons; at most one can match per rule.
const (
	OpLess    Operator = "<"
	OpGreater Operator = ">"
	OpEqual   Operator = "=="
)

// All console output modes supported by the report command.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
}

// Alert severity levels, lowest to highest.
const (
	InfoSeverity     = "info"
	WarningSeverity  = "warning" // default
	CriticalSeverity = "critical"
)

// ThresholdRule is a single named comparison rule, loaded once at process
// start and immutable for the run.
type ThresholdRule struct {
	Name        string
	Description string
	Metric      MetricKey
	Operator    Operator
	Value       float64
	Severity    string
}
