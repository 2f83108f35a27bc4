package domain

import "time"

// WeeklyAggregate caches MetricStats for one ISO week. Min/max sessions are
// not tracked at weekly granularity.
type WeeklyAggregate struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	Year       int // ISO year
	Week       int // ISO week 1..53
	MetricName string
	Scope      Scope
	PageID     string
	MetricStats
	ComputedAt time.Time
}

// MonthlyAggregate caches MetricStats for one calendar month, extremes included.
type MonthlyAggregate struct {
	Year       int
	Month      time.Month
	MonthStart time.Time
	MonthEnd   time.Time
	MetricName string
	Scope      Scope
	PageID     string
	MetricStats
	ComputedAt time.Time
}

// AggregationOutcome tells how a single-period aggregation was served.
type AggregationOutcome string

const (
	OutcomeComputed AggregationOutcome = "computed" // recomputed and upserted
	OutcomeCached   AggregationOutcome = "cached"   // existing row returned unchanged
	OutcomeEmpty    AggregationOutcome = "empty"    // no daily rows, nothing written
)

// AggregationRun summarises an aggregate-all walk.
type AggregationRun struct {
	RunID         string
	From          time.Time
	To            time.Time
	Weekly        int
	Monthly       int
	WeeklyFailed  int
	MonthlyFailed int
}
