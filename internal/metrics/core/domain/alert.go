package domain

import "ux-metrics-service/internal/daterange"

// FrustrationAlert is raised when frustration signals per session exceed the
// configured threshold over a range.
type FrustrationAlert struct {
	Range       daterange.DateRange
	MetricName  string
	Scope       Scope
	Sessions    int64
	Frustration FrustrationTotals
	Percentage  float64 // signals per 100 sessions
	Threshold   float64
}
