package domain

import "ux-metrics-service/internal/daterange"

// Minimum points each sub-analysis needs.
const (
	MinPointsGrowth     = 2
	MinPointsVolatility = 2
	MinPointsTrend      = 3
	MinPointsPattern    = 7
	// CAGR is only meaningful over more than this many points.
	CAGRMinPoints = 30
)

type TrendAnalysis struct {
	Range      daterange.DateRange
	MetricName string
	Scope      Scope
	DataPoints int

	Overall    OverallStats
	Growth     GrowthAnalysis
	Volatility VolatilityAnalysis
	Trend      TrendLine
	Patterns   PatternAnalysis
}

// Empty reports that no daily rows matched.
func (a TrendAnalysis) Empty() bool { return a.DataPoints == 0 }

type Totals struct {
	Total         int64
	AveragePerDay float64
}

type SessionTotals struct {
	Totals
	Min int64
	Max int64
}

type FrustrationTotals struct {
	DeadClicks int64
	RageClicks int64
	QuickBacks int64
	Total      int64
	PerSession float64 // 0 when there are no sessions
}

type OverallStats struct {
	Sessions    SessionTotals
	Users       Totals
	PageViews   Totals
	Frustration FrustrationTotals
}

// Sufficiency is carried by every statistical sub-analysis. When Sufficient
// is false only Note is meaningful.
type Sufficiency struct {
	Sufficient bool
	Note       string
}

type GrowthAnalysis struct {
	Sufficiency
	TotalGrowth         float64
	CAGR                *float64 // nil unless more than CAGRMinPoints points
	AvgDailyGrowth      float64
	FirstPeriodSessions int64
	LastPeriodSessions  int64
	AbsoluteChange      int64
}

type Stability string

const (
	StabilityHigh   Stability = "high"
	StabilityMedium Stability = "medium"
	StabilityLow    Stability = "low"
)

type VolatilityAnalysis struct {
	Sufficiency
	Mean                   float64
	StdDev                 float64
	Variance               float64
	CoefficientOfVariation float64
	Stability              Stability
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

type TrendStrength string

const (
	StrengthStrong   TrendStrength = "strong"
	StrengthModerate TrendStrength = "moderate"
	StrengthWeak     TrendStrength = "weak"
)

type TrendLine struct {
	Sufficiency
	Direction TrendDirection
	Slope     float64 // sessions per day
	Intercept float64
	RSquared  float64
	Strength  TrendStrength
}

type PatternAnalysis struct {
	Sufficiency
	Peaks                 []int // indexes into the date-ascending series
	Valleys               []int
	AvgPeakDistance       *float64
	AvgValleyDistance     *float64
	WeeklyPatternDetected bool
	Cyclical              bool
}
