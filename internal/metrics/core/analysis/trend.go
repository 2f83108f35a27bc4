package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"ux-metrics-service/internal/metrics/core/domain"
)

// SortByDate returns a date-ascending copy of rows. Rows sharing a date keep
// their relative order.
func SortByDate(rows []domain.DailyMetric) []domain.DailyMetric {
	out := make([]domain.DailyMetric, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MetricDate.Before(out[j].MetricDate)
	})
	return out
}

// SessionSeries extracts the sessions column.
func SessionSeries(rows []domain.DailyMetric) []int64 {
	out := make([]int64, len(rows))
	for i, m := range rows {
		out[i] = m.Sessions
	}
	return out
}

func insufficient(what string, need int) domain.Sufficiency {
	return domain.Sufficiency{Note: fmt.Sprintf("insufficient data for %s analysis (need %d+ data points)", what, need)}
}

var sufficient = domain.Sufficiency{Sufficient: true}

// Overall totals across all rows.
func Overall(rows []domain.DailyMetric) domain.OverallStats {
	var o domain.OverallStats
	if len(rows) == 0 {
		return o
	}

	o.Sessions.Min = rows[0].Sessions
	o.Sessions.Max = rows[0].Sessions
	for _, m := range rows {
		o.Sessions.Total += m.Sessions
		o.Users.Total += m.Users
		o.PageViews.Total += m.PageViews
		o.Frustration.DeadClicks += m.DeadClicks
		o.Frustration.RageClicks += m.RageClicks
		o.Frustration.QuickBacks += m.QuickBacks

		if m.Sessions < o.Sessions.Min {
			o.Sessions.Min = m.Sessions
		}
		if m.Sessions > o.Sessions.Max {
			o.Sessions.Max = m.Sessions
		}
	}

	n := float64(len(rows))
	o.Sessions.AveragePerDay = float64(o.Sessions.Total) / n
	o.Users.AveragePerDay = float64(o.Users.Total) / n
	o.PageViews.AveragePerDay = float64(o.PageViews.Total) / n

	f := &o.Frustration
	f.Total = f.DeadClicks + f.RageClicks + f.QuickBacks
	if o.Sessions.Total > 0 {
		f.PerSession = float64(f.Total) / float64(o.Sessions.Total)
	}
	return o
}

// Growth compares the first and last points of a date-ascending series.
func Growth(sessions []int64) domain.GrowthAnalysis {
	if len(sessions) < domain.MinPointsGrowth {
		return domain.GrowthAnalysis{Sufficiency: insufficient("growth", domain.MinPointsGrowth)}
	}

	first, last := sessions[0], sessions[len(sessions)-1]
	g := domain.GrowthAnalysis{
		Sufficiency:         sufficient,
		FirstPeriodSessions: first,
		LastPeriodSessions:  last,
		AbsoluteChange:      last - first,
	}

	switch {
	case first != 0:
		g.TotalGrowth = float64(last-first) / float64(first) * 100
	case last > 0:
		g.TotalGrowth = NewActivityPercent
	}

	if n := len(sessions); n > domain.CAGRMinPoints {
		cagr := 0.0
		if first > 0 {
			cagr = (math.Pow(float64(last)/float64(first), 365/float64(n)) - 1) * 100
		}
		g.CAGR = &cagr
	}

	// steps from a zero day are skipped
	var daily stats.Float64Data
	for i := 1; i < len(sessions); i++ {
		prev := sessions[i-1]
		if prev > 0 {
			daily = append(daily, float64(sessions[i]-prev)/float64(prev)*100)
		}
	}
	if len(daily) > 0 {
		g.AvgDailyGrowth, _ = stats.Mean(daily)
	}
	return g
}

// Volatility measures spread of the sessions series.
func Volatility(sessions []int64) domain.VolatilityAnalysis {
	if len(sessions) < domain.MinPointsVolatility {
		return domain.VolatilityAnalysis{Sufficiency: insufficient("volatility", domain.MinPointsVolatility)}
	}

	data := toFloat64Data(sessions)
	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviationSample(data)
	variance, _ := stats.VarianceSample(data)

	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean * 100
	}

	v := domain.VolatilityAnalysis{
		Sufficiency:            sufficient,
		Mean:                   mean,
		StdDev:                 stdDev,
		Variance:               variance,
		CoefficientOfVariation: cv,
	}
	switch {
	case cv < 10:
		v.Stability = domain.StabilityHigh
	case cv < 30:
		v.Stability = domain.StabilityMedium
	default:
		v.Stability = domain.StabilityLow
	}
	return v
}

// Trend fits sessions = slope*day + intercept by least squares, with day as
// the 0-based index into the series.
func Trend(sessions []int64) domain.TrendLine {
	n := len(sessions)
	if n < domain.MinPointsTrend {
		return domain.TrendLine{Sufficiency: insufficient("trend", domain.MinPointsTrend)}
	}

	series := make(stats.Series, n)
	for i, s := range sessions {
		series[i] = stats.Coordinate{X: float64(i), Y: float64(s)}
	}

	fitted, err := stats.LinearRegression(series)
	if err != nil || len(fitted) != n {
		return domain.TrendLine{Sufficiency: domain.Sufficiency{Note: "linear regression failed"}}
	}

	intercept := fitted[0].Y
	slope := (fitted[n-1].Y - fitted[0].Y) / float64(n-1)

	mean, _ := stats.Mean(toFloat64Data(sessions))
	var ssRes, ssTot float64
	for i, s := range sessions {
		y := float64(s)
		ssRes += (y - fitted[i].Y) * (y - fitted[i].Y)
		ssTot += (y - mean) * (y - mean)
	}
	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	t := domain.TrendLine{
		Sufficiency: sufficient,
		Slope:       slope,
		Intercept:   intercept,
		RSquared:    rSquared,
	}

	switch {
	case slope > 0.5:
		t.Direction = domain.TrendIncreasing
	case slope < -0.5:
		t.Direction = domain.TrendDecreasing
	default:
		t.Direction = domain.TrendStable
	}

	switch {
	case rSquared > 0.7:
		t.Strength = domain.StrengthStrong
	case rSquared > 0.4:
		t.Strength = domain.StrengthModerate
	default:
		t.Strength = domain.StrengthWeak
	}
	return t
}

// Patterns finds strict local peaks and valleys and the mean spacing between
// consecutive ones.
func Patterns(sessions []int64) domain.PatternAnalysis {
	if len(sessions) < domain.MinPointsPattern {
		return domain.PatternAnalysis{Sufficiency: insufficient("pattern", domain.MinPointsPattern)}
	}

	p := domain.PatternAnalysis{Sufficiency: sufficient, Peaks: []int{}, Valleys: []int{}}
	for i := 1; i < len(sessions)-1; i++ {
		prev, cur, next := sessions[i-1], sessions[i], sessions[i+1]
		switch {
		case cur > prev && cur > next:
			p.Peaks = append(p.Peaks, i)
		case cur < prev && cur < next:
			p.Valleys = append(p.Valleys, i)
		}
	}

	p.AvgPeakDistance = averageSpacing(p.Peaks)
	p.AvgValleyDistance = averageSpacing(p.Valleys)

	if d := p.AvgPeakDistance; d != nil {
		p.WeeklyPatternDetected = *d >= 6 && *d <= 8
		p.Cyclical = *d > 0
	}
	return p
}

// averageSpacing is nil when fewer than two indexes are given.
func averageSpacing(idx []int) *float64 {
	if len(idx) < 2 {
		return nil
	}
	gaps := make(stats.Float64Data, 0, len(idx)-1)
	for i := 1; i < len(idx); i++ {
		gaps = append(gaps, float64(idx[i]-idx[i-1]))
	}
	avg, err := stats.Mean(gaps)
	if err != nil {
		return nil
	}
	return &avg
}

func toFloat64Data(values []int64) stats.Float64Data {
	out := make(stats.Float64Data, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
