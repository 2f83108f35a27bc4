package fiber

import (
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_metrics_query"`
	Message string `json:"message,omitempty" example:"metric_name is required"`
}

type PeriodResponse struct {
	Start string `json:"start" example:"2025-11-01"`
	End   string `json:"end" example:"2025-11-30"`
	Days  int    `json:"days" example:"30"`
	Label string `json:"label,omitempty" example:"November 2025"`
}

func toPeriod(r daterange.DateRange) PeriodResponse {
	return PeriodResponse{Start: r.StartString(), End: r.EndString(), Days: r.Days(), Label: r.Label()}
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(daterange.DateLayout)
}

// ------------------------------------------------------------
// QUERY
// ------------------------------------------------------------

type DimensionResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type DailyMetricResponse struct {
	MetricDate string              `json:"metric_date" example:"2025-11-24"`
	MetricName string              `json:"metric_name" example:"Traffic"`
	DataScope  string              `json:"data_scope" example:"general"`
	PageID     string              `json:"page_id,omitempty"`
	Dimensions []DimensionResponse `json:"dimensions,omitempty"`

	Sessions        int64   `json:"sessions"`
	Users           int64   `json:"users"`
	BotSessions     int64   `json:"bot_sessions"`
	PageViews       int64   `json:"page_views"`
	PagesPerSession float64 `json:"pages_per_session"`

	MobileSessions  int64 `json:"mobile_sessions"`
	DesktopSessions int64 `json:"desktop_sessions"`
	TabletSessions  int64 `json:"tablet_sessions"`

	DeadClicks       int64 `json:"dead_clicks"`
	RageClicks       int64 `json:"rage_clicks"`
	QuickBacks       int64 `json:"quick_backs"`
	ErrorClicks      int64 `json:"error_clicks"`
	ScriptErrors     int64 `json:"script_errors"`
	ExcessiveScrolls int64 `json:"excessive_scrolls"`

	ScrollDepth    float64 `json:"scroll_depth"`
	EngagementTime float64 `json:"engagement_time"`
	ActiveTime     float64 `json:"active_time"`
}

type QueryMetricsResponse struct {
	Period  PeriodResponse        `json:"period"`
	Count   int                   `json:"count"`
	Metrics []DailyMetricResponse `json:"metrics"`
}

func toDailyMetric(m domain.DailyMetric) DailyMetricResponse {
	out := DailyMetricResponse{
		MetricDate:       isoDate(m.MetricDate),
		MetricName:       m.MetricName,
		DataScope:        string(m.Scope),
		PageID:           m.PageID,
		Sessions:         m.Sessions,
		Users:            m.Users,
		BotSessions:      m.BotSessions,
		PageViews:        m.PageViews,
		PagesPerSession:  m.PagesPerSession,
		MobileSessions:   m.MobileSessions,
		DesktopSessions:  m.DesktopSessions,
		TabletSessions:   m.TabletSessions,
		DeadClicks:       m.DeadClicks,
		RageClicks:       m.RageClicks,
		QuickBacks:       m.QuickBacks,
		ErrorClicks:      m.ErrorClicks,
		ScriptErrors:     m.ScriptErrors,
		ExcessiveScrolls: m.ExcessiveScrolls,
		ScrollDepth:      m.ScrollDepth,
		EngagementTime:   m.EngagementTime,
		ActiveTime:       m.ActiveTime,
	}
	for _, d := range m.Dimensions {
		if d.Name != "" {
			out.Dimensions = append(out.Dimensions, DimensionResponse{Name: d.Name, Value: d.Value})
		}
	}
	return out
}

// MetricStatsResponse field names are consumed verbatim by report tooling.
type MetricStatsResponse struct {
	DataPoints        int64   `json:"data_points" example:"30"`
	AvgSessions       float64 `json:"avg_sessions" example:"1416.5"`
	SumSessions       int64   `json:"sum_sessions" example:"42495"`
	MinSessions       *int64  `json:"min_sessions,omitempty" example:"1200"`
	MaxSessions       *int64  `json:"max_sessions,omitempty" example:"1650"`
	AvgUsers          float64 `json:"avg_users"`
	SumUsers          int64   `json:"sum_users"`
	AvgDeadClicks     float64 `json:"avg_dead_clicks"`
	AvgRageClicks     float64 `json:"avg_rage_clicks"`
	AvgQuickBacks     float64 `json:"avg_quick_backs"`
	AvgScrollDepth    float64 `json:"avg_scroll_depth"`
	AvgEngagementTime float64 `json:"avg_engagement_time"`
}

func toStats(s domain.MetricStats, withExtremes bool) MetricStatsResponse {
	out := MetricStatsResponse{
		DataPoints:        s.DataPoints,
		AvgSessions:       s.AvgSessions,
		SumSessions:       s.SumSessions,
		AvgUsers:          s.AvgUsers,
		SumUsers:          s.SumUsers,
		AvgDeadClicks:     s.AvgDeadClicks,
		AvgRageClicks:     s.AvgRageClicks,
		AvgQuickBacks:     s.AvgQuickBacks,
		AvgScrollDepth:    s.AvgScrollDepth,
		AvgEngagementTime: s.AvgEngagementTime,
	}
	if withExtremes {
		minS, maxS := s.MinSessions, s.MaxSessions
		out.MinSessions, out.MaxSessions = &minS, &maxS
	}
	return out
}

type SummaryResponse struct {
	Period     PeriodResponse `json:"period"`
	MetricName string         `json:"metric_name"`
	DataScope  string         `json:"data_scope"`
	PageID     string         `json:"page_id,omitempty"`
	MetricStatsResponse
}

type AvailableDatesResponse struct {
	DataScope string   `json:"data_scope,omitempty"`
	Dates     []string `json:"dates"`
}

type StatusResponse struct {
	Rows    int64  `json:"rows"`
	Days    int64  `json:"days"`
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
}

// ------------------------------------------------------------
// AGGREGATION
// ------------------------------------------------------------

type WeeklyAggregationRequest struct {
	Year       int    `json:"year" example:"2025"`
	Week       int    `json:"week" example:"48"`
	MetricName string `json:"metric_name,omitempty" example:"Traffic"`
	DataScope  string `json:"data_scope,omitempty" example:"general"`
	PageID     string `json:"page_id,omitempty"`
	Force      bool   `json:"force"`
}

type MonthlyAggregationRequest struct {
	Year       int    `json:"year" example:"2025"`
	Month      int    `json:"month" example:"11"`
	MetricName string `json:"metric_name,omitempty" example:"Traffic"`
	DataScope  string `json:"data_scope,omitempty" example:"general"`
	PageID     string `json:"page_id,omitempty"`
	Force      bool   `json:"force"`
}

type WeeklyAggregateResponse struct {
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
	Year       int    `json:"year"`
	WeekNumber int    `json:"week_number"`
	MetricName string `json:"metric_name"`
	DataScope  string `json:"data_scope"`
	PageID     string `json:"page_id,omitempty"`
	MetricStatsResponse
	ComputedAt time.Time `json:"computed_at"`
}

type MonthlyAggregateResponse struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	MonthStart string `json:"month_start"`
	MonthEnd   string `json:"month_end"`
	MetricName string `json:"metric_name"`
	DataScope  string `json:"data_scope"`
	PageID     string `json:"page_id,omitempty"`
	MetricStatsResponse
	ComputedAt time.Time `json:"computed_at"`
}

type WeeklyAggregationResponse struct {
	Outcome   string                   `json:"outcome" example:"computed"`
	Aggregate *WeeklyAggregateResponse `json:"aggregate,omitempty"`
}

type MonthlyAggregationResponse struct {
	Outcome   string                    `json:"outcome" example:"cached"`
	Aggregate *MonthlyAggregateResponse `json:"aggregate,omitempty"`
}

type AggregationRunResponse struct {
	RunID         string `json:"run_id"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
	WeeklyCount   int    `json:"weekly_count"`
	MonthlyCount  int    `json:"monthly_count"`
	WeeklyFailed  int    `json:"weekly_failed"`
	MonthlyFailed int    `json:"monthly_failed"`
}

// ------------------------------------------------------------
// COMPARISON
// ------------------------------------------------------------

type FieldChangeResponse struct {
	Current        float64 `json:"current"`
	Previous       float64 `json:"previous"`
	AbsoluteChange float64 `json:"absolute_change"`
	PercentChange  float64 `json:"percent_change"`
	Direction      string  `json:"direction" example:"up"`
}

type RankedChangeResponse struct {
	Metric    string  `json:"metric" example:"sessions"`
	ChangePct float64 `json:"change_pct"`
	ChangeAbs float64 `json:"change_abs"`
}

type ComparisonResponse struct {
	Period1      PeriodResponse                 `json:"period1"`
	Period2      PeriodResponse                 `json:"period2"`
	MetricName   string                         `json:"metric_name,omitempty"`
	DataScope    string                         `json:"data_scope"`
	Current      map[string]float64             `json:"current"`
	Previous     map[string]float64             `json:"previous"`
	Changes      map[string]FieldChangeResponse `json:"changes"`
	Improvements []RankedChangeResponse         `json:"improvements"`
	Regressions  []RankedChangeResponse         `json:"regressions"`
}

func summaryValues(p domain.PeriodSummary) map[string]float64 {
	out := map[string]float64{}
	for _, fv := range p.Values() {
		out[string(fv.Field)] = fv.Value
	}
	return out
}

func ranked(list []domain.RankedChange) []RankedChangeResponse {
	out := make([]RankedChangeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, RankedChangeResponse{Metric: string(r.Field), ChangePct: r.PercentChange, ChangeAbs: r.AbsoluteChange})
	}
	return out
}

func toComparison(c *domain.ComparisonResult) ComparisonResponse {
	out := ComparisonResponse{
		Period1:      toPeriod(c.Current.Range),
		Period2:      toPeriod(c.Previous.Range),
		MetricName:   c.MetricName,
		DataScope:    string(c.Scope),
		Current:      summaryValues(c.Current),
		Previous:     summaryValues(c.Previous),
		Changes:      make(map[string]FieldChangeResponse, len(c.Changes)),
		Improvements: ranked(c.Improvements),
		Regressions:  ranked(c.Regressions),
	}
	for _, ch := range c.Changes {
		out.Changes[string(ch.Field)] = FieldChangeResponse{
			Current:        ch.Current,
			Previous:       ch.Previous,
			AbsoluteChange: ch.AbsoluteChange,
			PercentChange:  ch.PercentChange,
			Direction:      string(ch.Direction),
		}
	}
	return out
}

// ------------------------------------------------------------
// TREND
// ------------------------------------------------------------

type TotalsResponse struct {
	Total         int64   `json:"total"`
	AveragePerDay float64 `json:"average_per_day"`
}

type SessionTotalsResponse struct {
	TotalsResponse
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type FrustrationResponse struct {
	DeadClicks int64   `json:"dead_clicks"`
	RageClicks int64   `json:"rage_clicks"`
	QuickBacks int64   `json:"quick_backs"`
	Total      int64   `json:"total"`
	PerSession float64 `json:"per_session"`
}

type OverallResponse struct {
	Sessions    SessionTotalsResponse `json:"sessions"`
	Users       TotalsResponse        `json:"users"`
	PageViews   TotalsResponse        `json:"page_views"`
	Frustration FrustrationResponse   `json:"frustration"`
}

// Sub-analyses without enough points carry only "note".
type GrowthResponse struct {
	Note                string   `json:"note,omitempty"`
	TotalGrowth         *float64 `json:"total_growth,omitempty"`
	CAGR                *float64 `json:"cagr,omitempty"`
	AvgDailyGrowth      *float64 `json:"avg_daily_growth,omitempty"`
	FirstPeriodSessions *int64   `json:"first_period_sessions,omitempty"`
	LastPeriodSessions  *int64   `json:"last_period_sessions,omitempty"`
	AbsoluteChange      *int64   `json:"absolute_change,omitempty"`
}

type VolatilityResponse struct {
	Note                   string   `json:"note,omitempty"`
	Mean                   *float64 `json:"mean,omitempty"`
	StdDev                 *float64 `json:"std_dev,omitempty"`
	Variance               *float64 `json:"variance,omitempty"`
	CoefficientOfVariation *float64 `json:"coefficient_of_variation,omitempty"`
	Stability              string   `json:"stability,omitempty"`
}

type TrendLineResponse struct {
	Note      string   `json:"note,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Slope     *float64 `json:"slope,omitempty"`
	Intercept *float64 `json:"intercept,omitempty"`
	RSquared  *float64 `json:"r_squared,omitempty"`
	Strength  string   `json:"strength,omitempty"`
}

type PatternResponse struct {
	Note                  string   `json:"note,omitempty"`
	PeaksCount            int      `json:"peaks_count"`
	ValleysCount          int      `json:"valleys_count"`
	Peaks                 []int    `json:"peaks,omitempty"`
	Valleys               []int    `json:"valleys,omitempty"`
	AvgPeakDistance       *float64 `json:"avg_peak_distance,omitempty"`
	AvgValleyDistance     *float64 `json:"avg_valley_distance,omitempty"`
	WeeklyPatternDetected bool     `json:"weekly_pattern_detected"`
	Cyclical              bool     `json:"cyclical"`
}

type TrendResponse struct {
	Period     PeriodResponse     `json:"period"`
	DataPoints int                `json:"data_points"`
	MetricName string             `json:"metric_name"`
	DataScope  string             `json:"data_scope"`
	Overall    OverallResponse    `json:"overall"`
	Growth     GrowthResponse     `json:"growth"`
	Volatility VolatilityResponse `json:"volatility"`
	Trends     TrendLineResponse  `json:"trends"`
	Patterns   PatternResponse    `json:"patterns"`
}

func ptr[T any](v T) *T { return &v }

func toTrend(a *domain.TrendAnalysis) TrendResponse {
	o := a.Overall
	out := TrendResponse{
		Period:     toPeriod(a.Range),
		DataPoints: a.DataPoints,
		MetricName: a.MetricName,
		DataScope:  string(a.Scope),
		Overall: OverallResponse{
			Sessions: SessionTotalsResponse{
				TotalsResponse: TotalsResponse{Total: o.Sessions.Total, AveragePerDay: o.Sessions.AveragePerDay},
				Min:            o.Sessions.Min,
				Max:            o.Sessions.Max,
			},
			Users:     TotalsResponse{Total: o.Users.Total, AveragePerDay: o.Users.AveragePerDay},
			PageViews: TotalsResponse{Total: o.PageViews.Total, AveragePerDay: o.PageViews.AveragePerDay},
			Frustration: FrustrationResponse{
				DeadClicks: o.Frustration.DeadClicks,
				RageClicks: o.Frustration.RageClicks,
				QuickBacks: o.Frustration.QuickBacks,
				Total:      o.Frustration.Total,
				PerSession: o.Frustration.PerSession,
			},
		},
	}

	if g := a.Growth; g.Sufficient {
		out.Growth = GrowthResponse{
			TotalGrowth:         ptr(g.TotalGrowth),
			CAGR:                g.CAGR,
			AvgDailyGrowth:      ptr(g.AvgDailyGrowth),
			FirstPeriodSessions: ptr(g.FirstPeriodSessions),
			LastPeriodSessions:  ptr(g.LastPeriodSessions),
			AbsoluteChange:      ptr(g.AbsoluteChange),
		}
	} else {
		out.Growth.Note = g.Note
	}

	if v := a.Volatility; v.Sufficient {
		out.Volatility = VolatilityResponse{
			Mean:                   ptr(v.Mean),
			StdDev:                 ptr(v.StdDev),
			Variance:               ptr(v.Variance),
			CoefficientOfVariation: ptr(v.CoefficientOfVariation),
			Stability:              string(v.Stability),
		}
	} else {
		out.Volatility.Note = v.Note
	}

	if t := a.Trend; t.Sufficient {
		out.Trends = TrendLineResponse{
			Direction: string(t.Direction),
			Slope:     ptr(t.Slope),
			Intercept: ptr(t.Intercept),
			RSquared:  ptr(t.RSquared),
			Strength:  string(t.Strength),
		}
	} else {
		out.Trends.Note = t.Note
	}

	if p := a.Patterns; p.Sufficient {
		out.Patterns = PatternResponse{
			PeaksCount:            len(p.Peaks),
			ValleysCount:          len(p.Valleys),
			Peaks:                 p.Peaks,
			Valleys:               p.Valleys,
			AvgPeakDistance:       p.AvgPeakDistance,
			AvgValleyDistance:     p.AvgValleyDistance,
			WeeklyPatternDetected: p.WeeklyPatternDetected,
			Cyclical:              p.Cyclical,
		}
	} else {
		out.Patterns.Note = p.Note
	}
	return out
}

// ------------------------------------------------------------
// ALERTS
// ------------------------------------------------------------

type FrustrationAlertResponse struct {
	Period      PeriodResponse      `json:"period"`
	MetricName  string              `json:"metric_name"`
	DataScope   string              `json:"data_scope"`
	Sessions    int64               `json:"sessions"`
	Frustration FrustrationResponse `json:"frustration"`
	Percentage  float64             `json:"percentage" example:"25.0"`
	Threshold   float64             `json:"threshold" example:"20.0"`
	Triggered   bool                `json:"triggered"`
}
