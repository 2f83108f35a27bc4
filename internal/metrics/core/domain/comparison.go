package domain

import "ux-metrics-service/internal/daterange"

// Field names are part of the JSON contract and are matched verbatim by
// report consumers.
type Field string

const (
	FieldSessions        Field = "sessions"
	FieldUsers           Field = "users"
	FieldPageViews       Field = "page_views"
	FieldMobileSessions  Field = "mobile_sessions"
	FieldDesktopSessions Field = "desktop_sessions"
	FieldTabletSessions  Field = "tablet_sessions"
	FieldDeadClicks      Field = "dead_clicks"
	FieldRageClicks      Field = "rage_clicks"
	FieldQuickBacks      Field = "quick_backs"
	FieldErrorClicks     Field = "error_clicks"
	FieldAvgScrollDepth  Field = "avg_scroll_depth"
	FieldAvgTimeOnPage   Field = "avg_time_on_page"
	FieldAvgActiveTime   Field = "avg_active_time"
	FieldDeadClicksRate  Field = "dead_clicks_rate"
	FieldRageClicksRate  Field = "rage_clicks_rate"
	FieldQuickBacksRate  Field = "quick_backs_rate"
	FieldErrorClicksRate Field = "error_clicks_rate"
)

// Polarity says whether growth in a field is good news, bad news or neither.
type Polarity int

const (
	Neutral Polarity = iota
	HigherIsBetter
	HigherIsWorse
)

var fieldPolarity = map[Field]Polarity{
	FieldSessions:        HigherIsBetter,
	FieldUsers:           HigherIsBetter,
	FieldPageViews:       HigherIsBetter,
	FieldAvgScrollDepth:  HigherIsBetter,
	FieldAvgTimeOnPage:   HigherIsBetter,
	FieldAvgActiveTime:   HigherIsBetter,
	FieldDeadClicks:      HigherIsWorse,
	FieldRageClicks:      HigherIsWorse,
	FieldQuickBacks:      HigherIsWorse,
	FieldErrorClicks:     HigherIsWorse,
	FieldDeadClicksRate:  HigherIsWorse,
	FieldRageClicksRate:  HigherIsWorse,
	FieldQuickBacksRate:  HigherIsWorse,
	FieldErrorClicksRate: HigherIsWorse,
}

// Polarity of a field; device breakdowns are Neutral.
func (f Field) Polarity() Polarity {
	return fieldPolarity[f]
}

// PeriodSummary reduces one period's daily rows to scalars: counts are summed,
// engagement figures are session-weighted averages and rates are per session.
type PeriodSummary struct {
	Range daterange.DateRange
	Rows  int

	Sessions        int64
	Users           int64
	PageViews       int64
	MobileSessions  int64
	DesktopSessions int64
	TabletSessions  int64
	DeadClicks      int64
	RageClicks      int64
	QuickBacks      int64
	ErrorClicks     int64

	AvgScrollDepth float64
	AvgTimeOnPage  float64
	AvgActiveTime  float64

	DeadClicksRate  float64
	RageClicksRate  float64
	QuickBacksRate  float64
	ErrorClicksRate float64
}

type FieldValue struct {
	Field Field
	Value float64
}

// Values lists the fields the summary defines, in a fixed order. A period
// without rows defines nothing; weighted averages and rates need sessions.
func (p PeriodSummary) Values() []FieldValue {
	if p.Rows == 0 {
		return nil
	}

	out := []FieldValue{
		{FieldSessions, float64(p.Sessions)},
		{FieldUsers, float64(p.Users)},
		{FieldPageViews, float64(p.PageViews)},
		{FieldMobileSessions, float64(p.MobileSessions)},
		{FieldDesktopSessions, float64(p.DesktopSessions)},
		{FieldTabletSessions, float64(p.TabletSessions)},
		{FieldDeadClicks, float64(p.DeadClicks)},
		{FieldRageClicks, float64(p.RageClicks)},
		{FieldQuickBacks, float64(p.QuickBacks)},
		{FieldErrorClicks, float64(p.ErrorClicks)},
	}
	if p.Sessions > 0 {
		out = append(out,
			FieldValue{FieldAvgScrollDepth, p.AvgScrollDepth},
			FieldValue{FieldAvgTimeOnPage, p.AvgTimeOnPage},
			FieldValue{FieldAvgActiveTime, p.AvgActiveTime},
			FieldValue{FieldDeadClicksRate, p.DeadClicksRate},
			FieldValue{FieldRageClicksRate, p.RageClicksRate},
			FieldValue{FieldQuickBacksRate, p.QuickBacksRate},
			FieldValue{FieldErrorClicksRate, p.ErrorClicksRate},
		)
	}
	return out
}

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

type FieldChange struct {
	Field          Field
	Current        float64
	Previous       float64
	AbsoluteChange float64
	PercentChange  float64
	Direction      Direction
}

// RankedChange is an entry of the improvements or regressions list.
type RankedChange struct {
	Field          Field
	PercentChange  float64
	AbsoluteChange float64
}

type ComparisonResult struct {
	MetricName   string // "" means all metrics
	Scope        Scope
	Current      PeriodSummary
	Previous     PeriodSummary
	Changes      []FieldChange
	Improvements []RankedChange
	Regressions  []RankedChange
}

// Change looks up the change entry for f.
func (c ComparisonResult) Change(f Field) (FieldChange, bool) {
	for _, ch := range c.Changes {
		if ch.Field == f {
			return ch, true
		}
	}
	return FieldChange{}, false
}
