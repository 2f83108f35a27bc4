package domain

import (
	"encoding/json"
	"time"

	"ux-metrics-service/internal/daterange"
)

type Scope string

const (
	ScopeGeneral Scope = "general"
	ScopePage    Scope = "page"
)

func (s Scope) Valid() bool {
	return s == ScopeGeneral || s == ScopePage
}

type Dimension struct {
	Name  string
	Value string
}

// DailyMetric is a read-only view of one daily_metrics row. Absent optional
// numbers read back as zero.
type DailyMetric struct {
	MetricDate time.Time
	MetricName string
	Scope      Scope
	PageID     string // "" when scope is general
	Dimensions [3]Dimension

	Sessions        int64
	Users           int64
	BotSessions     int64
	PageViews       int64
	PagesPerSession float64

	MobileSessions  int64
	DesktopSessions int64
	TabletSessions  int64

	DeadClicks       int64
	RageClicks       int64
	QuickBacks       int64
	ErrorClicks      int64
	ScriptErrors     int64
	ExcessiveScrolls int64

	ScrollDepth    float64
	EngagementTime float64
	ActiveTime     float64

	RawPayload json.RawMessage
}

// MetricStats is the SQL aggregate over a filtered set of daily rows. All
// fields are zero when DataPoints == 0.
type MetricStats struct {
	DataPoints        int64
	AvgSessions       float64
	SumSessions       int64
	MinSessions       int64
	MaxSessions       int64
	AvgUsers          float64
	SumUsers          int64
	AvgDeadClicks     float64
	AvgRageClicks     float64
	AvgQuickBacks     float64
	AvgScrollDepth    float64
	AvgEngagementTime float64
}

// MetricSummary is MetricStats bound to the filter that produced it.
type MetricSummary struct {
	Range      daterange.DateRange
	MetricName string
	Scope      Scope
	PageID     string
	MetricStats
}

// DailyBounds describes the extent of stored daily data.
type DailyBounds struct {
	Rows    int64
	Days    int64
	MinDate time.Time
	MaxDate time.Time
	HasData bool
}
