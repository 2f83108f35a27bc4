package domain

import (
	"encoding/json"
	"time"
)

type Scope string

const (
	ScopeGeneral Scope = "general"
	ScopePage    Scope = "page"
)

// Dimension is an optional (name, value) breakdown key, e.g. ("Device", "Mobile").
type Dimension struct {
	Name  string
	Value string
}

// DailyMetric is one stored row of daily_metrics. The uniqueness key is
// (MetricDate, MetricName, Scope, PageID, Dimensions).
type DailyMetric struct {
	MetricDate time.Time
	MetricName string
	Scope      Scope
	PageID     string // required iff Scope == ScopePage
	Dimensions [3]Dimension

	Sessions        int64
	Users           int64
	BotSessions     int64
	PageViews       int64
	PagesPerSession *float64

	MobileSessions  int64
	DesktopSessions int64
	TabletSessions  int64

	DeadClicks       int64
	RageClicks       int64
	QuickBacks       int64
	ErrorClicks      int64
	ScriptErrors     int64
	ExcessiveScrolls int64

	ScrollDepth    *float64
	EngagementTime *float64
	ActiveTime     *float64

	RawPayload json.RawMessage // vendor response, audit only
}
