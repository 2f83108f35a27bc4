package fiber

import "encoding/json"

// CreateDailyMetricRequest represents one daily metric row
// @Description Daily metric ingestion DTO
type CreateDailyMetricRequest struct {
	MetricDate string         `json:"metric_date" example:"2025-11-24"`
	MetricName string         `json:"metric_name" example:"Traffic"`
	DataScope  string         `json:"data_scope" example:"general"`
	PageID     string         `json:"page_id,omitempty"`
	Dimensions []DimensionDTO `json:"dimensions,omitempty"`

	Sessions        int64    `json:"sessions"`
	Users           int64    `json:"users"`
	BotSessions     int64    `json:"bot_sessions"`
	PageViews       int64    `json:"page_views"`
	PagesPerSession *float64 `json:"pages_per_session,omitempty"`

	MobileSessions  int64 `json:"mobile_sessions"`
	DesktopSessions int64 `json:"desktop_sessions"`
	TabletSessions  int64 `json:"tablet_sessions"`

	DeadClicks       int64 `json:"dead_clicks"`
	RageClicks       int64 `json:"rage_clicks"`
	QuickBacks       int64 `json:"quick_backs"`
	ErrorClicks      int64 `json:"error_clicks"`
	ScriptErrors     int64 `json:"script_errors"`
	ExcessiveScrolls int64 `json:"excessive_scrolls"`

	ScrollDepth    *float64 `json:"scroll_depth,omitempty"`
	EngagementTime *float64 `json:"engagement_time,omitempty"`
	ActiveTime     *float64 `json:"active_time,omitempty"`

	RawPayload json.RawMessage `json:"raw_payload,omitempty" swaggertype:"object"`
}

type DimensionDTO struct {
	Name  string `json:"name" example:"Device"`
	Value string `json:"value" example:"Mobile"`
}

type CreateDailyMetricResponse struct {
	Status string `json:"status" example:"created"`
}

type BulkCreateDailyMetricsRequest struct {
	Metrics []CreateDailyMetricRequest `json:"metrics"`
}

type BulkCreateDailyMetricsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_daily_metric"`
	Message string `json:"message,omitempty" example:"metric_name is required"`
}
