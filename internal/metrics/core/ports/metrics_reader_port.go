package ports

import (
	"context"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
)

type MetricsFilter struct {
	Range           daterange.DateRange
	Scope           domain.Scope
	MetricName      *string // optional
	PageID          *string // optional
	Dimension1Name  *string // optional
	Dimension1Value *string // only valid together with Dimension1Name
}

type MetricsReaderPort interface {
	// QueryMetrics returns matching daily rows ordered by date desc, then metric name.
	QueryMetrics(ctx context.Context, f MetricsFilter) ([]domain.DailyMetric, error)

	// AggregateMetrics computes MetricStats in a single query. No rows -> zero stats.
	AggregateMetrics(ctx context.Context, f MetricsFilter) (domain.MetricStats, error)

	// AvailableDates lists distinct metric dates for scope, newest first.
	AvailableDates(ctx context.Context, scope domain.Scope) ([]time.Time, error)

	// DailyBounds reports row count and min/max date over all daily data.
	DailyBounds(ctx context.Context) (domain.DailyBounds, error)
}
