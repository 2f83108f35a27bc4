package ports

import (
	"context"
	"time"

	"ux-metrics-service/internal/metrics/core/domain"
)

type WeeklyKey struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	MetricName string
	Scope      domain.Scope
	PageID     string
}

type MonthlyKey struct {
	Year       int
	Month      time.Month
	MetricName string
	Scope      domain.Scope
	PageID     string
}

// AggregateStorePort persists the weekly/monthly caches. Find* return
// (nil, nil) when no row has the exact key. Upsert* replace any existing row
// with the same key (last write wins).
type AggregateStorePort interface {
	FindWeekly(ctx context.Context, k WeeklyKey) (*domain.WeeklyAggregate, error)
	UpsertWeekly(ctx context.Context, a *domain.WeeklyAggregate) error

	FindMonthly(ctx context.Context, k MonthlyKey) (*domain.MonthlyAggregate, error)
	UpsertMonthly(ctx context.Context, a *domain.MonthlyAggregate) error
}
