package ports

import (
	"context"

	"ux-metrics-service/internal/ingest/core/domain"
)

type DailyMetricRepositoryPort interface {
	// InsertDailyMetric:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> duplicate key, existing row untouched
	//   created = false, err != nil -> DB error
	InsertDailyMetric(ctx context.Context, m *domain.DailyMetric) (created bool, err error)

	// InsertDailyMetrics writes the whole batch in one transaction.
	InsertDailyMetrics(ctx context.Context, ms []*domain.DailyMetric) (created, duplicates int, err error)
}
