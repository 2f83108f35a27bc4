package sqlstore

import (
	"context"
	"fmt"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

// AggregateRepository implements AggregateStorePort over weekly_metrics and
// monthly_metrics.
type AggregateRepository struct {
	db DB
}

func NewAggregateRepository(db DB) *AggregateRepository {
	return &AggregateRepository{db: db}
}

// ------------------------------------------------------------
// WEEKLY
// ------------------------------------------------------------

func (r *AggregateRepository) FindWeekly(ctx context.Context, k ports.WeeklyKey) (*domain.WeeklyAggregate, error) {
	query := `
SELECT
    week_start, week_end, year, week_number, metric_name, data_scope, page_id,
    data_points, avg_sessions, sum_sessions, avg_users, sum_users,
    avg_dead_clicks, avg_rage_clicks, avg_quick_backs,
    avg_scroll_depth, avg_engagement_time, computed_at
FROM weekly_metrics
WHERE week_start = ? AND week_end = ? AND metric_name = ? AND data_scope = ? AND page_id = ?`

	rows, err := r.db.QueryContext(ctx, query,
		k.WeekStart.Format(daterange.DateLayout),
		k.WeekEnd.Format(daterange.DateLayout),
		k.MetricName, string(k.Scope), k.PageID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read weekly aggregate: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read weekly aggregate: %w", err)
		}
		return nil, nil
	}

	var (
		a                      domain.WeeklyAggregate
		start, end, computedAt any
		scope                  string
	)
	if err := rows.Scan(
		&start, &end, &a.Year, &a.Week, &a.MetricName, &scope, &a.PageID,
		&a.DataPoints, &a.AvgSessions, &a.SumSessions, &a.AvgUsers, &a.SumUsers,
		&a.AvgDeadClicks, &a.AvgRageClicks, &a.AvgQuickBacks,
		&a.AvgScrollDepth, &a.AvgEngagementTime, &computedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan weekly aggregate: %w", err)
	}
	a.Scope = domain.Scope(scope)

	if a.WeekStart, _, err = toDay(start); err != nil {
		return nil, err
	}
	if a.WeekEnd, _, err = toDay(end); err != nil {
		return nil, err
	}
	if a.ComputedAt, _, err = toTime(computedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertWeekly replaces any row with the same key.
func (r *AggregateRepository) UpsertWeekly(ctx context.Context, a *domain.WeeklyAggregate) error {
	query := `
INSERT INTO weekly_metrics (
    week_start, week_end, year, week_number, metric_name, data_scope, page_id,
    data_points, avg_sessions, sum_sessions, avg_users, sum_users,
    avg_dead_clicks, avg_rage_clicks, avg_quick_backs,
    avg_scroll_depth, avg_engagement_time, computed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (week_start, week_end, metric_name, data_scope, page_id) DO UPDATE SET
    year = excluded.year,
    week_number = excluded.week_number,
    data_points = excluded.data_points,
    avg_sessions = excluded.avg_sessions,
    sum_sessions = excluded.sum_sessions,
    avg_users = excluded.avg_users,
    sum_users = excluded.sum_users,
    avg_dead_clicks = excluded.avg_dead_clicks,
    avg_rage_clicks = excluded.avg_rage_clicks,
    avg_quick_backs = excluded.avg_quick_backs,
    avg_scroll_depth = excluded.avg_scroll_depth,
    avg_engagement_time = excluded.avg_engagement_time,
    computed_at = excluded.computed_at`

	_, err := r.db.ExecContext(ctx, query,
		a.WeekStart.Format(daterange.DateLayout),
		a.WeekEnd.Format(daterange.DateLayout),
		a.Year, a.Week, a.MetricName, string(a.Scope), a.PageID,
		a.DataPoints, a.AvgSessions, a.SumSessions, a.AvgUsers, a.SumUsers,
		a.AvgDeadClicks, a.AvgRageClicks, a.AvgQuickBacks,
		a.AvgScrollDepth, a.AvgEngagementTime, computedAt(a.ComputedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert weekly aggregate: %w", err)
	}
	return nil
}

// ------------------------------------------------------------
// MONTHLY
// ------------------------------------------------------------

func (r *AggregateRepository) FindMonthly(ctx context.Context, k ports.MonthlyKey) (*domain.MonthlyAggregate, error) {
	query := `
SELECT
    year, month, month_start, month_end, metric_name, data_scope, page_id,
    data_points, avg_sessions, sum_sessions, min_sessions, max_sessions,
    avg_users, sum_users, avg_dead_clicks, avg_rage_clicks, avg_quick_backs,
    avg_scroll_depth, avg_engagement_time, computed_at
FROM monthly_metrics
WHERE year = ? AND month = ? AND metric_name = ? AND data_scope = ? AND page_id = ?`

	rows, err := r.db.QueryContext(ctx, query, k.Year, int(k.Month), k.MetricName, string(k.Scope), k.PageID)
	if err != nil {
		return nil, fmt.Errorf("failed to read monthly aggregate: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read monthly aggregate: %w", err)
		}
		return nil, nil
	}

	var (
		a                      domain.MonthlyAggregate
		month                  int
		start, end, computedAt any
		scope                  string
	)
	if err := rows.Scan(
		&a.Year, &month, &start, &end, &a.MetricName, &scope, &a.PageID,
		&a.DataPoints, &a.AvgSessions, &a.SumSessions, &a.MinSessions, &a.MaxSessions,
		&a.AvgUsers, &a.SumUsers, &a.AvgDeadClicks, &a.AvgRageClicks, &a.AvgQuickBacks,
		&a.AvgScrollDepth, &a.AvgEngagementTime, &computedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan monthly aggregate: %w", err)
	}
	a.Month = time.Month(month)
	a.Scope = domain.Scope(scope)

	if a.MonthStart, _, err = toDay(start); err != nil {
		return nil, err
	}
	if a.MonthEnd, _, err = toDay(end); err != nil {
		return nil, err
	}
	if a.ComputedAt, _, err = toTime(computedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertMonthly replaces any row with the same key.
func (r *AggregateRepository) UpsertMonthly(ctx context.Context, a *domain.MonthlyAggregate) error {
	query := `
INSERT INTO monthly_metrics (
    year, month, month_start, month_end, metric_name, data_scope, page_id,
    data_points, avg_sessions, sum_sessions, min_sessions, max_sessions,
    avg_users, sum_users, avg_dead_clicks, avg_rage_clicks, avg_quick_backs,
    avg_scroll_depth, avg_engagement_time, computed_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (year, month, metric_name, data_scope, page_id) DO UPDATE SET
    month_start = excluded.month_start,
    month_end = excluded.month_end,
    data_points = excluded.data_points,
    avg_sessions = excluded.avg_sessions,
    sum_sessions = excluded.sum_sessions,
    min_sessions = excluded.min_sessions,
    max_sessions = excluded.max_sessions,
    avg_users = excluded.avg_users,
    sum_users = excluded.sum_users,
    avg_dead_clicks = excluded.avg_dead_clicks,
    avg_rage_clicks = excluded.avg_rage_clicks,
    avg_quick_backs = excluded.avg_quick_backs,
    avg_scroll_depth = excluded.avg_scroll_depth,
    avg_engagement_time = excluded.avg_engagement_time,
    computed_at = excluded.computed_at`

	_, err := r.db.ExecContext(ctx, query,
		a.Year, int(a.Month),
		a.MonthStart.Format(daterange.DateLayout),
		a.MonthEnd.Format(daterange.DateLayout),
		a.MetricName, string(a.Scope), a.PageID,
		a.DataPoints, a.AvgSessions, a.SumSessions, a.MinSessions, a.MaxSessions,
		a.AvgUsers, a.SumUsers, a.AvgDeadClicks, a.AvgRageClicks, a.AvgQuickBacks,
		a.AvgScrollDepth, a.AvgEngagementTime, computedAt(a.ComputedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly aggregate: %w", err)
	}
	return nil
}

// computedAt is written as RFC 3339 text so both drivers read it back alike.
func computedAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}
