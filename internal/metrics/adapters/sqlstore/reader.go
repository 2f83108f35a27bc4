package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

const dailyColumns = `
    metric_date, metric_name, data_scope, page_id,
    dimension1_name, dimension1_value,
    dimension2_name, dimension2_value,
    dimension3_name, dimension3_value,
    sessions, users, bot_sessions, page_views, COALESCE(pages_per_session, 0),
    mobile_sessions, desktop_sessions, tablet_sessions,
    dead_clicks, rage_clicks, quick_backs, error_clicks, script_errors, excessive_scrolls,
    COALESCE(scroll_depth, 0), COALESCE(engagement_time, 0), COALESCE(active_time, 0),
    raw_payload`

// MetricsReader serves MetricsReaderPort from the daily_metrics table.
type MetricsReader struct {
	db DB
}

func NewMetricsReader(db DB) *MetricsReader {
	return &MetricsReader{db: db}
}

// where builds the AND-combined filter. Dimension value is only applied
// together with the dimension name.
func where(f ports.MetricsFilter) (string, []any) {
	clauses := []string{"metric_date BETWEEN ? AND ?", "data_scope = ?"}
	args := []any{f.Range.StartString(), f.Range.EndString(), string(f.Scope)}

	if f.MetricName != nil {
		clauses = append(clauses, "metric_name = ?")
		args = append(args, *f.MetricName)
	}
	if f.PageID != nil {
		clauses = append(clauses, "page_id = ?")
		args = append(args, *f.PageID)
	}
	if f.Dimension1Name != nil {
		clauses = append(clauses, "dimension1_name = ?")
		args = append(args, *f.Dimension1Name)
		if f.Dimension1Value != nil {
			clauses = append(clauses, "dimension1_value = ?")
			args = append(args, *f.Dimension1Value)
		}
	}
	return strings.Join(clauses, " AND "), args
}

func (r *MetricsReader) QueryMetrics(ctx context.Context, f ports.MetricsFilter) ([]domain.DailyMetric, error) {
	w, args := where(f)
	query := `
SELECT` + dailyColumns + `
FROM daily_metrics
WHERE ` + w + `
ORDER BY metric_date DESC, metric_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily metrics: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyMetric
	for rows.Next() {
		var (
			m     domain.DailyMetric
			date  any
			scope string
			raw   []byte
		)
		if err := rows.Scan(
			&date, &m.MetricName, &scope, &m.PageID,
			&m.Dimensions[0].Name, &m.Dimensions[0].Value,
			&m.Dimensions[1].Name, &m.Dimensions[1].Value,
			&m.Dimensions[2].Name, &m.Dimensions[2].Value,
			&m.Sessions, &m.Users, &m.BotSessions, &m.PageViews, &m.PagesPerSession,
			&m.MobileSessions, &m.DesktopSessions, &m.TabletSessions,
			&m.DeadClicks, &m.RageClicks, &m.QuickBacks, &m.ErrorClicks, &m.ScriptErrors, &m.ExcessiveScrolls,
			&m.ScrollDepth, &m.EngagementTime, &m.ActiveTime,
			&raw,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily metric: %w", err)
		}

		if m.MetricDate, _, err = toDay(date); err != nil {
			return nil, fmt.Errorf("failed to read metric_date: %w", err)
		}
		m.Scope = domain.Scope(scope)
		if len(raw) > 0 {
			m.RawPayload = json.RawMessage(raw)
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily metrics: %w", err)
	}
	return out, nil
}

func (r *MetricsReader) AggregateMetrics(ctx context.Context, f ports.MetricsFilter) (domain.MetricStats, error) {
	w, args := where(f)
	query := `
SELECT
    COUNT(*),
    COALESCE(AVG(sessions), 0),
    COALESCE(SUM(sessions), 0),
    COALESCE(MIN(sessions), 0),
    COALESCE(MAX(sessions), 0),
    COALESCE(AVG(users), 0),
    COALESCE(SUM(users), 0),
    COALESCE(AVG(dead_clicks), 0),
    COALESCE(AVG(rage_clicks), 0),
    COALESCE(AVG(quick_backs), 0),
    COALESCE(AVG(scroll_depth), 0),
    COALESCE(AVG(engagement_time), 0)
FROM daily_metrics
WHERE ` + w

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.MetricStats{}, fmt.Errorf("failed to aggregate daily metrics: %w", err)
	}
	defer rows.Close()

	var s domain.MetricStats
	if rows.Next() {
		if err := rows.Scan(
			&s.DataPoints,
			&s.AvgSessions, &s.SumSessions, &s.MinSessions, &s.MaxSessions,
			&s.AvgUsers, &s.SumUsers,
			&s.AvgDeadClicks, &s.AvgRageClicks, &s.AvgQuickBacks,
			&s.AvgScrollDepth, &s.AvgEngagementTime,
		); err != nil {
			return domain.MetricStats{}, fmt.Errorf("failed to scan aggregate: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return domain.MetricStats{}, fmt.Errorf("failed to aggregate daily metrics: %w", err)
	}
	return s, nil
}

func (r *MetricsReader) AvailableDates(ctx context.Context, scope domain.Scope) ([]time.Time, error) {
	query := `
SELECT DISTINCT metric_date
FROM daily_metrics
WHERE data_scope = ?
ORDER BY metric_date DESC`

	rows, err := r.db.QueryContext(ctx, query, string(scope))
	if err != nil {
		return nil, fmt.Errorf("failed to list available dates: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		d, ok, err := toDay(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list available dates: %w", err)
	}
	return out, nil
}

func (r *MetricsReader) DailyBounds(ctx context.Context) (domain.DailyBounds, error) {
	query := `
SELECT COUNT(*), COUNT(DISTINCT metric_date), MIN(metric_date), MAX(metric_date)
FROM daily_metrics`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return domain.DailyBounds{}, fmt.Errorf("failed to read daily bounds: %w", err)
	}
	defer rows.Close()

	var b domain.DailyBounds
	if rows.Next() {
		var minV, maxV any
		if err := rows.Scan(&b.Rows, &b.Days, &minV, &maxV); err != nil {
			return domain.DailyBounds{}, fmt.Errorf("failed to scan daily bounds: %w", err)
		}
		if b.MinDate, b.HasData, err = toDay(minV); err != nil {
			return domain.DailyBounds{}, err
		}
		if b.MaxDate, _, err = toDay(maxV); err != nil {
			return domain.DailyBounds{}, err
		}
	}

	if err := rows.Err(); err != nil {
		return domain.DailyBounds{}, fmt.Errorf("failed to read daily bounds: %w", err)
	}
	return b, nil
}
