package sqlstore

import (
	"context"
	"fmt"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/ingest/core/domain"
	"ux-metrics-service/internal/ingest/core/ports"
)

type DailyMetricRepository struct {
	db DB
}

func NewDailyMetricRepository(db DB) *DailyMetricRepository {
	return &DailyMetricRepository{db: db}
}

var _ ports.DailyMetricRepositoryPort = (*DailyMetricRepository)(nil)

// Duplicate keys are dropped, never overwritten.
const insertDailyMetricSQL = `
INSERT INTO daily_metrics (
    metric_date, metric_name, data_scope, page_id,
    dimension1_name, dimension1_value,
    dimension2_name, dimension2_value,
    dimension3_name, dimension3_value,
    sessions, users, bot_sessions, page_views, pages_per_session,
    mobile_sessions, desktop_sessions, tablet_sessions,
    dead_clicks, rage_clicks, quick_backs,
    error_clicks, script_errors, excessive_scrolls,
    scroll_depth, engagement_time, active_time,
    raw_payload
) VALUES (
    ?, ?, ?, ?,
    ?, ?,
    ?, ?,
    ?, ?,
    ?, ?, ?, ?, ?,
    ?, ?, ?,
    ?, ?, ?,
    ?, ?, ?,
    ?, ?, ?,
    ?
)
ON CONFLICT DO NOTHING
`

func (r *DailyMetricRepository) InsertDailyMetric(ctx context.Context, m *domain.DailyMetric) (bool, error) {
	return insertOne(ctx, r.db, m)
}

func (r *DailyMetricRepository) InsertDailyMetrics(ctx context.Context, ms []*domain.DailyMetric) (int, int, error) {
	var created, duplicates int

	err := r.db.InTx(ctx, func(tx DB) error {
		created, duplicates = 0, 0
		for i, m := range ms {
			ok, err := insertOne(ctx, tx, m)
			if err != nil {
				return fmt.Errorf("failed to insert metrics[%d]: %w", i, err)
			}
			if ok {
				created++
			} else {
				duplicates++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, duplicates, nil
}

func insertOne(ctx context.Context, db DB, m *domain.DailyMetric) (bool, error) {
	var rawPayload any
	if len(m.RawPayload) > 0 {
		rawPayload = string(m.RawPayload)
	}

	res, err := db.ExecContext(ctx, insertDailyMetricSQL,
		m.MetricDate.Format(daterange.DateLayout),
		m.MetricName,
		string(m.Scope),
		m.PageID,
		m.Dimensions[0].Name, m.Dimensions[0].Value,
		m.Dimensions[1].Name, m.Dimensions[1].Value,
		m.Dimensions[2].Name, m.Dimensions[2].Value,
		m.Sessions,
		m.Users,
		m.BotSessions,
		m.PageViews,
		nullableFloat(m.PagesPerSession),
		m.MobileSessions,
		m.DesktopSessions,
		m.TabletSessions,
		m.DeadClicks,
		m.RageClicks,
		m.QuickBacks,
		m.ErrorClicks,
		m.ScriptErrors,
		m.ExcessiveScrolls,
		nullableFloat(m.ScrollDepth),
		nullableFloat(m.EngagementTime),
		nullableFloat(m.ActiveTime),
		rawPayload,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1 -> new record
	// rows == 0 -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func nullableFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
