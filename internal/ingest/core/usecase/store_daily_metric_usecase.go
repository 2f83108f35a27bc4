package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/ingest/core/domain"
	"ux-metrics-service/internal/ingest/core/ports"
)

var (
	ErrInvalidDailyMetric = errors.New("invalid daily metric")
	ErrFutureDate         = errors.New("metric_date cannot be in the future")
	ErrEmptyBatch         = errors.New("batch contains no metrics")
)

type StoreDailyMetricUseCase struct {
	repo ports.DailyMetricRepositoryPort
	now  func() time.Time
}

func NewStoreDailyMetricUseCase(repo ports.DailyMetricRepositoryPort) *StoreDailyMetricUseCase {
	return &StoreDailyMetricUseCase{repo: repo, now: time.Now}
}

// WithClock overrides the clock used for the future-date check.
func (uc *StoreDailyMetricUseCase) WithClock(now func() time.Time) *StoreDailyMetricUseCase {
	uc.now = now
	return uc
}

type DimensionInput struct {
	Name  string
	Value string
}

type StoreDailyMetricInput struct {
	MetricDate string // YYYY-MM-DD
	MetricName string
	Scope      string // "" -> general
	PageID     string
	Dimensions []DimensionInput // at most 3

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

	RawPayload json.RawMessage
}

// Execute validates a single record and stores it. A record whose key already
// exists is reported as created=false and the stored row is left as is.
func (uc *StoreDailyMetricUseCase) Execute(ctx context.Context, in StoreDailyMetricInput) (bool, error) {
	m, err := uc.toDomain(in)
	if err != nil {
		return false, err
	}

	created, err := uc.repo.InsertDailyMetric(ctx, m)
	if err != nil {
		return false, err
	}
	return created, nil
}

type BulkStoreDailyMetricsInput struct {
	Metrics []StoreDailyMetricInput
}

type BulkStoreDailyMetricsResult struct {
	Created    int
	Duplicates int
}

// BulkStore validates every item first; nothing is written unless the whole
// batch is valid.
func (uc *StoreDailyMetricUseCase) BulkStore(ctx context.Context, in BulkStoreDailyMetricsInput) (BulkStoreDailyMetricsResult, error) {
	var res BulkStoreDailyMetricsResult

	if len(in.Metrics) == 0 {
		return res, ErrEmptyBatch
	}

	batch := make([]*domain.DailyMetric, 0, len(in.Metrics))
	for i, item := range in.Metrics {
		m, err := uc.toDomain(item)
		if err != nil {
			return res, fmt.Errorf("metrics[%d]: %w", i, err)
		}
		batch = append(batch, m)
	}

	created, duplicates, err := uc.repo.InsertDailyMetrics(ctx, batch)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = duplicates
	return res, nil
}

func (uc *StoreDailyMetricUseCase) toDomain(in StoreDailyMetricInput) (*domain.DailyMetric, error) {
	if err := uc.validateInput(in); err != nil {
		return nil, err
	}

	date, _ := time.Parse(daterange.DateLayout, strings.TrimSpace(in.MetricDate))

	scope := normalizeScope(in.Scope)
	if scope == "" {
		scope = domain.ScopeGeneral
	}

	m := &domain.DailyMetric{
		MetricDate:       date,
		MetricName:       strings.TrimSpace(in.MetricName),
		Scope:            scope,
		PageID:           strings.TrimSpace(in.PageID),
		Sessions:         in.Sessions,
		Users:            in.Users,
		BotSessions:      in.BotSessions,
		PageViews:        in.PageViews,
		PagesPerSession:  in.PagesPerSession,
		MobileSessions:   in.MobileSessions,
		DesktopSessions:  in.DesktopSessions,
		TabletSessions:   in.TabletSessions,
		DeadClicks:       in.DeadClicks,
		RageClicks:       in.RageClicks,
		QuickBacks:       in.QuickBacks,
		ErrorClicks:      in.ErrorClicks,
		ScriptErrors:     in.ScriptErrors,
		ExcessiveScrolls: in.ExcessiveScrolls,
		ScrollDepth:      in.ScrollDepth,
		EngagementTime:   in.EngagementTime,
		ActiveTime:       in.ActiveTime,
		RawPayload:       in.RawPayload,
	}
	for i, d := range in.Dimensions {
		m.Dimensions[i] = domain.Dimension{
			Name:  strings.TrimSpace(d.Name),
			Value: strings.TrimSpace(d.Value),
		}
	}
	return m, nil
}

// normalizeScope matches the read side: surrounding space and case are ignored.
func normalizeScope(s string) domain.Scope {
	return domain.Scope(strings.ToLower(strings.TrimSpace(s)))
}

func (uc *StoreDailyMetricUseCase) validateInput(in StoreDailyMetricInput) error {
	if strings.TrimSpace(in.MetricName) == "" {
		return fmt.Errorf("%w: metric_name is required", ErrInvalidDailyMetric)
	}

	date, err := time.Parse(daterange.DateLayout, strings.TrimSpace(in.MetricDate))
	if err != nil {
		return fmt.Errorf("%w: metric_date must be YYYY-MM-DD", ErrInvalidDailyMetric)
	}
	if date.After(daterange.Day(uc.now())) {
		return ErrFutureDate
	}

	switch normalizeScope(in.Scope) {
	case "", domain.ScopeGeneral:
		if strings.TrimSpace(in.PageID) != "" {
			return fmt.Errorf("%w: page_id is only allowed with scope=page", ErrInvalidDailyMetric)
		}
	case domain.ScopePage:
		if strings.TrimSpace(in.PageID) == "" {
			return fmt.Errorf("%w: page_id is required with scope=page", ErrInvalidDailyMetric)
		}
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidDailyMetric, in.Scope)
	}

	if len(in.Dimensions) > 3 {
		return fmt.Errorf("%w: at most 3 dimensions", ErrInvalidDailyMetric)
	}
	for i, d := range in.Dimensions {
		// isimsiz değer anlamsız
		if strings.TrimSpace(d.Name) == "" && strings.TrimSpace(d.Value) != "" {
			return fmt.Errorf("%w: dimension%d value without name", ErrInvalidDailyMetric, i+1)
		}
	}

	counts := []int64{
		in.Sessions, in.Users, in.BotSessions, in.PageViews,
		in.MobileSessions, in.DesktopSessions, in.TabletSessions,
		in.DeadClicks, in.RageClicks, in.QuickBacks,
		in.ErrorClicks, in.ScriptErrors, in.ExcessiveScrolls,
	}
	for _, c := range counts {
		if c < 0 {
			return fmt.Errorf("%w: counts must be >= 0", ErrInvalidDailyMetric)
		}
	}

	if len(in.RawPayload) > 0 && !json.Valid(in.RawPayload) {
		return fmt.Errorf("%w: raw_payload is not valid JSON", ErrInvalidDailyMetric)
	}

	return nil
}
