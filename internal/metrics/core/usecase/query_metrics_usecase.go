package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

var (
	ErrInvalidMetricsQuery    = errors.New("invalid metrics query")
	ErrInvalidScope           = errors.New("invalid data scope")
	ErrInvalidDimensionFilter = errors.New("dimension1_value requires dimension1_name")
	ErrMetricNameRequired     = errors.New("metric_name is required")
)

// Defaults are applied when a caller leaves metric name or scope empty.
type Defaults struct {
	MetricName string
	Scope      domain.Scope
}

func (d Defaults) scope(s string) (domain.Scope, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		if d.Scope == "" {
			return domain.ScopeGeneral, nil
		}
		return d.Scope, nil
	}
	scope := domain.Scope(s)
	if !scope.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
	return scope, nil
}

func (d Defaults) metricName(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return d.MetricName
}

type QueryMetricsInput struct {
	Range           daterange.DateRange
	Scope           string // "" -> default scope
	MetricName      *string
	PageID          *string
	Dimension1Name  *string
	Dimension1Value *string
}

type SummaryInput struct {
	Range      daterange.DateRange
	MetricName string // required
	Scope      string
	PageID     *string
}

type QueryMetricsUseCase struct {
	reader   ports.MetricsReaderPort
	defaults Defaults
}

func NewQueryMetricsUseCase(reader ports.MetricsReaderPort, defaults Defaults) *QueryMetricsUseCase {
	return &QueryMetricsUseCase{reader: reader, defaults: defaults}
}

// Query returns the matching daily rows, newest first. No match is an empty
// slice, not an error.
func (uc *QueryMetricsUseCase) Query(ctx context.Context, in QueryMetricsInput) ([]domain.DailyMetric, error) {
	if in.Range.IsZero() {
		return nil, fmt.Errorf("%w: range is required", ErrInvalidMetricsQuery)
	}

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, err
	}

	dimName, dimValue := nonEmpty(in.Dimension1Name), nonEmpty(in.Dimension1Value)
	if dimValue != nil && dimName == nil {
		return nil, ErrInvalidDimensionFilter
	}

	rows, err := uc.reader.QueryMetrics(ctx, ports.MetricsFilter{
		Range:           in.Range,
		Scope:           scope,
		MetricName:      nonEmpty(in.MetricName),
		PageID:          nonEmpty(in.PageID),
		Dimension1Name:  dimName,
		Dimension1Value: dimValue,
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.DailyMetric{}
	}
	return rows, nil
}

// Summary aggregates one metric over the range. A range without rows yields
// a summary with DataPoints == 0.
func (uc *QueryMetricsUseCase) Summary(ctx context.Context, in SummaryInput) (*domain.MetricSummary, error) {
	if in.Range.IsZero() {
		return nil, fmt.Errorf("%w: range is required", ErrInvalidMetricsQuery)
	}

	name := strings.TrimSpace(in.MetricName)
	if name == "" {
		return nil, ErrMetricNameRequired
	}

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, err
	}

	pageID := nonEmpty(in.PageID)
	stats, err := uc.reader.AggregateMetrics(ctx, ports.MetricsFilter{
		Range:      in.Range,
		Scope:      scope,
		MetricName: &name,
		PageID:     pageID,
	})
	if err != nil {
		return nil, err
	}

	out := &domain.MetricSummary{
		Range:       in.Range,
		MetricName:  name,
		Scope:       scope,
		MetricStats: stats,
	}
	if pageID != nil {
		out.PageID = *pageID
	}
	return out, nil
}

// AvailableDates lists the distinct dates stored for scope, newest first.
func (uc *QueryMetricsUseCase) AvailableDates(ctx context.Context, scope string) ([]time.Time, error) {
	s, err := uc.defaults.scope(scope)
	if err != nil {
		return nil, err
	}

	dates, err := uc.reader.AvailableDates(ctx, s)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []time.Time{}
	}
	return dates, nil
}

// Status reports how much daily data is stored.
func (uc *QueryMetricsUseCase) Status(ctx context.Context) (domain.DailyBounds, error) {
	return uc.reader.DailyBounds(ctx)
}

// nonEmpty drops blank optional filters.
func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
