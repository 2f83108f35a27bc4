package usecase

import (
	"context"
	"fmt"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/analysis"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

type ComparePeriodsInput struct {
	Current    daterange.DateRange
	Previous   daterange.DateRange
	MetricName *string // nil -> all metrics
	Scope      string
}

type ComparePeriodsUseCase struct {
	reader   ports.MetricsReaderPort
	defaults Defaults
}

func NewComparePeriodsUseCase(reader ports.MetricsReaderPort, defaults Defaults) *ComparePeriodsUseCase {
	return &ComparePeriodsUseCase{reader: reader, defaults: defaults}
}

// Compare reads both periods independently and reports per-field changes of
// Current relative to Previous.
func (uc *ComparePeriodsUseCase) Compare(ctx context.Context, in ComparePeriodsInput) (*domain.ComparisonResult, error) {
	if in.Current.IsZero() || in.Previous.IsZero() {
		return nil, fmt.Errorf("%w: both periods are required", ErrInvalidMetricsQuery)
	}

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, err
	}
	name := nonEmpty(in.MetricName)

	current, err := uc.summarize(ctx, in.Current, scope, name)
	if err != nil {
		return nil, err
	}
	previous, err := uc.summarize(ctx, in.Previous, scope, name)
	if err != nil {
		return nil, err
	}

	changes, improvements, regressions := analysis.Compare(current, previous)

	out := &domain.ComparisonResult{
		Scope:        scope,
		Current:      current,
		Previous:     previous,
		Changes:      changes,
		Improvements: improvements,
		Regressions:  regressions,
	}
	if name != nil {
		out.MetricName = *name
	}
	return out, nil
}

// CompareToPrevious compares current with the equally long period ending the
// day before it starts.
func (uc *ComparePeriodsUseCase) CompareToPrevious(ctx context.Context, current daterange.DateRange, metricName *string, scope string) (*domain.ComparisonResult, error) {
	if current.IsZero() {
		return nil, fmt.Errorf("%w: period is required", ErrInvalidMetricsQuery)
	}
	return uc.Compare(ctx, ComparePeriodsInput{
		Current:    current,
		Previous:   current.Previous(),
		MetricName: metricName,
		Scope:      scope,
	})
}

func (uc *ComparePeriodsUseCase) summarize(ctx context.Context, rng daterange.DateRange, scope domain.Scope, name *string) (domain.PeriodSummary, error) {
	rows, err := uc.reader.QueryMetrics(ctx, ports.MetricsFilter{Range: rng, Scope: scope, MetricName: name})
	if err != nil {
		return domain.PeriodSummary{}, err
	}
	return analysis.SummarizePeriod(rng, rows), nil
}
