package usecase

import (
	"context"
	"fmt"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/analysis"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

type AnalyzeTrendInput struct {
	Range      daterange.DateRange
	MetricName string // "" -> default metric
	Scope      string
}

type AnalyzeTrendUseCase struct {
	reader   ports.MetricsReaderPort
	defaults Defaults
}

func NewAnalyzeTrendUseCase(reader ports.MetricsReaderPort, defaults Defaults) *AnalyzeTrendUseCase {
	return &AnalyzeTrendUseCase{reader: reader, defaults: defaults}
}

// Execute runs every trend sub-analysis over the daily sessions series.
// Sub-analyses without enough points carry an insufficient-data note; a
// range without rows returns an analysis with DataPoints == 0.
func (uc *AnalyzeTrendUseCase) Execute(ctx context.Context, in AnalyzeTrendInput) (*domain.TrendAnalysis, error) {
	if in.Range.IsZero() {
		return nil, fmt.Errorf("%w: range is required", ErrInvalidMetricsQuery)
	}

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, err
	}
	name := uc.defaults.metricName(in.MetricName)
	if name == "" {
		return nil, ErrMetricNameRequired
	}

	rows, err := uc.reader.QueryMetrics(ctx, ports.MetricsFilter{Range: in.Range, Scope: scope, MetricName: &name})
	if err != nil {
		return nil, err
	}

	out := &domain.TrendAnalysis{
		Range:      in.Range,
		MetricName: name,
		Scope:      scope,
		DataPoints: len(rows),
	}
	if len(rows) == 0 {
		return out, nil
	}

	// the store returns newest first
	rows = analysis.SortByDate(rows)
	sessions := analysis.SessionSeries(rows)

	out.Overall = analysis.Overall(rows)
	out.Growth = analysis.Growth(sessions)
	out.Volatility = analysis.Volatility(sessions)
	out.Trend = analysis.Trend(sessions)
	out.Patterns = analysis.Patterns(sessions)
	return out, nil
}
