package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/analysis"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

type FrustrationCheckInput struct {
	Range      daterange.DateRange
	MetricName string
	Scope      string
}

// FrustrationCheckResult is returned whether or not an alert was sent.
type FrustrationCheckResult struct {
	Alert     domain.FrustrationAlert
	Triggered bool
}

type FrustrationAlertUseCase struct {
	reader    ports.MetricsReaderPort
	notifier  ports.AlertNotifierPort
	defaults  Defaults
	threshold float64
	logger    *zap.Logger
}

func NewFrustrationAlertUseCase(reader ports.MetricsReaderPort, notifier ports.AlertNotifierPort, defaults Defaults, threshold float64, logger *zap.Logger) *FrustrationAlertUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FrustrationAlertUseCase{
		reader:    reader,
		notifier:  notifier,
		defaults:  defaults,
		threshold: threshold,
		logger:    logger,
	}
}

// Execute totals dead clicks, rage clicks and quick backs over the range and
// notifies when they exceed the threshold, expressed per 100 sessions.
func (uc *FrustrationAlertUseCase) Execute(ctx context.Context, in FrustrationCheckInput) (*FrustrationCheckResult, error) {
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

	overall := analysis.Overall(rows)
	alert := domain.FrustrationAlert{
		Range:       in.Range,
		MetricName:  name,
		Scope:       scope,
		Sessions:    overall.Sessions.Total,
		Frustration: overall.Frustration,
		Percentage:  overall.Frustration.PerSession * 100,
		Threshold:   uc.threshold,
	}

	res := &FrustrationCheckResult{Alert: alert}
	if alert.Percentage <= uc.threshold {
		return res, nil
	}

	if err := uc.notifier.NotifyHighFrustration(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to send frustration alert: %w", err)
	}
	uc.logger.Info("high frustration alert sent",
		zap.String("metric_name", name),
		zap.String("range", in.Range.String()),
		zap.Float64("percentage", alert.Percentage),
		zap.Float64("threshold", uc.threshold),
	)
	res.Triggered = true
	return res, nil
}
