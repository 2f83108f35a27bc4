package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type QueryMetricsUseCase interface {
	Query(ctx context.Context, in usecase.QueryMetricsInput) ([]domain.DailyMetric, error)
	Summary(ctx context.Context, in usecase.SummaryInput) (*domain.MetricSummary, error)
	AvailableDates(ctx context.Context, scope string) ([]time.Time, error)
	Status(ctx context.Context) (domain.DailyBounds, error)
}

type AggregateMetricsUseCase interface {
	Weekly(ctx context.Context, in usecase.WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error)
	Monthly(ctx context.Context, in usecase.MonthlyInput) (*domain.MonthlyAggregate, domain.AggregationOutcome, error)
	All(ctx context.Context, force bool) (domain.AggregationRun, error)
}

type ComparePeriodsUseCase interface {
	Compare(ctx context.Context, in usecase.ComparePeriodsInput) (*domain.ComparisonResult, error)
	CompareToPrevious(ctx context.Context, current daterange.DateRange, metricName *string, scope string) (*domain.ComparisonResult, error)
}

type AnalyzeTrendUseCase interface {
	Execute(ctx context.Context, in usecase.AnalyzeTrendInput) (*domain.TrendAnalysis, error)
}

type FrustrationAlertUseCase interface {
	Execute(ctx context.Context, in usecase.FrustrationCheckInput) (*usecase.FrustrationCheckResult, error)
}

type MetricsHandler struct {
	queryUC     QueryMetricsUseCase
	aggregateUC AggregateMetricsUseCase
	compareUC   ComparePeriodsUseCase
	trendUC     AnalyzeTrendUseCase
	alertUC     FrustrationAlertUseCase
	now         func() time.Time
}

func NewMetricsHandler(
	queryUC QueryMetricsUseCase,
	aggregateUC AggregateMetricsUseCase,
	compareUC ComparePeriodsUseCase,
	trendUC AnalyzeTrendUseCase,
	alertUC FrustrationAlertUseCase,
) *MetricsHandler {
	return &MetricsHandler{
		queryUC:     queryUC,
		aggregateUC: aggregateUC,
		compareUC:   compareUC,
		trendUC:     trendUC,
		alertUC:     alertUC,
		now:         time.Now,
	}
}

// WithClock overrides the reference time used for relative date expressions.
func (h *MetricsHandler) WithClock(now func() time.Time) *MetricsHandler {
	h.now = now
	return h
}

// Register mounts the read, aggregation and analysis routes.
func (h *MetricsHandler) Register(r fiber.Router) {
	r.Get("/metrics", h.GetMetrics)
	r.Get("/metrics/summary", h.GetSummary)
	r.Get("/metrics/dates", h.GetAvailableDates)
	r.Get("/metrics/status", h.GetStatus)

	r.Post("/aggregations/weekly", h.AggregateWeekly)
	r.Post("/aggregations/monthly", h.AggregateMonthly)
	r.Post("/aggregations/all", h.AggregateAll)

	r.Get("/comparisons", h.ComparePeriods)
	r.Get("/trends", h.AnalyzeTrend)
	r.Post("/alerts/frustration", h.CheckFrustration)
}

// parseRange reads a date expression from query parameter key.
func (h *MetricsHandler) parseRange(c *fiber.Ctx, key string) (daterange.DateRange, error) {
	return daterange.Parse(c.Query(key), h.now())
}

// optional turns a missing query parameter into nil.
func optional(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func wantsText(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Query("format"), "text")
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, daterange.ErrInvalidExpression),
		errors.Is(err, daterange.ErrStartAfterEnd):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_date_expression",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidMetricsQuery),
		errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrInvalidDimensionFilter),
		errors.Is(err, usecase.ErrMetricNameRequired),
		errors.Is(err, usecase.ErrInvalidPeriod):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_metrics_query",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
