package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
)

var ErrInvalidPeriod = errors.New("invalid aggregation period")

type WeeklyInput struct {
	Year       int
	Week       int // ISO week
	MetricName string
	Scope      string
	PageID     string
	Force      bool
}

type MonthlyInput struct {
	Year       int
	Month      int
	MetricName string
	Scope      string
	PageID     string
	Force      bool
}

// AggregateMetricsUseCase fills the weekly and monthly caches from daily rows.
type AggregateMetricsUseCase struct {
	reader   ports.MetricsReaderPort
	store    ports.AggregateStorePort
	defaults Defaults
	logger   *zap.Logger
	now      func() time.Time
}

func NewAggregateMetricsUseCase(reader ports.MetricsReaderPort, store ports.AggregateStorePort, defaults Defaults, logger *zap.Logger) *AggregateMetricsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregateMetricsUseCase{
		reader:   reader,
		store:    store,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the clock used for computed_at.
func (uc *AggregateMetricsUseCase) WithClock(now func() time.Time) *AggregateMetricsUseCase {
	uc.now = now
	return uc
}

// ISOWeekStart returns the Monday of ISO week `week` of `year`.
func ISOWeekStart(year, week int) time.Time {
	jan4 := daterange.Date(year, time.January, 4)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+7*(week-1))
}

// Weekly aggregates one ISO week. An existing cache row is returned unchanged
// unless Force is set. A week without daily rows writes nothing and returns
// (nil, OutcomeEmpty, nil).
func (uc *AggregateMetricsUseCase) Weekly(ctx context.Context, in WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error) {
	if in.Week < 1 || in.Week > 53 || in.Year < 1 || in.Year > 9999 {
		return nil, "", fmt.Errorf("%w: week %d of %d", ErrInvalidPeriod, in.Week, in.Year)
	}

	start := ISOWeekStart(in.Year, in.Week)
	if y, w := start.ISOWeek(); y != in.Year || w != in.Week {
		return nil, "", fmt.Errorf("%w: %d has no ISO week %d", ErrInvalidPeriod, in.Year, in.Week)
	}
	end := start.AddDate(0, 0, 6)

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, "", err
	}
	name := uc.defaults.metricName(in.MetricName)
	if name == "" {
		return nil, "", ErrMetricNameRequired
	}

	key := ports.WeeklyKey{WeekStart: start, WeekEnd: end, MetricName: name, Scope: scope, PageID: in.PageID}

	if !in.Force {
		cached, err := uc.store.FindWeekly(ctx, key)
		if err != nil {
			return nil, "", err
		}
		if cached != nil {
			uc.logger.Debug("weekly aggregate cache hit",
				zap.Int("year", in.Year), zap.Int("week", in.Week), zap.String("metric_name", name))
			return cached, domain.OutcomeCached, nil
		}
	}

	rng, err := daterange.New(start, end, fmt.Sprintf("%d-W%02d", in.Year, in.Week))
	if err != nil {
		return nil, "", err
	}

	stats, err := uc.reader.AggregateMetrics(ctx, uc.filter(rng, name, scope, in.PageID))
	if err != nil {
		return nil, "", err
	}
	if stats.DataPoints == 0 {
		uc.logger.Debug("no daily rows for week",
			zap.Int("year", in.Year), zap.Int("week", in.Week), zap.String("metric_name", name))
		return nil, domain.OutcomeEmpty, nil
	}

	stats.MinSessions, stats.MaxSessions = 0, 0
	agg := &domain.WeeklyAggregate{
		WeekStart:   start,
		WeekEnd:     end,
		Year:        in.Year,
		Week:        in.Week,
		MetricName:  name,
		Scope:       scope,
		PageID:      in.PageID,
		MetricStats: stats,
		ComputedAt:  uc.now().UTC(),
	}
	if err := uc.store.UpsertWeekly(ctx, agg); err != nil {
		return nil, "", err
	}
	return agg, domain.OutcomeComputed, nil
}

// Monthly aggregates one calendar month, min/max sessions included. Cache
// and empty-month behavior match Weekly.
func (uc *AggregateMetricsUseCase) Monthly(ctx context.Context, in MonthlyInput) (*domain.MonthlyAggregate, domain.AggregationOutcome, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 1 || in.Year > 9999 {
		return nil, "", fmt.Errorf("%w: month %d of %d", ErrInvalidPeriod, in.Month, in.Year)
	}

	month := time.Month(in.Month)
	start := daterange.Date(in.Year, month, 1)
	end := daterange.LastDayOfMonth(in.Year, month)

	scope, err := uc.defaults.scope(in.Scope)
	if err != nil {
		return nil, "", err
	}
	name := uc.defaults.metricName(in.MetricName)
	if name == "" {
		return nil, "", ErrMetricNameRequired
	}

	key := ports.MonthlyKey{Year: in.Year, Month: month, MetricName: name, Scope: scope, PageID: in.PageID}

	if !in.Force {
		cached, err := uc.store.FindMonthly(ctx, key)
		if err != nil {
			return nil, "", err
		}
		if cached != nil {
			uc.logger.Debug("monthly aggregate cache hit",
				zap.Int("year", in.Year), zap.Int("month", in.Month), zap.String("metric_name", name))
			return cached, domain.OutcomeCached, nil
		}
	}

	rng, err := daterange.New(start, end, fmt.Sprintf("%s %d", month, in.Year))
	if err != nil {
		return nil, "", err
	}

	stats, err := uc.reader.AggregateMetrics(ctx, uc.filter(rng, name, scope, in.PageID))
	if err != nil {
		return nil, "", err
	}
	if stats.DataPoints == 0 {
		uc.logger.Debug("no daily rows for month",
			zap.Int("year", in.Year), zap.Int("month", in.Month), zap.String("metric_name", name))
		return nil, domain.OutcomeEmpty, nil
	}

	agg := &domain.MonthlyAggregate{
		Year:        in.Year,
		Month:       month,
		MonthStart:  start,
		MonthEnd:    end,
		MetricName:  name,
		Scope:       scope,
		PageID:      in.PageID,
		MetricStats: stats,
		ComputedAt:  uc.now().UTC(),
	}
	if err := uc.store.UpsertMonthly(ctx, agg); err != nil {
		return nil, "", err
	}
	return agg, domain.OutcomeComputed, nil
}

// All walks every ISO week and calendar month between the oldest and newest
// stored daily rows, using the default metric and scope. A failing period is
// logged and counted; the walk goes on.
func (uc *AggregateMetricsUseCase) All(ctx context.Context, force bool) (domain.AggregationRun, error) {
	run := domain.AggregationRun{RunID: uuid.NewString()}
	log := uc.logger.With(zap.String("run_id", run.RunID))

	bounds, err := uc.reader.DailyBounds(ctx)
	if err != nil {
		return run, err
	}
	if !bounds.HasData {
		log.Info("no daily data to aggregate")
		return run, nil
	}
	run.From, run.To = bounds.MinDate, bounds.MaxDate

	minDay := daterange.Day(bounds.MinDate)
	maxDay := daterange.Day(bounds.MaxDate)

	monday := minDay.AddDate(0, 0, -((int(minDay.Weekday()) + 6) % 7))
	for d := monday; !d.After(maxDay); d = d.AddDate(0, 0, 7) {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		year, week := d.ISOWeek()
		agg, _, err := uc.Weekly(ctx, WeeklyInput{Year: year, Week: week, Force: force})
		if err != nil {
			run.WeeklyFailed++
			log.Warn("weekly aggregation failed", zap.Int("year", year), zap.Int("week", week), zap.Error(err))
			continue
		}
		if agg != nil {
			run.Weekly++
		}
	}

	last := daterange.Date(maxDay.Year(), maxDay.Month(), 1)
	for m := daterange.Date(minDay.Year(), minDay.Month(), 1); !m.After(last); m = m.AddDate(0, 1, 0) {
		if err := ctx.Err(); err != nil {
			return run, err
		}
		agg, _, err := uc.Monthly(ctx, MonthlyInput{Year: m.Year(), Month: int(m.Month()), Force: force})
		if err != nil {
			run.MonthlyFailed++
			log.Warn("monthly aggregation failed", zap.Int("year", m.Year()), zap.Int("month", int(m.Month())), zap.Error(err))
			continue
		}
		if agg != nil {
			run.Monthly++
		}
	}

	log.Info("aggregation run finished",
		zap.Int("weekly", run.Weekly),
		zap.Int("monthly", run.Monthly),
		zap.Int("weekly_failed", run.WeeklyFailed),
		zap.Int("monthly_failed", run.MonthlyFailed),
	)
	return run, nil
}

func (uc *AggregateMetricsUseCase) filter(rng daterange.DateRange, name string, scope domain.Scope, pageID string) ports.MetricsFilter {
	f := ports.MetricsFilter{Range: rng, Scope: scope, MetricName: &name}
	if pageID != "" {
		f.PageID = &pageID
	}
	return f
}
