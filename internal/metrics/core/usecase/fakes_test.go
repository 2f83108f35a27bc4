package usecase_test

import (
	"context"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/ports"
	"ux-metrics-service/internal/metrics/core/usecase"
)

// fakeMetricsReader, MetricsReaderPort'u test için fake'ler.
type fakeMetricsReader struct {
	QueryFn     func(ctx context.Context, f ports.MetricsFilter) ([]domain.DailyMetric, error)
	AggregateFn func(ctx context.Context, f ports.MetricsFilter) (domain.MetricStats, error)
	DatesFn     func(ctx context.Context, scope domain.Scope) ([]time.Time, error)
	BoundsFn    func(ctx context.Context) (domain.DailyBounds, error)

	queryFilters     []ports.MetricsFilter
	aggregateFilters []ports.MetricsFilter
}

func (f *fakeMetricsReader) QueryMetrics(ctx context.Context, flt ports.MetricsFilter) ([]domain.DailyMetric, error) {
	f.queryFilters = append(f.queryFilters, flt)
	if f.QueryFn != nil {
		return f.QueryFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeMetricsReader) AggregateMetrics(ctx context.Context, flt ports.MetricsFilter) (domain.MetricStats, error) {
	f.aggregateFilters = append(f.aggregateFilters, flt)
	if f.AggregateFn != nil {
		return f.AggregateFn(ctx, flt)
	}
	return domain.MetricStats{}, nil
}

func (f *fakeMetricsReader) AvailableDates(ctx context.Context, scope domain.Scope) ([]time.Time, error) {
	if f.DatesFn != nil {
		return f.DatesFn(ctx, scope)
	}
	return nil, nil
}

func (f *fakeMetricsReader) DailyBounds(ctx context.Context) (domain.DailyBounds, error) {
	if f.BoundsFn != nil {
		return f.BoundsFn(ctx)
	}
	return domain.DailyBounds{}, nil
}

// fakeAggregateStore keeps cache rows in maps so idempotence can be observed.
type fakeAggregateStore struct {
	FindWeeklyFn  func(ctx context.Context, k ports.WeeklyKey) (*domain.WeeklyAggregate, error)
	FindMonthlyFn func(ctx context.Context, k ports.MonthlyKey) (*domain.MonthlyAggregate, error)

	weekly        map[ports.WeeklyKey]*domain.WeeklyAggregate
	monthly       map[ports.MonthlyKey]*domain.MonthlyAggregate
	weeklyWrites  int
	monthlyWrites int
}

func newFakeAggregateStore() *fakeAggregateStore {
	return &fakeAggregateStore{
		weekly:  map[ports.WeeklyKey]*domain.WeeklyAggregate{},
		monthly: map[ports.MonthlyKey]*domain.MonthlyAggregate{},
	}
}

func (f *fakeAggregateStore) FindWeekly(ctx context.Context, k ports.WeeklyKey) (*domain.WeeklyAggregate, error) {
	if f.FindWeeklyFn != nil {
		return f.FindWeeklyFn(ctx, k)
	}
	return f.weekly[k], nil
}

func (f *fakeAggregateStore) UpsertWeekly(ctx context.Context, a *domain.WeeklyAggregate) error {
	f.weeklyWrites++
	f.weekly[ports.WeeklyKey{WeekStart: a.WeekStart, WeekEnd: a.WeekEnd, MetricName: a.MetricName, Scope: a.Scope, PageID: a.PageID}] = a
	return nil
}

func (f *fakeAggregateStore) FindMonthly(ctx context.Context, k ports.MonthlyKey) (*domain.MonthlyAggregate, error) {
	if f.FindMonthlyFn != nil {
		return f.FindMonthlyFn(ctx, k)
	}
	return f.monthly[k], nil
}

func (f *fakeAggregateStore) UpsertMonthly(ctx context.Context, a *domain.MonthlyAggregate) error {
	f.monthlyWrites++
	f.monthly[ports.MonthlyKey{Year: a.Year, Month: a.Month, MetricName: a.MetricName, Scope: a.Scope, PageID: a.PageID}] = a
	return nil
}

type fakeNotifier struct {
	NotifyFn func(ctx context.Context, a domain.FrustrationAlert) error
	sent     []domain.FrustrationAlert
}

func (f *fakeNotifier) NotifyHighFrustration(ctx context.Context, a domain.FrustrationAlert) error {
	f.sent = append(f.sent, a)
	if f.NotifyFn != nil {
		return f.NotifyFn(ctx, a)
	}
	return nil
}

var defaults = usecase.Defaults{MetricName: "Traffic", Scope: domain.ScopeGeneral}

func mustRange(start, end time.Time) daterange.DateRange {
	r, err := daterange.New(start, end, "")
	if err != nil {
		panic(err)
	}
	return r
}

func strPtr(s string) *string { return &s }
