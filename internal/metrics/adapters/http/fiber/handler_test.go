package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

var fixedNow = time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)

type fakeQueryUseCase struct {
	QueryFn   func(ctx context.Context, in usecase.QueryMetricsInput) ([]domain.DailyMetric, error)
	SummaryFn func(ctx context.Context, in usecase.SummaryInput) (*domain.MetricSummary, error)
	DatesFn   func(ctx context.Context, scope string) ([]time.Time, error)
	StatusFn  func(ctx context.Context) (domain.DailyBounds, error)

	LastQuery   usecase.QueryMetricsInput
	LastSummary usecase.SummaryInput
}

func (f *fakeQueryUseCase) Query(ctx context.Context, in usecase.QueryMetricsInput) ([]domain.DailyMetric, error) {
	f.LastQuery = in
	if f.QueryFn != nil {
		return f.QueryFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeQueryUseCase) Summary(ctx context.Context, in usecase.SummaryInput) (*domain.MetricSummary, error) {
	f.LastSummary = in
	if f.SummaryFn != nil {
		return f.SummaryFn(ctx, in)
	}
	return &domain.MetricSummary{Range: in.Range, MetricName: in.MetricName, Scope: domain.ScopeGeneral}, nil
}

func (f *fakeQueryUseCase) AvailableDates(ctx context.Context, scope string) ([]time.Time, error) {
	if f.DatesFn != nil {
		return f.DatesFn(ctx, scope)
	}
	return []time.Time{}, nil
}

func (f *fakeQueryUseCase) Status(ctx context.Context) (domain.DailyBounds, error) {
	if f.StatusFn != nil {
		return f.StatusFn(ctx)
	}
	return domain.DailyBounds{}, nil
}

type fakeAggregateUseCase struct {
	WeeklyFn  func(ctx context.Context, in usecase.WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error)
	MonthlyFn func(ctx context.Context, in usecase.MonthlyInput) (*domain.MonthlyAggregate, domain.AggregationOutcome, error)
	AllFn     func(ctx context.Context, force bool) (domain.AggregationRun, error)
}

func (f *fakeAggregateUseCase) Weekly(ctx context.Context, in usecase.WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error) {
	if f.WeeklyFn != nil {
		return f.WeeklyFn(ctx, in)
	}
	return nil, domain.OutcomeEmpty, nil
}

func (f *fakeAggregateUseCase) Monthly(ctx context.Context, in usecase.MonthlyInput) (*domain.MonthlyAggregate, domain.AggregationOutcome, error) {
	if f.MonthlyFn != nil {
		return f.MonthlyFn(ctx, in)
	}
	return nil, domain.OutcomeEmpty, nil
}

func (f *fakeAggregateUseCase) All(ctx context.Context, force bool) (domain.AggregationRun, error) {
	if f.AllFn != nil {
		return f.AllFn(ctx, force)
	}
	return domain.AggregationRun{}, nil
}

type fakeCompareUseCase struct {
	CompareFn  func(ctx context.Context, in usecase.ComparePeriodsInput) (*domain.ComparisonResult, error)
	PreviousFn func(ctx context.Context, current daterange.DateRange, name *string, scope string) (*domain.ComparisonResult, error)
}

func (f *fakeCompareUseCase) Compare(ctx context.Context, in usecase.ComparePeriodsInput) (*domain.ComparisonResult, error) {
	return f.CompareFn(ctx, in)
}

func (f *fakeCompareUseCase) CompareToPrevious(ctx context.Context, current daterange.DateRange, name *string, scope string) (*domain.ComparisonResult, error) {
	return f.PreviousFn(ctx, current, name, scope)
}

type fakeTrendUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.AnalyzeTrendInput) (*domain.TrendAnalysis, error)
}

func (f *fakeTrendUseCase) Execute(ctx context.Context, in usecase.AnalyzeTrendInput) (*domain.TrendAnalysis, error) {
	return f.ExecuteFn(ctx, in)
}

type fakeAlertUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.FrustrationCheckInput) (*usecase.FrustrationCheckResult, error)
}

func (f *fakeAlertUseCase) Execute(ctx context.Context, in usecase.FrustrationCheckInput) (*usecase.FrustrationCheckResult, error) {
	return f.ExecuteFn(ctx, in)
}

type fakes struct {
	query     *fakeQueryUseCase
	aggregate *fakeAggregateUseCase
	compare   *fakeCompareUseCase
	trend     *fakeTrendUseCase
	alert     *fakeAlertUseCase
}

func newFakes() *fakes {
	return &fakes{
		query:     &fakeQueryUseCase{},
		aggregate: &fakeAggregateUseCase{},
		compare:   &fakeCompareUseCase{},
		trend:     &fakeTrendUseCase{},
		alert:     &fakeAlertUseCase{},
	}
}

// helper: create fiber app and routes
func setupTestApp(f *fakes) *fiber.App {
	app := fiber.New()
	NewMetricsHandler(f.query, f.aggregate, f.compare, f.trend, f.alert).
		WithClock(func() time.Time { return fixedNow }).
		Register(app)
	return app
}

// helper: send request and return the raw body
func send(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, raw
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	resp, raw := send(t, app, method, path, body)
	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("invalid json response %q: %v", raw, err)
		}
	}
	return resp, out
}

func q(expr string) string { return url.QueryEscape(expr) }

func mustRange(t *testing.T, start, end time.Time) daterange.DateRange {
	t.Helper()
	r, err := daterange.New(start, end, "")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	return r
}

// ------------------------------------------------------------
// QUERY
// ------------------------------------------------------------

func TestGetMetrics_ParsesRangeAndFilters(t *testing.T) {
	f := newFakes()
	f.query.QueryFn = func(ctx context.Context, in usecase.QueryMetricsInput) ([]domain.DailyMetric, error) {
		return []domain.DailyMetric{{
			MetricDate: time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			MetricName: "Traffic",
			Scope:      domain.ScopePage,
			PageID:     "/pricing",
			Dimensions: [3]domain.Dimension{{Name: "Device", Value: "Mobile"}},
			Sessions:   120,
		}}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet,
		"/metrics?range="+"7d"+"&data_scope=page&metric_name=Traffic&dimension1_name=Device&dimension1_value=Mobile", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}

	in := f.query.LastQuery
	if in.Range.StartString() != "2025-11-27" || in.Range.EndString() != "2025-12-03" {
		t.Fatalf("unexpected range: %s", in.Range)
	}
	if in.Scope != "page" || in.MetricName == nil || *in.MetricName != "Traffic" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.PageID != nil {
		t.Fatalf("expected nil page_id, got %q", *in.PageID)
	}
	if in.Dimension1Name == nil || *in.Dimension1Value != "Mobile" {
		t.Fatalf("unexpected dimension filter: %+v", in)
	}

	if int(body["count"].(float64)) != 1 {
		t.Fatalf("expected count=1, got %v", body["count"])
	}
	row := body["metrics"].([]any)[0].(map[string]any)
	if row["metric_date"] != "2025-11-30" || row["page_id"] != "/pricing" {
		t.Fatalf("unexpected row: %v", row)
	}
	if len(row["dimensions"].([]any)) != 1 {
		t.Fatalf("expected empty dimensions to be dropped, got %v", row["dimensions"])
	}
}

func TestGetMetrics_InvalidExpression(t *testing.T) {
	app := setupTestApp(newFakes())

	resp, body := doRequest(t, app, http.MethodGet, "/metrics?range="+q("next fortnight"), nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "invalid_date_expression" {
		t.Errorf("expected error=invalid_date_expression, got %v", body["error"])
	}
}

func TestGetMetrics_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidScope, http.StatusBadRequest, "invalid_metrics_query"},
		{usecase.ErrInvalidDimensionFilter, http.StatusBadRequest, "invalid_metrics_query"},
		{errors.New("db error"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tc := range cases {
		f := newFakes()
		f.query.QueryFn = func(ctx context.Context, in usecase.QueryMetricsInput) ([]domain.DailyMetric, error) {
			return nil, tc.err
		}
		app := setupTestApp(f)

		resp, body := doRequest(t, app, http.MethodGet, "/metrics?range="+q("yesterday"), nil)

		if resp.StatusCode != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, resp.StatusCode)
		}
		if body["error"] != tc.code {
			t.Errorf("%v: expected error=%s, got %v", tc.err, tc.code, body["error"])
		}
	}
}

func TestGetSummary_StableFieldNames(t *testing.T) {
	f := newFakes()
	f.query.SummaryFn = func(ctx context.Context, in usecase.SummaryInput) (*domain.MetricSummary, error) {
		return &domain.MetricSummary{
			Range:      in.Range,
			MetricName: in.MetricName,
			Scope:      domain.ScopeGeneral,
			MetricStats: domain.MetricStats{
				DataPoints:  3,
				AvgSessions: 1416.5,
				SumSessions: 4250,
				MinSessions: 1200,
				MaxSessions: 1650,
			},
		}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet, "/metrics/summary?range="+q("November 2025")+"&metric_name=Traffic", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	for key, want := range map[string]float64{
		"data_points":  3,
		"avg_sessions": 1416.5,
		"sum_sessions": 4250,
		"min_sessions": 1200,
		"max_sessions": 1650,
	} {
		if got, ok := body[key].(float64); !ok || got != want {
			t.Errorf("%s: expected %v, got %v", key, want, body[key])
		}
	}
	period := body["period"].(map[string]any)
	if period["label"] != "November 2025" || int(period["days"].(float64)) != 30 {
		t.Fatalf("unexpected period: %v", period)
	}
}

func TestGetSummary_MetricNameRequired(t *testing.T) {
	f := newFakes()
	f.query.SummaryFn = func(ctx context.Context, in usecase.SummaryInput) (*domain.MetricSummary, error) {
		return nil, usecase.ErrMetricNameRequired
	}
	app := setupTestApp(f)

	resp, _ := doRequest(t, app, http.MethodGet, "/metrics/summary?range=2025", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetAvailableDatesAndStatus(t *testing.T) {
	f := newFakes()
	f.query.DatesFn = func(ctx context.Context, scope string) ([]time.Time, error) {
		return []time.Time{
			time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		}, nil
	}
	f.query.StatusFn = func(ctx context.Context) (domain.DailyBounds, error) {
		return domain.DailyBounds{
			Rows:    4,
			Days:    2,
			MinDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			MaxDate: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
			HasData: true,
		}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet, "/metrics/dates?data_scope=general", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	dates := body["dates"].([]any)
	if len(dates) != 2 || dates[0] != "2025-11-02" {
		t.Fatalf("unexpected dates: %v", dates)
	}

	resp, body = doRequest(t, app, http.MethodGet, "/metrics/status", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["min_date"] != "2025-11-01" || body["max_date"] != "2025-11-02" || int(body["rows"].(float64)) != 4 {
		t.Fatalf("unexpected status: %v", body)
	}
}

// ------------------------------------------------------------
// AGGREGATION
// ------------------------------------------------------------

func TestAggregateWeekly_OmitsExtremes(t *testing.T) {
	f := newFakes()
	var got usecase.WeeklyInput
	f.aggregate.WeeklyFn = func(ctx context.Context, in usecase.WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error) {
		got = in
		return &domain.WeeklyAggregate{
			WeekStart:   time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC),
			WeekEnd:     time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			Year:        2025,
			Week:        48,
			MetricName:  "Traffic",
			Scope:       domain.ScopeGeneral,
			MetricStats: domain.MetricStats{DataPoints: 7, SumSessions: 700},
		}, domain.OutcomeComputed, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodPost, "/aggregations/weekly",
		WeeklyAggregationRequest{Year: 2025, Week: 48, Force: true})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	if !got.Force || got.Week != 48 {
		t.Fatalf("unexpected input: %+v", got)
	}
	if body["outcome"] != "computed" {
		t.Fatalf("expected outcome=computed, got %v", body["outcome"])
	}
	agg := body["aggregate"].(map[string]any)
	if agg["week_start"] != "2025-11-24" || int(agg["week_number"].(float64)) != 48 {
		t.Fatalf("unexpected aggregate: %v", agg)
	}
	if _, ok := agg["min_sessions"]; ok {
		t.Fatalf("weekly aggregate must not carry min_sessions: %v", agg)
	}
}

func TestAggregateWeekly_InvalidWeek(t *testing.T) {
	f := newFakes()
	f.aggregate.WeeklyFn = func(ctx context.Context, in usecase.WeeklyInput) (*domain.WeeklyAggregate, domain.AggregationOutcome, error) {
		return nil, "", usecase.ErrInvalidPeriod
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodPost, "/aggregations/weekly", WeeklyAggregationRequest{Year: 2025, Week: 60})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "invalid_metrics_query" {
		t.Errorf("expected error=invalid_metrics_query, got %v", body["error"])
	}
}

func TestAggregateMonthly_EmptyHasNoAggregate(t *testing.T) {
	app := setupTestApp(newFakes())

	resp, body := doRequest(t, app, http.MethodPost, "/aggregations/monthly", MonthlyAggregationRequest{Year: 2025, Month: 2})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["outcome"] != "empty" {
		t.Fatalf("expected outcome=empty, got %v", body["outcome"])
	}
	if _, ok := body["aggregate"]; ok {
		t.Fatalf("expected no aggregate, got %v", body["aggregate"])
	}
}

func TestAggregateAll_ForceFlag(t *testing.T) {
	f := newFakes()
	var forced bool
	f.aggregate.AllFn = func(ctx context.Context, force bool) (domain.AggregationRun, error) {
		forced = force
		return domain.AggregationRun{RunID: "run-1", Weekly: 5, Monthly: 2, WeeklyFailed: 1}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodPost, "/aggregations/all?force=true", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !forced {
		t.Fatalf("expected force=true to reach the use case")
	}
	if body["run_id"] != "run-1" || int(body["weekly_count"].(float64)) != 5 || int(body["weekly_failed"].(float64)) != 1 {
		t.Fatalf("unexpected run: %v", body)
	}
}

// ------------------------------------------------------------
// ANALYSIS
// ------------------------------------------------------------

func sampleComparison(t *testing.T) *domain.ComparisonResult {
	cur := mustRange(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC))
	return &domain.ComparisonResult{
		MetricName: "Traffic",
		Scope:      domain.ScopeGeneral,
		Current:    domain.PeriodSummary{Range: cur, Rows: 30, Sessions: 1200},
		Previous:   domain.PeriodSummary{Range: cur.Previous(), Rows: 30, Sessions: 1000},
		Changes: []domain.FieldChange{{
			Field: domain.FieldSessions, Current: 1200, Previous: 1000,
			AbsoluteChange: 200, PercentChange: 20, Direction: domain.DirectionUp,
		}},
		Improvements: []domain.RankedChange{{Field: domain.FieldSessions, PercentChange: 20, AbsoluteChange: 200}},
	}
}

func TestComparePeriods_DefaultsToPreviousPeriod(t *testing.T) {
	f := newFakes()
	var gotRange daterange.DateRange
	f.compare.PreviousFn = func(ctx context.Context, current daterange.DateRange, name *string, scope string) (*domain.ComparisonResult, error) {
		gotRange = current
		if name == nil || *name != "Traffic" {
			t.Fatalf("expected metric name Traffic, got %v", name)
		}
		return sampleComparison(t), nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet, "/comparisons?period1="+q("November 2025")+"&metric_name=Traffic", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	if gotRange.Label() != "November 2025" {
		t.Fatalf("unexpected range passed: %s", gotRange)
	}
	changes := body["changes"].(map[string]any)
	sessions := changes["sessions"].(map[string]any)
	if sessions["percent_change"].(float64) != 20 || sessions["direction"] != "up" {
		t.Fatalf("unexpected sessions change: %v", sessions)
	}
	imp := body["improvements"].([]any)
	if len(imp) != 1 || imp[0].(map[string]any)["metric"] != "sessions" {
		t.Fatalf("unexpected improvements: %v", imp)
	}
	if regs := body["regressions"].([]any); len(regs) != 0 {
		t.Fatalf("expected empty regressions, got %v", regs)
	}
}

func TestComparePeriods_ExplicitPeriods(t *testing.T) {
	f := newFakes()
	var got usecase.ComparePeriodsInput
	f.compare.CompareFn = func(ctx context.Context, in usecase.ComparePeriodsInput) (*domain.ComparisonResult, error) {
		got = in
		return sampleComparison(t), nil
	}
	app := setupTestApp(f)

	resp, _ := doRequest(t, app, http.MethodGet, "/comparisons?period1="+q("Q4 2025")+"&period2="+q("Q3 2025"), nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if got.Current.StartString() != "2025-10-01" || got.Previous.EndString() != "2025-09-30" {
		t.Fatalf("unexpected periods: %s / %s", got.Current, got.Previous)
	}
	if got.MetricName != nil {
		t.Fatalf("expected all metrics, got %q", *got.MetricName)
	}
}

func TestComparePeriods_TextFormat(t *testing.T) {
	f := newFakes()
	f.compare.PreviousFn = func(ctx context.Context, current daterange.DateRange, name *string, scope string) (*domain.ComparisonResult, error) {
		return sampleComparison(t), nil
	}
	app := setupTestApp(f)

	resp, raw := send(t, app, http.MethodGet, "/comparisons?period1="+q("November 2025")+"&format=text", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(string(raw), "Overall: improving") {
		t.Fatalf("unexpected text report:\n%s", raw)
	}
}

func TestComparePeriods_BadSecondPeriod(t *testing.T) {
	app := setupTestApp(newFakes())

	resp, body := doRequest(t, app, http.MethodGet, "/comparisons?period1=2025&period2=someday", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "invalid_date_expression" {
		t.Errorf("expected error=invalid_date_expression, got %v", body["error"])
	}
}

func TestAnalyzeTrend_JSON(t *testing.T) {
	f := newFakes()
	f.trend.ExecuteFn = func(ctx context.Context, in usecase.AnalyzeTrendInput) (*domain.TrendAnalysis, error) {
		return &domain.TrendAnalysis{
			Range:      in.Range,
			MetricName: "Traffic",
			Scope:      domain.ScopeGeneral,
			DataPoints: 2,
			Growth: domain.GrowthAnalysis{
				Sufficiency: domain.Sufficiency{Sufficient: true},
				TotalGrowth: 10,
			},
			Volatility: domain.VolatilityAnalysis{Sufficiency: domain.Sufficiency{Sufficient: true}, Stability: domain.StabilityHigh},
			Trend:      domain.TrendLine{Sufficiency: domain.Sufficiency{Note: "insufficient data for trend analysis (need 3+ data points)"}},
			Patterns:   domain.PatternAnalysis{Sufficiency: domain.Sufficiency{Note: "insufficient data for pattern analysis (need 7+ data points)"}},
		}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet, "/trends?range="+"2d", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	growth := body["growth"].(map[string]any)
	if growth["total_growth"].(float64) != 10 {
		t.Fatalf("unexpected growth: %v", growth)
	}
	if _, ok := growth["cagr"]; ok {
		t.Fatalf("cagr must be absent for short series: %v", growth)
	}
	trends := body["trends"].(map[string]any)
	if !strings.Contains(trends["note"].(string), "need 3+") {
		t.Fatalf("expected insufficiency note, got %v", trends)
	}
	if _, ok := trends["slope"]; ok {
		t.Fatalf("insufficient trend must not carry slope: %v", trends)
	}
}

func TestAnalyzeTrend_NoData(t *testing.T) {
	f := newFakes()
	f.trend.ExecuteFn = func(ctx context.Context, in usecase.AnalyzeTrendInput) (*domain.TrendAnalysis, error) {
		return &domain.TrendAnalysis{Range: in.Range, MetricName: "Traffic"}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodGet, "/trends?range="+"this-month", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
	if body["error"] != "no_data" {
		t.Errorf("expected error=no_data, got %v", body["error"])
	}

	resp, raw := send(t, app, http.MethodGet, "/trends?range="+"this-month"+"&format=text", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(string(raw), "No data found") {
		t.Fatalf("unexpected text report:\n%s", raw)
	}
}

// ------------------------------------------------------------
// ALERTS
// ------------------------------------------------------------

func TestCheckFrustration_Triggered(t *testing.T) {
	f := newFakes()
	f.alert.ExecuteFn = func(ctx context.Context, in usecase.FrustrationCheckInput) (*usecase.FrustrationCheckResult, error) {
		if in.Range.Days() != 7 {
			t.Fatalf("expected a 7 day range, got %s", in.Range)
		}
		return &usecase.FrustrationCheckResult{
			Alert: domain.FrustrationAlert{
				Range:       in.Range,
				MetricName:  "Traffic",
				Scope:       domain.ScopeGeneral,
				Sessions:    100,
				Frustration: domain.FrustrationTotals{DeadClicks: 10, RageClicks: 10, QuickBacks: 5, Total: 25, PerSession: 0.25},
				Percentage:  25,
				Threshold:   20,
			},
			Triggered: true,
		}, nil
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodPost, "/alerts/frustration?range="+"7d", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	if body["triggered"] != true || body["percentage"].(float64) != 25 {
		t.Fatalf("unexpected alert: %v", body)
	}
	fr := body["frustration"].(map[string]any)
	if int(fr["total"].(float64)) != 25 {
		t.Fatalf("unexpected frustration totals: %v", fr)
	}
}

func TestCheckFrustration_NotifierFailure(t *testing.T) {
	f := newFakes()
	f.alert.ExecuteFn = func(ctx context.Context, in usecase.FrustrationCheckInput) (*usecase.FrustrationCheckResult, error) {
		return nil, errors.New("notify: connection refused")
	}
	app := setupTestApp(f)

	resp, body := doRequest(t, app, http.MethodPost, "/alerts/frustration?range="+"7d", nil)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	if body["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", body["error"])
	}
}
