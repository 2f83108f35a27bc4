package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ux-metrics-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreUseCase struct {
	ExecuteFunc   func(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error)
	BulkFunc      func(ctx context.Context, in usecase.BulkStoreDailyMetricsInput) (usecase.BulkStoreDailyMetricsResult, error)
	LastInput     usecase.StoreDailyMetricInput
	LastBulkInput usecase.BulkStoreDailyMetricsInput
}

func (f *fakeStoreUseCase) Execute(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error) {
	f.LastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreUseCase) BulkStore(ctx context.Context, in usecase.BulkStoreDailyMetricsInput) (usecase.BulkStoreDailyMetricsResult, error) {
	f.LastBulkInput = in
	if f.BulkFunc != nil {
		return f.BulkFunc(ctx, in)
	}
	return usecase.BulkStoreDailyMetricsResult{}, nil
}

// helper: create fiber app and routes
func setupTestApp(uc StoreDailyMetricUseCase) *fiber.App {
	app := fiber.New()
	NewIngestHandler(uc).Register(app)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
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

	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("invalid json response %q: %v", raw, err)
		}
	}
	return resp, out
}

func TestCreateDailyMetric_Created(t *testing.T) {
	fakeUC := &fakeStoreUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error) {
			return true, nil
		},
	}
	app := setupTestApp(fakeUC)

	depth := 48.5
	reqBody := CreateDailyMetricRequest{
		MetricDate:  "2025-11-24",
		MetricName:  "Traffic",
		DataScope:   "page",
		PageID:      "/pricing",
		Dimensions:  []DimensionDTO{{Name: "Device", Value: "Mobile"}},
		Sessions:    120,
		RageClicks:  3,
		ScrollDepth: &depth,
		RawPayload:  json.RawMessage(`{"metricName":"Traffic"}`),
	}

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusCreated, resp.StatusCode, body)
	}
	if body["status"] != "created" {
		t.Errorf("expected status=created, got %v", body["status"])
	}

	in := fakeUC.LastInput
	if in.Scope != "page" || in.PageID != "/pricing" || in.RageClicks != 3 {
		t.Fatalf("unexpected mapped input: %+v", in)
	}
	if len(in.Dimensions) != 1 || in.Dimensions[0].Value != "Mobile" {
		t.Fatalf("unexpected dimensions: %+v", in.Dimensions)
	}
	if in.ScrollDepth == nil || *in.ScrollDepth != 48.5 {
		t.Fatalf("unexpected scroll depth: %v", in.ScrollDepth)
	}
	if string(in.RawPayload) != `{"metricName":"Traffic"}` {
		t.Fatalf("unexpected raw payload: %s", in.RawPayload)
	}
}

func TestCreateDailyMetric_Duplicate(t *testing.T) {
	fakeUC := &fakeStoreUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error) {
			// created = false → duplicate
			return false, nil
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics", CreateDailyMetricRequest{
		MetricDate: "2025-11-24",
		MetricName: "Traffic",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", body["status"])
	}
}

func TestCreateDailyMetric_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeStoreUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics", `{"metric_name":`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "invalid_json" {
		t.Errorf("expected error=invalid_json, got %v", body["error"])
	}
}

func TestCreateDailyMetric_ValidationErrors(t *testing.T) {
	for _, ucErr := range []error{
		fmt.Errorf("%w: metric_name is required", usecase.ErrInvalidDailyMetric),
		usecase.ErrFutureDate,
	} {
		fakeUC := &fakeStoreUseCase{
			ExecuteFunc: func(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error) {
				return false, ucErr
			},
		}
		app := setupTestApp(fakeUC)

		resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics", CreateDailyMetricRequest{})

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%v: expected status %d, got %d", ucErr, http.StatusBadRequest, resp.StatusCode)
		}
		if body["error"] != "invalid_daily_metric" {
			t.Errorf("%v: expected error=invalid_daily_metric, got %v", ucErr, body["error"])
		}
	}
}

func TestCreateDailyMetric_InternalError(t *testing.T) {
	fakeUC := &fakeStoreUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error) {
			return false, errors.New("db error")
		},
	}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics", CreateDailyMetricRequest{
		MetricDate: "2025-11-24",
		MetricName: "Traffic",
	})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	if body["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", body["error"])
	}
}

// ---- Bulk tests ----

func TestBulkCreateDailyMetrics_Mixed(t *testing.T) {
	fakeUC := &fakeStoreUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkStoreDailyMetricsInput) (usecase.BulkStoreDailyMetricsResult, error) {
			return usecase.BulkStoreDailyMetricsResult{Created: 1, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(fakeUC)

	reqBody := BulkCreateDailyMetricsRequest{
		Metrics: []CreateDailyMetricRequest{
			{MetricDate: "2025-11-24", MetricName: "Traffic", Sessions: 10},
			{MetricDate: "2025-11-24", MetricName: "Traffic", Sessions: 10},
		},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusCreated, resp.StatusCode, body)
	}
	if int(body["created"].(float64)) != 1 || int(body["duplicates"].(float64)) != 1 {
		t.Errorf("unexpected counts: %v", body)
	}
	if len(fakeUC.LastBulkInput.Metrics) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(fakeUC.LastBulkInput.Metrics))
	}
}

func TestBulkCreateDailyMetrics_EmptyList(t *testing.T) {
	fakeUC := &fakeStoreUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/daily-metrics/bulk", BulkCreateDailyMetricsRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
	if body["error"] != "metrics_list_required" {
		t.Errorf("expected error=metrics_list_required, got %v", body["error"])
	}
}

func TestBulkCreateDailyMetrics_ValidationError(t *testing.T) {
	fakeUC := &fakeStoreUseCase{
		BulkFunc: func(ctx context.Context, in usecase.BulkStoreDailyMetricsInput) (usecase.BulkStoreDailyMetricsResult, error) {
			return usecase.BulkStoreDailyMetricsResult{}, fmt.Errorf("metrics[1]: %w", usecase.ErrInvalidDailyMetric)
		},
	}
	app := setupTestApp(fakeUC)

	resp, _ := doRequest(t, app, http.MethodPost, "/daily-metrics/bulk", BulkCreateDailyMetricsRequest{
		Metrics: []CreateDailyMetricRequest{{MetricName: "Traffic"}},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
