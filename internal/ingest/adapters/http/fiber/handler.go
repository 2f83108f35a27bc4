package fiber

import (
	"context"
	"errors"
	"net/http"

	"ux-metrics-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreDailyMetricUseCase interface {
	Execute(ctx context.Context, in usecase.StoreDailyMetricInput) (bool, error)
	BulkStore(ctx context.Context, in usecase.BulkStoreDailyMetricsInput) (usecase.BulkStoreDailyMetricsResult, error)
}

type IngestHandler struct {
	storeUC StoreDailyMetricUseCase
}

func NewIngestHandler(storeUC StoreDailyMetricUseCase) *IngestHandler {
	return &IngestHandler{storeUC: storeUC}
}

// Register mounts the ingestion routes.
func (h *IngestHandler) Register(r fiber.Router) {
	r.Post("/daily-metrics", h.CreateDailyMetric)
	r.Post("/daily-metrics/bulk", h.BulkCreateDailyMetrics)
}

// CreateDailyMetric godoc
// @Summary Store a daily metric row
// @Description Stores one daily metric; an existing row with the same key is kept and the request reports "duplicate"
// @Tags Ingest
// @Accept json
// @Produce json
// @Param request body CreateDailyMetricRequest true "Daily metric payload"
// @Success 201 {object} CreateDailyMetricResponse
// @Success 200 {object} CreateDailyMetricResponse "Duplicate row"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /daily-metrics [post]
func (h *IngestHandler) CreateDailyMetric(c *fiber.Ctx) error {
	var req CreateDailyMetricRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateDailyMetricResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateDailyMetricResponse{Status: "created"})
}

// BulkCreateDailyMetrics godoc
// @Summary Bulk store daily metric rows
// @Description Validates every row, then stores the batch in one transaction
// @Tags Ingest
// @Accept json
// @Produce json
// @Param request body BulkCreateDailyMetricsRequest true "Bulk payload"
// @Success 201 {object} BulkCreateDailyMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /daily-metrics/bulk [post]
func (h *IngestHandler) BulkCreateDailyMetrics(c *fiber.Ctx) error {
	var req BulkCreateDailyMetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Metrics) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "metrics_list_required",
		})
	}

	inputs := make([]usecase.StoreDailyMetricInput, len(req.Metrics))
	for i, m := range req.Metrics {
		inputs[i] = toInput(m)
	}

	result, err := h.storeUC.BulkStore(c.UserContext(), usecase.BulkStoreDailyMetricsInput{Metrics: inputs})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateDailyMetricsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDailyMetric),
		errors.Is(err, usecase.ErrFutureDate),
		errors.Is(err, usecase.ErrEmptyBatch):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_daily_metric",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateDailyMetricRequest) usecase.StoreDailyMetricInput {
	dims := make([]usecase.DimensionInput, len(req.Dimensions))
	for i, d := range req.Dimensions {
		dims[i] = usecase.DimensionInput{Name: d.Name, Value: d.Value}
	}

	return usecase.StoreDailyMetricInput{
		MetricDate:       req.MetricDate,
		MetricName:       req.MetricName,
		Scope:            req.DataScope,
		PageID:           req.PageID,
		Dimensions:       dims,
		Sessions:         req.Sessions,
		Users:            req.Users,
		BotSessions:      req.BotSessions,
		PageViews:        req.PageViews,
		PagesPerSession:  req.PagesPerSession,
		MobileSessions:   req.MobileSessions,
		DesktopSessions:  req.DesktopSessions,
		TabletSessions:   req.TabletSessions,
		DeadClicks:       req.DeadClicks,
		RageClicks:       req.RageClicks,
		QuickBacks:       req.QuickBacks,
		ErrorClicks:      req.ErrorClicks,
		ScriptErrors:     req.ScriptErrors,
		ExcessiveScrolls: req.ExcessiveScrolls,
		ScrollDepth:      req.ScrollDepth,
		EngagementTime:   req.EngagementTime,
		ActiveTime:       req.ActiveTime,
		RawPayload:       req.RawPayload,
	}
}
