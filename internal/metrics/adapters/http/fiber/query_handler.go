package fiber

import (
	"net/http"

	"ux-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// GetMetrics godoc
// @Summary Query daily metric rows
// @Description Returns daily rows inside a date expression, newest first
// @Tags Metrics
// @Produce json
// @Param range query string true "Date expression, e.g. '30d', 'last-week', 'November 2025', '2025-Q4', '2025-11-01 to 2025-11-30'"
// @Param data_scope query string false "general or page" default(general)
// @Param metric_name query string false "Metric name"
// @Param page_id query string false "Page id"
// @Param dimension1_name query string false "First dimension name"
// @Param dimension1_value query string false "First dimension value (requires dimension1_name)"
// @Success 200 {object} QueryMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	rng, err := h.parseRange(c, "range")
	if err != nil {
		return writeError(c, err)
	}

	rows, err := h.queryUC.Query(c.UserContext(), usecase.QueryMetricsInput{
		Range:           rng,
		Scope:           c.Query("data_scope"),
		MetricName:      optional(c, "metric_name"),
		PageID:          optional(c, "page_id"),
		Dimension1Name:  optional(c, "dimension1_name"),
		Dimension1Value: optional(c, "dimension1_value"),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := QueryMetricsResponse{
		Period:  toPeriod(rng),
		Count:   len(rows),
		Metrics: make([]DailyMetricResponse, 0, len(rows)),
	}
	for _, m := range rows {
		resp.Metrics = append(resp.Metrics, toDailyMetric(m))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetSummary godoc
// @Summary Summarize one metric over a date expression
// @Tags Metrics
// @Produce json
// @Param range query string true "Date expression"
// @Param metric_name query string true "Metric name"
// @Param data_scope query string false "general or page" default(general)
// @Param page_id query string false "Page id"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/summary [get]
func (h *MetricsHandler) GetSummary(c *fiber.Ctx) error {
	rng, err := h.parseRange(c, "range")
	if err != nil {
		return writeError(c, err)
	}

	s, err := h.queryUC.Summary(c.UserContext(), usecase.SummaryInput{
		Range:      rng,
		MetricName: c.Query("metric_name"),
		Scope:      c.Query("data_scope"),
		PageID:     optional(c, "page_id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SummaryResponse{
		Period:              toPeriod(s.Range),
		MetricName:          s.MetricName,
		DataScope:           string(s.Scope),
		PageID:              s.PageID,
		MetricStatsResponse: toStats(s.MetricStats, true),
	})
}

// GetAvailableDates godoc
// @Summary List dates that have daily data
// @Tags Metrics
// @Produce json
// @Param data_scope query string false "general or page" default(general)
// @Success 200 {object} AvailableDatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/dates [get]
func (h *MetricsHandler) GetAvailableDates(c *fiber.Ctx) error {
	scope := c.Query("data_scope")
	dates, err := h.queryUC.AvailableDates(c.UserContext(), scope)
	if err != nil {
		return writeError(c, err)
	}

	resp := AvailableDatesResponse{DataScope: scope, Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, isoDate(d))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetStatus godoc
// @Summary Report stored data extent
// @Tags Metrics
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/status [get]
func (h *MetricsHandler) GetStatus(c *fiber.Ctx) error {
	b, err := h.queryUC.Status(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := StatusResponse{Rows: b.Rows, Days: b.Days}
	if b.HasData {
		resp.MinDate = isoDate(b.MinDate)
		resp.MaxDate = isoDate(b.MaxDate)
	}
	return c.Status(http.StatusOK).JSON(resp)
}
