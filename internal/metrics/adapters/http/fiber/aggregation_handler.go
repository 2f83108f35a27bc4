package fiber

import (
	"net/http"

	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// AggregateWeekly godoc
// @Summary Compute or fetch one ISO week aggregate
// @Description Serves the cached row unless force is set; weeks without daily rows report "empty"
// @Tags Aggregations
// @Accept json
// @Produce json
// @Param request body WeeklyAggregationRequest true "ISO week"
// @Success 200 {object} WeeklyAggregationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregations/weekly [post]
func (h *MetricsHandler) AggregateWeekly(c *fiber.Ctx) error {
	var req WeeklyAggregationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	agg, outcome, err := h.aggregateUC.Weekly(c.UserContext(), usecase.WeeklyInput{
		Year:       req.Year,
		Week:       req.Week,
		MetricName: req.MetricName,
		Scope:      req.DataScope,
		PageID:     req.PageID,
		Force:      req.Force,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := WeeklyAggregationResponse{Outcome: string(outcome)}
	if agg != nil {
		resp.Aggregate = &WeeklyAggregateResponse{
			WeekStart:           isoDate(agg.WeekStart),
			WeekEnd:             isoDate(agg.WeekEnd),
			Year:                agg.Year,
			WeekNumber:          agg.Week,
			MetricName:          agg.MetricName,
			DataScope:           string(agg.Scope),
			PageID:              agg.PageID,
			MetricStatsResponse: toStats(agg.MetricStats, false),
			ComputedAt:          agg.ComputedAt,
		}
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// AggregateMonthly godoc
// @Summary Compute or fetch one calendar month aggregate
// @Tags Aggregations
// @Accept json
// @Produce json
// @Param request body MonthlyAggregationRequest true "Calendar month"
// @Success 200 {object} MonthlyAggregationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregations/monthly [post]
func (h *MetricsHandler) AggregateMonthly(c *fiber.Ctx) error {
	var req MonthlyAggregationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	agg, outcome, err := h.aggregateUC.Monthly(c.UserContext(), usecase.MonthlyInput{
		Year:       req.Year,
		Month:      req.Month,
		MetricName: req.MetricName,
		Scope:      req.DataScope,
		PageID:     req.PageID,
		Force:      req.Force,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := MonthlyAggregationResponse{Outcome: string(outcome)}
	if agg != nil {
		resp.Aggregate = toMonthly(agg)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// AggregateAll godoc
// @Summary Aggregate every week and month that has daily data
// @Description Failures of single periods are counted, not fatal
// @Tags Aggregations
// @Produce json
// @Param force query bool false "Recompute cached periods"
// @Success 200 {object} AggregationRunResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregations/all [post]
func (h *MetricsHandler) AggregateAll(c *fiber.Ctx) error {
	run, err := h.aggregateUC.All(c.UserContext(), c.QueryBool("force", false))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(AggregationRunResponse{
		RunID:         run.RunID,
		From:          isoDate(run.From),
		To:            isoDate(run.To),
		WeeklyCount:   run.Weekly,
		MonthlyCount:  run.Monthly,
		WeeklyFailed:  run.WeeklyFailed,
		MonthlyFailed: run.MonthlyFailed,
	})
}

func toMonthly(agg *domain.MonthlyAggregate) *MonthlyAggregateResponse {
	return &MonthlyAggregateResponse{
		Year:                agg.Year,
		Month:               int(agg.Month),
		MonthStart:          isoDate(agg.MonthStart),
		MonthEnd:            isoDate(agg.MonthEnd),
		MetricName:          agg.MetricName,
		DataScope:           string(agg.Scope),
		PageID:              agg.PageID,
		MetricStatsResponse: toStats(agg.MetricStats, true),
		ComputedAt:          agg.ComputedAt,
	}
}
