package fiber

import (
	"net/http"

	"ux-metrics-service/internal/metrics/core/domain"
	"ux-metrics-service/internal/metrics/core/usecase"
	"ux-metrics-service/internal/report"

	"github.com/gofiber/fiber/v2"
)

// ComparePeriods godoc
// @Summary Compare two periods
// @Description Without period2 the current period is compared with the equally long period right before it. format=text returns the plain text report.
// @Tags Analysis
// @Produce json
// @Produce plain
// @Param period1 query string true "Current period date expression"
// @Param period2 query string false "Previous period date expression"
// @Param metric_name query string false "Metric name; all metrics when empty"
// @Param data_scope query string false "general or page" default(general)
// @Param format query string false "json or text" default(json)
// @Success 200 {object} ComparisonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comparisons [get]
func (h *MetricsHandler) ComparePeriods(c *fiber.Ctx) error {
	current, err := h.parseRange(c, "period1")
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.UserContext()
	name := optional(c, "metric_name")
	scope := c.Query("data_scope")

	var result *domain.ComparisonResult
	if c.Query("period2") == "" {
		result, err = h.compareUC.CompareToPrevious(ctx, current, name, scope)
	} else {
		previous, perr := h.parseRange(c, "period2")
		if perr != nil {
			return writeError(c, perr)
		}
		result, err = h.compareUC.Compare(ctx, usecase.ComparePeriodsInput{
			Current:    current,
			Previous:   previous,
			MetricName: name,
			Scope:      scope,
		})
	}
	if err != nil {
		return writeError(c, err)
	}

	if wantsText(c) {
		return c.Status(http.StatusOK).SendString(report.FormatComparison(result))
	}
	return c.Status(http.StatusOK).JSON(toComparison(result))
}

// AnalyzeTrend godoc
// @Summary Analyze the sessions trend of one metric
// @Description Sub-analyses that lack data points carry only a note. format=text returns the plain text report.
// @Tags Analysis
// @Produce json
// @Produce plain
// @Param range query string true "Date expression"
// @Param metric_name query string false "Metric name" default(Traffic)
// @Param data_scope query string false "general or page" default(general)
// @Param format query string false "json or text" default(json)
// @Success 200 {object} TrendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No daily rows in range"
// @Failure 500 {object} ErrorResponse
// @Router /trends [get]
func (h *MetricsHandler) AnalyzeTrend(c *fiber.Ctx) error {
	rng, err := h.parseRange(c, "range")
	if err != nil {
		return writeError(c, err)
	}

	a, err := h.trendUC.Execute(c.UserContext(), usecase.AnalyzeTrendInput{
		Range:      rng,
		MetricName: c.Query("metric_name"),
		Scope:      c.Query("data_scope"),
	})
	if err != nil {
		return writeError(c, err)
	}

	if wantsText(c) {
		return c.Status(http.StatusOK).SendString(report.FormatTrend(a))
	}
	if a.Empty() {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_data",
			Message: "no daily metrics found for " + a.MetricName + " in " + rng.String(),
		})
	}
	return c.Status(http.StatusOK).JSON(toTrend(a))
}

// CheckFrustration godoc
// @Summary Check frustration signals against the alert threshold
// @Description Sends an alert through the configured notifier when signals per 100 sessions exceed the threshold
// @Tags Alerts
// @Produce json
// @Param range query string true "Date expression" default(7d)
// @Param metric_name query string false "Metric name" default(Traffic)
// @Param data_scope query string false "general or page" default(general)
// @Success 200 {object} FrustrationAlertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts/frustration [post]
func (h *MetricsHandler) CheckFrustration(c *fiber.Ctx) error {
	rng, err := h.parseRange(c, "range")
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.alertUC.Execute(c.UserContext(), usecase.FrustrationCheckInput{
		Range:      rng,
		MetricName: c.Query("metric_name"),
		Scope:      c.Query("data_scope"),
	})
	if err != nil {
		return writeError(c, err)
	}

	a := res.Alert
	f := a.Frustration
	return c.Status(http.StatusOK).JSON(FrustrationAlertResponse{
		Period:     toPeriod(a.Range),
		MetricName: a.MetricName,
		DataScope:  string(a.Scope),
		Sessions:   a.Sessions,
		Frustration: FrustrationResponse{
			DeadClicks: f.DeadClicks,
			RageClicks: f.RageClicks,
			QuickBacks: f.QuickBacks,
			Total:      f.Total,
			PerSession: f.PerSession,
		},
		Percentage: a.Percentage,
		Threshold:  a.Threshold,
		Triggered:  res.Triggered,
	})
}
