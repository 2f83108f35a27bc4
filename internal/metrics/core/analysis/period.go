// Package analysis holds the pure numeric side of the metrics core: period
// reduction, change classification and the trend statistics. Nothing here
// touches storage or formats text.
package analysis

import (
	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
)

// SummarizePeriod reduces rows to a PeriodSummary. Engagement figures are
// weighted by each row's sessions; rates are per session. Both stay zero when
// the period has no sessions.
func SummarizePeriod(rng daterange.DateRange, rows []domain.DailyMetric) domain.PeriodSummary {
	s := domain.PeriodSummary{Range: rng, Rows: len(rows)}

	var scrollW, timeW, activeW float64
	for _, m := range rows {
		s.Sessions += m.Sessions
		s.Users += m.Users
		s.PageViews += m.PageViews
		s.MobileSessions += m.MobileSessions
		s.DesktopSessions += m.DesktopSessions
		s.TabletSessions += m.TabletSessions
		s.DeadClicks += m.DeadClicks
		s.RageClicks += m.RageClicks
		s.QuickBacks += m.QuickBacks
		s.ErrorClicks += m.ErrorClicks

		w := float64(m.Sessions)
		scrollW += m.ScrollDepth * w
		timeW += m.EngagementTime * w
		activeW += m.ActiveTime * w
	}

	if s.Sessions > 0 {
		total := float64(s.Sessions)
		s.AvgScrollDepth = scrollW / total
		s.AvgTimeOnPage = timeW / total
		s.AvgActiveTime = activeW / total
		s.DeadClicksRate = float64(s.DeadClicks) / total
		s.RageClicksRate = float64(s.RageClicks) / total
		s.QuickBacksRate = float64(s.QuickBacks) / total
		s.ErrorClicksRate = float64(s.ErrorClicks) / total
	}
	return s
}
