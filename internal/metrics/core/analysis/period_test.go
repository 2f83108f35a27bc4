package analysis

import (
	"math"
	"testing"
	"time"

	"ux-metrics-service/internal/daterange"
	"ux-metrics-service/internal/metrics/core/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 11, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) daterange.DateRange {
	t.Helper()
	r, err := daterange.New(start, end, "")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	return r
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizePeriod_WeightsBySessions(t *testing.T) {
	rng := mustRange(t, day(1), day(7))
	rows := []domain.DailyMetric{
		{MetricDate: day(1), Sessions: 100, Users: 90, DeadClicks: 10, ScrollDepth: 40, EngagementTime: 30},
		{MetricDate: day(2), Sessions: 300, Users: 200, DeadClicks: 10, ScrollDepth: 80, EngagementTime: 70},
	}

	s := SummarizePeriod(rng, rows)

	if s.Rows != 2 || s.Sessions != 400 || s.Users != 290 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if !approx(s.AvgScrollDepth, 70) {
		t.Fatalf("expected weighted scroll depth 70, got %v", s.AvgScrollDepth)
	}
	if !approx(s.AvgTimeOnPage, 60) {
		t.Fatalf("expected weighted time on page 60, got %v", s.AvgTimeOnPage)
	}
	if !approx(s.DeadClicksRate, 0.05) {
		t.Fatalf("expected dead click rate 0.05, got %v", s.DeadClicksRate)
	}
}

func TestSummarizePeriod_NoSessions(t *testing.T) {
	rng := mustRange(t, day(1), day(1))
	s := SummarizePeriod(rng, []domain.DailyMetric{{MetricDate: day(1), DeadClicks: 4, ScrollDepth: 50}})

	if s.AvgScrollDepth != 0 || s.DeadClicksRate != 0 {
		t.Fatalf("expected zero averages without sessions, got %+v", s)
	}
	for _, fv := range s.Values() {
		if fv.Field == domain.FieldDeadClicksRate || fv.Field == domain.FieldAvgScrollDepth {
			t.Fatalf("field %s should be undefined without sessions", fv.Field)
		}
	}
	if len(s.Values()) != 10 {
		t.Fatalf("expected 10 count fields, got %d", len(s.Values()))
	}
}

func TestSummarizePeriod_Empty(t *testing.T) {
	s := SummarizePeriod(mustRange(t, day(1), day(2)), nil)
	if s.Rows != 0 || s.Values() != nil {
		t.Fatalf("expected an empty summary, got %+v", s)
	}
}
