// Package report renders comparison and trend results as plain text. It
// holds no computation of its own.
package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ux-metrics-service/internal/metrics/core/domain"
)

// TopN caps the improvements and regressions listed in a comparison.
const TopN = 5

var (
	rule    = strings.Repeat("=", 60)
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

type writer struct {
	b strings.Builder
}

func (w *writer) line(format string, args ...any) {
	w.b.WriteString(printer.Sprintf(format, args...))
	w.b.WriteByte('\n')
}

func (w *writer) section(name string) {
	w.line("")
	w.line(rule)
	w.line(name)
	w.line(rule)
}

func (w *writer) String() string { return w.b.String() }

// Label turns a field name such as "rage_clicks_rate" into "Rage Clicks Rate".
func Label(f domain.Field) string {
	return title.String(strings.ReplaceAll(string(f), "_", " "))
}

var keyFields = []domain.Field{domain.FieldSessions, domain.FieldUsers, domain.FieldPageViews}

func FormatComparison(c *domain.ComparisonResult) string {
	var w writer
	w.line(rule)
	w.line("PERIOD COMPARISON")
	w.line(rule)

	w.line("")
	w.line("Period 1: %s to %s (%d days)", c.Current.Range.StartString(), c.Current.Range.EndString(), c.Current.Range.Days())
	w.line("Period 2: %s to %s (%d days)", c.Previous.Range.StartString(), c.Previous.Range.EndString(), c.Previous.Range.Days())
	if c.MetricName != "" {
		w.line("Metric: %s (%s)", c.MetricName, c.Scope)
	}

	w.section("KEY METRICS")
	for _, f := range keyFields {
		ch, ok := c.Change(f)
		if !ok {
			continue
		}
		w.line("")
		w.line("%s:", Label(f))
		w.line("  Current: %.0f | Previous: %.0f", ch.Current, ch.Previous)
		w.line("  Change: %+.0f (%+.1f%%) [%s]", ch.AbsoluteChange, ch.PercentChange, ch.Direction)
	}

	ranked := func(name, mark string, list []domain.RankedChange) {
		if len(list) == 0 {
			return
		}
		w.section(name)
		for i, r := range list {
			if i == TopN {
				break
			}
			w.line("")
			w.line("%s %s: %+.1f%% (%+.2f)", mark, Label(r.Field), r.PercentChange, r.AbsoluteChange)
		}
	}
	ranked("IMPROVEMENTS", "✓", c.Improvements)
	ranked("REGRESSIONS", "✗", c.Regressions)

	w.line("")
	w.line(rule)
	w.line("Overall: %s", verdict(len(c.Improvements), len(c.Regressions)))
	return w.String()
}

func verdict(improvements, regressions int) string {
	switch {
	case improvements == 0 && regressions == 0:
		return "no significant change"
	case improvements > regressions:
		return "improving"
	case regressions > improvements:
		return "declining"
	default:
		return "mixed"
	}
}

func FormatTrend(a *domain.TrendAnalysis) string {
	var w writer
	w.line(rule)
	w.line("LONG-TERM TREND ANALYSIS")
	w.line(rule)

	if a.Empty() {
		w.line("")
		w.line("No data found for %s", a.Range)
		return w.String()
	}

	w.line("")
	w.line("Period: %s to %s", a.Range.StartString(), a.Range.EndString())
	w.line("Duration: %d days (%d data points)", a.Range.Days(), a.DataPoints)

	w.section("OVERALL METRICS")
	s := a.Overall.Sessions
	w.line("")
	w.line("Sessions:")
	w.line("  Total: %d", s.Total)
	w.line("  Average per day: %.0f", s.AveragePerDay)
	w.line("  Range: %d - %d", s.Min, s.Max)
	f := a.Overall.Frustration
	w.line("")
	w.line("Frustration Signals:")
	w.line("  Total: %d", f.Total)
	w.line("  Per session: %.2f", f.PerSession)

	if g := a.Growth; g.Sufficient {
		w.section("GROWTH ANALYSIS")
		w.line("")
		w.line("Total Growth: %+.1f%%", g.TotalGrowth)
		w.line("  First period: %d sessions", g.FirstPeriodSessions)
		w.line("  Last period: %d sessions", g.LastPeriodSessions)
		w.line("  Absolute change: %+d", g.AbsoluteChange)
		if g.CAGR != nil {
			w.line("")
			w.line("Compound Annual Growth Rate (CAGR): %+.1f%%", *g.CAGR)
		}
		w.line("")
		w.line("Average Daily Growth: %+.2f%%", g.AvgDailyGrowth)
	}

	if v := a.Volatility; v.Sufficient {
		w.section("VOLATILITY ANALYSIS")
		w.line("")
		w.line("Mean: %.0f sessions/day", v.Mean)
		w.line("Standard Deviation: %.0f", v.StdDev)
		w.line("Coefficient of Variation: %.1f%%", v.CoefficientOfVariation)
		w.line("Stability: %s", strings.ToUpper(string(v.Stability)))
	}

	if t := a.Trend; t.Sufficient {
		w.section("TREND ANALYSIS")
		w.line("")
		w.line("Direction: %s", strings.ToUpper(string(t.Direction)))
		w.line("Slope: %+.2f sessions/day", t.Slope)
		w.line("R-squared: %.3f", t.RSquared)
		w.line("Strength: %s", strings.ToUpper(string(t.Strength)))
	}

	if p := a.Patterns; p.Sufficient {
		w.section("PATTERN ANALYSIS")
		w.line("")
		w.line("Peaks detected: %d", len(p.Peaks))
		w.line("Valleys detected: %d", len(p.Valleys))
		if p.AvgPeakDistance != nil {
			w.line("Average peak distance: %.1f days", *p.AvgPeakDistance)
		}
		if p.WeeklyPatternDetected {
			w.line("")
			w.line("✓ Weekly pattern detected (peaks ~7 days apart)")
		}
		if p.Cyclical {
			w.line("✓ Cyclical pattern present")
		}
	}

	w.line("")
	w.line(rule)
	return w.String()
}
