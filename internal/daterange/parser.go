package daterange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidExpression = errors.New("invalid date expression")

// ParseError names the expression no grammar rule accepted.
type ParseError struct {
	Expression string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse date expression: %q", e.Expression)
}

func (e *ParseError) Unwrap() error { return ErrInvalidExpression }

// matcher returns ok=false when the expression is not in its grammar.
type matcher func(expr string, ref time.Time) (DateRange, bool)

// matchers are tried in order and the first hit wins. Year must stay ahead of
// numeric so that "2025" is a calendar year and not a 2025 day window.
var matchers = []matcher{
	matchCustomRange,
	matchQuarter,
	matchYear,
	matchMonth,
	matchRelative,
	matchNumeric,
}

// Parse resolves expression against reference (normally today).
func Parse(expression string, reference time.Time) (DateRange, error) {
	expr := strings.TrimSpace(expression)
	ref := Day(reference)

	for _, m := range matchers {
		if r, ok := m(expr, ref); ok {
			return r, nil
		}
	}
	return DateRange{}, &ParseError{Expression: expression}
}

var (
	customToRe    = regexp.MustCompile(`(?i)^(\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})$`)
	customColonRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):(\d{4}-\d{2}-\d{2})$`)
	quarterRe     = regexp.MustCompile(`(?i)^(?:(\d{4})[-\s]?Q(\d)|Q(\d)[-\s]?(\d{4}))$`)
	yearRe        = regexp.MustCompile(`^(\d{4})$`)
	yearMonthRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	monthNameRe   = regexp.MustCompile(`(?i)^([a-z]+)\.?(?:[\s,]+(\d{4}))?$`)
	numericRe     = regexp.MustCompile(`(?i)^(\d+)\s*(d|days?|w|weeks?|m|months?)?$`)
)

func matchCustomRange(expr string, _ time.Time) (DateRange, bool) {
	m := customToRe.FindStringSubmatch(expr)
	if m == nil {
		m = customColonRe.FindStringSubmatch(expr)
	}
	if m == nil {
		return DateRange{}, false
	}

	start, err := time.Parse(DateLayout, m[1])
	if err != nil {
		return DateRange{}, false
	}
	end, err := time.Parse(DateLayout, m[2])
	if err != nil {
		return DateRange{}, false
	}
	if start.After(end) {
		start, end = end, start
	}

	label := fmt.Sprintf("%s to %s", start.Format(DateLayout), end.Format(DateLayout))
	return must(start, end, label), true
}

func matchQuarter(expr string, _ time.Time) (DateRange, bool) {
	m := quarterRe.FindStringSubmatch(expr)
	if m == nil {
		return DateRange{}, false
	}

	yearStr, quarterStr := m[1], m[2]
	if yearStr == "" {
		yearStr, quarterStr = m[4], m[3]
	}
	year, _ := strconv.Atoi(yearStr)
	quarter, _ := strconv.Atoi(quarterStr)
	if quarter < 1 || quarter > 4 {
		return DateRange{}, false
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := Date(year, startMonth, 1)
	end := LastDayOfMonth(year, startMonth+2)
	return must(start, end, fmt.Sprintf("Q%d %d", quarter, year)), true
}

func matchYear(expr string, _ time.Time) (DateRange, bool) {
	m := yearRe.FindStringSubmatch(expr)
	if m == nil {
		return DateRange{}, false
	}
	year, _ := strconv.Atoi(m[1])
	return must(Date(year, time.January, 1), Date(year, time.December, 31), fmt.Sprintf("Year %d", year)), true
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sep":       time.September,
	"sept":      time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

func matchMonth(expr string, ref time.Time) (DateRange, bool) {
	if m := yearMonthRe.FindStringSubmatch(expr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return DateRange{}, false
		}
		return monthRange(year, time.Month(month)), true
	}

	m := monthNameRe.FindStringSubmatch(expr)
	if m == nil {
		return DateRange{}, false
	}
	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return DateRange{}, false
	}
	year := ref.Year()
	if m[2] != "" {
		year, _ = strconv.Atoi(m[2])
	}
	return monthRange(year, month), true
}

func monthRange(year int, month time.Month) DateRange {
	start := Date(year, month, 1)
	return must(start, LastDayOfMonth(year, month), start.Format("January 2006"))
}

func matchRelative(expr string, ref time.Time) (DateRange, bool) {
	switch strings.ReplaceAll(strings.ToLower(expr), "_", "-") {
	case "today", "now":
		return must(ref, ref, "Today"), true

	case "yesterday":
		y := ref.AddDate(0, 0, -1)
		return must(y, y, "Yesterday"), true

	case "last-week", "lastweek":
		// most recent Sunday strictly before the current Monday-based week
		end := ref.AddDate(0, 0, -(isoWeekday(ref) + 1))
		return must(end.AddDate(0, 0, -6), end, "Last week"), true

	case "this-week", "thisweek":
		monday := ref.AddDate(0, 0, -isoWeekday(ref))
		return must(monday, ref, "This week"), true

	case "last-month", "lastmonth":
		lastEnd := Date(ref.Year(), ref.Month(), 1).AddDate(0, 0, -1)
		lastStart := Date(lastEnd.Year(), lastEnd.Month(), 1)
		return must(lastStart, lastEnd, fmt.Sprintf("Last month (%s)", lastStart.Format("January 2006"))), true

	case "this-month", "thismonth":
		first := Date(ref.Year(), ref.Month(), 1)
		return must(first, ref, fmt.Sprintf("This month (%s)", ref.Format("January 2006"))), true
	}
	return DateRange{}, false
}

// isoWeekday counts days since Monday (Monday=0 ... Sunday=6).
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MaxWindowDays bounds numeric windows; n is checked before unit
// multiplication so the product cannot overflow.
const MaxWindowDays = 9999 * 366

var minDay = Date(1, time.January, 1)

func matchNumeric(expr string, ref time.Time) (DateRange, bool) {
	m := numericRe.FindStringSubmatch(expr)
	if m == nil {
		return DateRange{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > MaxWindowDays {
		return DateRange{}, false
	}

	days := n
	switch unit := strings.ToLower(m[2]); {
	case strings.HasPrefix(unit, "w"):
		days = n * 7
	case strings.HasPrefix(unit, "m"):
		// flat 30 day months, not calendar aware
		days = n * 30
	}
	if days > MaxWindowDays {
		return DateRange{}, false
	}

	start := ref.AddDate(0, 0, -(days - 1))
	if start.Before(minDay) {
		return DateRange{}, false
	}
	return must(start, ref, fmt.Sprintf("Last %d days", days)), true
}
