// Package daterange turns human friendly period expressions ("7", "last-week",
// "2025-Q4", "Nov 2025", "2025-11-01 to 2025-11-30") into inclusive calendar
// date ranges. It does no I/O.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used for parsing and display.
const DateLayout = "2006-01-02"

var ErrStartAfterEnd = errors.New("range start is after range end")

const secondsPerDay = 24 * 60 * 60

// DateRange is an inclusive [Start, End] span of whole days. Values are
// immutable; both bounds are normalised to midnight UTC.
type DateRange struct {
	start time.Time
	end   time.Time
	label string
}

// New builds a DateRange, truncating both bounds to their calendar day.
func New(start, end time.Time, label string) (DateRange, error) {
	s, e := Day(start), Day(end)
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrStartAfterEnd, s.Format(DateLayout), e.Format(DateLayout))
	}
	return DateRange{start: s, end: e, label: label}, nil
}

// must is used by the parser where start <= end holds by construction.
func must(start, end time.Time, label string) DateRange {
	r, err := New(start, end, label)
	if err != nil {
		panic(err)
	}
	return r
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) Label() string    { return r.label }

// IsZero reports whether r is the zero value.
func (r DateRange) IsZero() bool { return r.start.IsZero() && r.end.IsZero() }

// Days is the number of calendar days covered, bounds included.
func (r DateRange) Days() int {
	// Unix seconds do not saturate like time.Duration does past ~292 years.
	return int((r.end.Unix()-r.start.Unix())/secondsPerDay) + 1
}

// Contains reports whether day t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.start) && !d.After(r.end)
}

// Previous returns the period of identical length that ends the day before r
// starts.
func (r DateRange) Previous() DateRange {
	end := r.start.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(r.Days() - 1))
	return must(start, end, fmt.Sprintf("Previous %d days", r.Days()))
}

// StartString and EndString format the bounds as ISO dates (the form the
// store compares against).
func (r DateRange) StartString() string { return r.start.Format(DateLayout) }
func (r DateRange) EndString() string   { return r.end.Format(DateLayout) }

func (r DateRange) String() string {
	if r.label != "" {
		return fmt.Sprintf("%s (%s to %s)", r.label, r.StartString(), r.EndString())
	}
	return fmt.Sprintf("%s to %s", r.StartString(), r.EndString())
}

// Day truncates t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date is shorthand for a UTC calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the final calendar day of the given month, rolling
// December over into the next year correctly.
func LastDayOfMonth(year int, month time.Month) time.Time {
	return Date(year, month+1, 0)
}
