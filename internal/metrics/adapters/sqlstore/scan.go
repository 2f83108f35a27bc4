package sqlstore

import (
	"fmt"
	"strings"
	"time"

	"ux-metrics-service/internal/daterange"
)

// sqlite hands dates back as TEXT, postgres as time.Time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	daterange.DateLayout,
}

// toTime converts a scanned date or timestamp column. ok is false for NULL.
func toTime(v any) (t time.Time, ok bool, err error) {
	var s string
	switch x := v.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return x.UTC(), true, nil
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return time.Time{}, false, fmt.Errorf("unexpected date type %T", v)
	}

	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unparseable date %q", s)
}

// toDay is toTime truncated to the calendar day.
func toDay(v any) (time.Time, bool, error) {
	t, ok, err := toTime(v)
	if err != nil || !ok {
		return t, ok, err
	}
	return daterange.Day(t), true, nil
}
