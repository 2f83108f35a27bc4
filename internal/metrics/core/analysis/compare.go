package analysis

import (
	"math"
	"sort"

	"ux-metrics-service/internal/metrics/core/domain"
)

// NewActivityPercent is reported when a field grows from zero. It is a
// placeholder, not a measured rate.
const NewActivityPercent = 100.0

// PercentChange is (curr-prev)/prev*100, with prev == 0 mapped to 0 (no
// change) or NewActivityPercent.
func PercentChange(curr, prev float64) float64 {
	if prev == 0 {
		if curr == 0 {
			return 0
		}
		return NewActivityPercent
	}
	return (curr - prev) / prev * 100
}

// Compare computes per-field changes for every field defined in both
// summaries and classifies them with the field polarity table. Improvements
// and regressions are ordered by |percent change|, largest first.
func Compare(current, previous domain.PeriodSummary) ([]domain.FieldChange, []domain.RankedChange, []domain.RankedChange) {
	prevValues := make(map[domain.Field]float64)
	for _, fv := range previous.Values() {
		prevValues[fv.Field] = fv.Value
	}

	var (
		changes      []domain.FieldChange
		improvements []domain.RankedChange
		regressions  []domain.RankedChange
	)

	for _, fv := range current.Values() {
		prev, ok := prevValues[fv.Field]
		if !ok {
			continue
		}

		abs := fv.Value - prev
		ch := domain.FieldChange{
			Field:          fv.Field,
			Current:        fv.Value,
			Previous:       prev,
			AbsoluteChange: abs,
			PercentChange:  PercentChange(fv.Value, prev),
			Direction:      directionOf(abs),
		}
		changes = append(changes, ch)

		ranked := domain.RankedChange{Field: ch.Field, PercentChange: ch.PercentChange, AbsoluteChange: abs}
		switch classify(fv.Field, abs) {
		case 1:
			improvements = append(improvements, ranked)
		case -1:
			regressions = append(regressions, ranked)
		}
	}

	byImpact := func(list []domain.RankedChange) {
		sort.SliceStable(list, func(i, j int) bool {
			return math.Abs(list[i].PercentChange) > math.Abs(list[j].PercentChange)
		})
	}
	byImpact(improvements)
	byImpact(regressions)

	return changes, improvements, regressions
}

func directionOf(abs float64) domain.Direction {
	switch {
	case abs > 0:
		return domain.DirectionUp
	case abs < 0:
		return domain.DirectionDown
	default:
		return domain.DirectionFlat
	}
}

// classify returns 1 for an improvement, -1 for a regression, 0 otherwise.
func classify(f domain.Field, abs float64) int {
	if abs == 0 {
		return 0
	}
	switch f.Polarity() {
	case domain.HigherIsBetter:
		if abs > 0 {
			return 1
		}
		return -1
	case domain.HigherIsWorse:
		if abs < 0 {
			return 1
		}
		return -1
	default:
		return 0
	}
}
