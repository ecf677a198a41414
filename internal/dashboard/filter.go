// Package dashboard implements the filtering and aggregation pipeline
// behind the air quality dashboard: a month-range dataset filter and a
// view model builder that turns a filtered subset plus the current view
// parameters into summary statistics and a chart specification.
//
// Both entry points are pure functions. All state lives in the caller's
// parameter snapshot, which the UI layer rebuilds on every interaction.
package dashboard

import "github.com/aqdash-org/aqdash/internal/types"

// FilterByMonth returns the records whose month falls within the
// inclusive bounds, preserving original dataset order. Out-of-range
// bounds are clamped into [types.MonthMin, types.MonthMax] before the
// predicate is applied. A lower bound above the upper bound selects
// nothing; the bounds are never swapped.
func FilterByMonth(records []types.Record, p types.FilterParams) []types.Record {
	lo := clampMonth(p.MonthMin)
	hi := clampMonth(p.MonthMax)

	filtered := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if rec.Month >= lo && rec.Month <= hi {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func clampMonth(m int) int {
	if m < types.MonthMin {
		return types.MonthMin
	}
	if m > types.MonthMax {
		return types.MonthMax
	}
	return m
}
