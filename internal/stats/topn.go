package stats

import (
	"sort"

	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/types"
)

// FilterSeason returns the rows whose season equals the given season
// after numeric coercion, preserving load order. Rows with a missing
// season never match.
func FilterSeason(t *dataset.Table, season int) []types.Row {
	if !t.HasColumn(types.ColSeason) {
		return nil
	}
	var out []types.Row
	for _, row := range t.Rows {
		if s, ok := row.Float(types.ColSeason); ok && s == float64(season) {
			out = append(out, row)
		}
	}
	return out
}

// SeasonTopN ranks a season's rows by a metric column, descending, and
// returns the first n. Rows with a missing metric are excluded. The sort
// is stable, so ties keep the table's load order. n is clamped at zero;
// n=0 yields an empty result, not an error.
func SeasonTopN(t *dataset.Table, season int, metricCol string, n int) []types.Row {
	if n < 0 {
		n = 0
	}
	if !t.HasColumn(metricCol) {
		return nil
	}

	var ranked []types.Row
	for _, row := range FilterSeason(t, season) {
		if _, ok := row.Float(metricCol); ok {
			ranked = append(ranked, row)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, _ := ranked[i].Float(metricCol)
		b, _ := ranked[j].Float(metricCol)
		return a > b
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
