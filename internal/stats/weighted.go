package stats

import (
	"github.com/dunkmaster/hoopstats/internal/types"
)

// WeightedAverage computes the mean of valueCol across rows weighted by
// weightCol (games played, unless a caller says otherwise):
// sum(value*weight) / sum(weight) over rows where both columns are
// present and non-missing. The result is Missing when the filtered row
// set is empty or the weights sum to zero. No rounding happens here;
// rounding belongs to presentation only so chained aggregates never
// compound rounding error.
func WeightedAverage(rows []types.Row, valueCol, weightCol string) types.Value {
	var weightedSum, weightSum float64
	counted := false
	for _, row := range rows {
		v, ok := row.Float(valueCol)
		if !ok {
			continue
		}
		w, ok := row.Float(weightCol)
		if !ok {
			continue
		}
		weightedSum += v * w
		weightSum += w
		counted = true
	}
	if !counted || weightSum == 0 {
		return types.Missing()
	}
	return types.Float(weightedSum / weightSum)
}

// SumColumn totals a numeric column across rows, skipping missing cells.
func SumColumn(rows []types.Row, col string) float64 {
	var sum float64
	for _, row := range rows {
		if v, ok := row.Float(col); ok {
			sum += v
		}
	}
	return sum
}
