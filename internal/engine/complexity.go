package engine

import "math"

// Round2 rounds to 2 decimal places. Monetary values and the global
// complexity are rounded with it at the presentation/persistence boundary;
// intermediate arithmetic keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ScoreComplexity computes the global complexity multiplier as the weighted
// mean of the selected levels: Σ(level·weight) / Σ(weight) over factors that
// have a selection. A zero total weight (nothing selected, or all selected
// factors weightless) returns 0, the "not yet computable" sentinel; a real
// result is always in [1,5] when the selected factors carry positive weight,
// so 0 is unambiguous.
func ScoreComplexity(factors []Factor, selections Selections) float64 {
	var weighted, total float64
	for _, f := range factors {
		level, ok := selections[f.ID]
		if !ok {
			continue
		}
		weighted += float64(level) * f.Weight
		total += f.Weight
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}
