package engine

import "math"

// KellyStake returns the fraction of bankroll the Kelly criterion would
// commit to an outcome with the given win probability and decimal odds,
// scaled by fraction. Returns 0 for non-positive edges, degenerate inputs or
// a zero fraction.
func KellyStake(probability, odds, fraction float64) float64 {
	if probability <= 0 || probability >= 1 || odds <= 1 || fraction <= 0 {
		return 0
	}
	b := odds - 1.0
	q := 1.0 - probability
	kelly := (b*probability - q) / b
	if kelly <= 0 || math.IsNaN(kelly) {
		return 0
	}
	return kelly * fraction
}
