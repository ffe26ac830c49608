package models

// Outcome identifies a side of a match market.
type Outcome string

const (
	OutcomeTeam1 Outcome = "team1"
	OutcomeTeam2 Outcome = "team2"
	OutcomeDraw  Outcome = "draw"
)

// OutcomeValuation holds the per-outcome numbers the valuator computes.
type OutcomeValuation struct {
	Outcome            Outcome `db:"outcome" json:"outcome"`
	Odds               float64 `db:"odds" json:"odds"`
	ImpliedProbability float64 `db:"implied_probability" json:"implied_probability"`
	ActualProbability  float64 `db:"actual_probability" json:"actual_probability"`
	ExpectedValue      float64 `db:"expected_value" json:"expected_value"`
}

// Recommendation is an outcome whose expected value cleared the configured
// threshold, with an optional fractional-Kelly stake suggestion.
type Recommendation struct {
	Outcome            Outcome `db:"outcome" json:"outcome"`
	Odds               float64 `db:"odds" json:"odds"`
	ImpliedProbability float64 `db:"implied_probability" json:"implied_probability"`
	ActualProbability  float64 `db:"actual_probability" json:"actual_probability"`
	ExpectedValue      float64 `db:"expected_value" json:"expected_value"`
	SuggestedStake     float64 `db:"suggested_stake" json:"suggested_stake,omitempty"`
}

// ValuationResult is the full output of the odds valuator. Outcomes are in
// evaluation order (team1, team2, draw); Recommendations is the ordered
// subset whose expected value exceeded the threshold and may be empty.
type ValuationResult struct {
	Outcomes        []OutcomeValuation `json:"outcomes"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// HasValueBet reports whether at least one outcome cleared the threshold.
func (v *ValuationResult) HasValueBet() bool {
	return len(v.Recommendations) > 0
}

// BestRecommendation returns the recommendation with the highest expected
// value, or nil when no outcome qualified.
func (v *ValuationResult) BestRecommendation() *Recommendation {
	var best *Recommendation
	for i := range v.Recommendations {
		rec := &v.Recommendations[i]
		if best == nil || rec.ExpectedValue > best.ExpectedValue {
			best = rec
		}
	}
	return best
}
