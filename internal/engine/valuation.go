package engine

import (
	"github.com/yourusername/value-hunter/internal/models"
)

// OddsValuator converts decimal odds and estimated strengths into implied
// probabilities, expected values and value-bet recommendations.
type OddsValuator struct {
	params Params
}

// NewOddsValuator creates an odds valuator with the given params.
func NewOddsValuator(params Params) *OddsValuator {
	return &OddsValuator{params: params}
}

// Valuate produces a ValuationResult for the given input. All supplied odds
// must be strictly greater than 1.0; anything else is an InvalidOddsError.
// An empty recommendation list is a valid result meaning no value bet was
// found.
func (v *OddsValuator) Valuate(in models.OddsInput) (models.ValuationResult, error) {
	if in.Team1Odds <= 1.0 {
		return models.ValuationResult{}, models.NewInvalidOddsError(models.OutcomeTeam1, in.Team1Odds)
	}
	if in.Team2Odds <= 1.0 {
		return models.ValuationResult{}, models.NewInvalidOddsError(models.OutcomeTeam2, in.Team2Odds)
	}
	if in.DrawOdds != nil && *in.DrawOdds <= 1.0 {
		return models.ValuationResult{}, models.NewInvalidOddsError(models.OutcomeDraw, *in.DrawOdds)
	}

	actual1, actual2 := normalizeStrengths(in.Team1Strength, in.Team2Strength)
	actualDraw := 0.0
	if in.HasDraw() {
		// Fixed draw prior; the two team probabilities share the rest.
		actualDraw = v.params.DrawPrior
		remaining := 1.0 - v.params.DrawPrior
		actual1 *= remaining
		actual2 *= remaining
	}

	outcomes := []models.OutcomeValuation{
		valuateOutcome(models.OutcomeTeam1, in.Team1Odds, actual1),
		valuateOutcome(models.OutcomeTeam2, in.Team2Odds, actual2),
	}
	if in.HasDraw() {
		outcomes = append(outcomes, valuateOutcome(models.OutcomeDraw, *in.DrawOdds, actualDraw))
	}

	result := models.ValuationResult{Outcomes: outcomes}
	for _, oc := range outcomes {
		if oc.ExpectedValue > v.params.MinEVThreshold {
			result.Recommendations = append(result.Recommendations, models.Recommendation{
				Outcome:            oc.Outcome,
				Odds:               oc.Odds,
				ImpliedProbability: oc.ImpliedProbability,
				ActualProbability:  oc.ActualProbability,
				ExpectedValue:      oc.ExpectedValue,
				SuggestedStake:     KellyStake(oc.ActualProbability, oc.Odds, v.params.KellyFraction),
			})
		}
	}

	return result, nil
}

func valuateOutcome(outcome models.Outcome, odds, actual float64) models.OutcomeValuation {
	return models.OutcomeValuation{
		Outcome:            outcome,
		Odds:               odds,
		ImpliedProbability: models.ImpliedProbability(odds),
		ActualProbability:  actual,
		ExpectedValue:      actual*odds - 1.0,
	}
}

// normalizeStrengths rescales the two strength scores to sum to 1.0. The
// estimator already normalizes, but inputs may arrive from other callers.
func normalizeStrengths(s1, s2 float64) (float64, float64) {
	total := s1 + s2
	if total <= 0 {
		return 0.5, 0.5
	}
	return s1 / total, s2 / total
}
