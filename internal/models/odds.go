package models

// OddsInput carries the decimal odds for a fixture together with the
// estimated team strengths from the strength estimator. DrawOdds is nil for
// two-outcome markets.
type OddsInput struct {
	Team1Odds     float64  `db:"team1_odds" json:"team1_odds" validate:"required,gt=1"`
	Team2Odds     float64  `db:"team2_odds" json:"team2_odds" validate:"required,gt=1"`
	DrawOdds      *float64 `db:"draw_odds" json:"draw_odds,omitempty" validate:"omitempty,gt=1"`
	Team1Strength float64  `db:"team1_strength" json:"team1_strength" validate:"gte=0,lte=1"`
	Team2Strength float64  `db:"team2_strength" json:"team2_strength" validate:"gte=0,lte=1"`
}

// HasDraw reports whether the market includes a draw outcome.
func (o *OddsInput) HasDraw() bool {
	return o.DrawOdds != nil
}

// ImpliedProbability converts decimal odds to the probability the market
// encodes, ignoring the bookmaker margin. Odds at or below 1.0 encode no
// meaningful probability and yield 0; the valuator rejects them before this
// value is ever used.
func ImpliedProbability(odds float64) float64 {
	if odds <= 1.0 {
		return 0
	}
	return 1.0 / odds
}
