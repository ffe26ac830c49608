package models

// StrengthResult is the output of the team strength estimator. Team1Score
// and Team2Score are normalized to sum to 1.0 and rounded to three decimal
// places for presentation; Team1Raw and Team2Raw keep full precision for
// downstream valuation.
type StrengthResult struct {
	Team1Score float64  `db:"team1_score" json:"team1_score" validate:"gte=0,lte=1"`
	Team2Score float64  `db:"team2_score" json:"team2_score" validate:"gte=0,lte=1"`
	Team1Raw   float64  `db:"-" json:"-"`
	Team2Raw   float64  `db:"-" json:"-"`
	Factors    []string `db:"factors" json:"factors"`
}

// Favourite returns 1 or 2 for the stronger team, or 0 on a dead heat.
func (s *StrengthResult) Favourite() int {
	switch {
	case s.Team1Raw > s.Team2Raw:
		return 1
	case s.Team2Raw > s.Team1Raw:
		return 2
	default:
		return 0
	}
}
