package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/value-hunter/internal/models"
)

// StrengthEstimator converts qualitative match facts into a pair of
// normalized win-probability scores.
type StrengthEstimator struct {
	params Params
}

// NewStrengthEstimator creates a strength estimator with the given params.
func NewStrengthEstimator(params Params) *StrengthEstimator {
	return &StrengthEstimator{params: params}
}

// Estimate produces a StrengthResult for the given match context. Both team
// names are required; every other field contributes only when present.
func (e *StrengthEstimator) Estimate(mc models.MatchContext) (models.StrengthResult, error) {
	if strings.TrimSpace(mc.Team1Name) == "" {
		return models.StrengthResult{}, models.NewInvalidInputError("team1_name", "must not be empty")
	}
	if strings.TrimSpace(mc.Team2Name) == "" {
		return models.StrengthResult{}, models.NewInvalidInputError("team2_name", "must not be empty")
	}

	team1 := e.params.BaseScore
	team2 := e.params.BaseScore
	factors := make([]string, 0, 6)

	if ratio, ok := formWinRatio(mc.Team1Form); ok {
		team1 += ratio * e.params.FormWeight
		factors = append(factors, fmt.Sprintf("Team1 recent form: %s", strings.TrimSpace(mc.Team1Form)))
	}
	if ratio, ok := formWinRatio(mc.Team2Form); ok {
		team2 += ratio * e.params.FormWeight
		factors = append(factors, fmt.Sprintf("Team2 recent form: %s", strings.TrimSpace(mc.Team2Form)))
	}

	switch mc.HomeSide() {
	case 1:
		team1 += e.params.HomeAdvantage
		factors = append(factors, fmt.Sprintf("%s has home advantage", mc.Team1Name))
	case 2:
		team2 += e.params.HomeAdvantage
		factors = append(factors, fmt.Sprintf("%s has home advantage", mc.Team2Name))
	}

	// Records, head-to-head and free-text context are carried as audit
	// factors only; qualitative reasoning over them belongs to the caller.
	if rec := strings.TrimSpace(mc.Team1Record); rec != "" {
		factors = append(factors, fmt.Sprintf("Team1 season record: %s", rec))
	}
	if rec := strings.TrimSpace(mc.Team2Record); rec != "" {
		factors = append(factors, fmt.Sprintf("Team2 season record: %s", rec))
	}
	if h2h := strings.TrimSpace(mc.HeadToHead); h2h != "" {
		factors = append(factors, fmt.Sprintf("Head-to-head: %s", h2h))
	}
	if extra := strings.TrimSpace(mc.AdditionalContext); extra != "" {
		factors = append(factors, fmt.Sprintf("Additional context: %s", extra))
	}

	total := team1 + team2
	if total <= 0 {
		// Unreachable with a positive base score, but guarded.
		team1, team2 = 0.5, 0.5
	} else {
		team1 /= total
		team2 /= total
	}

	return models.StrengthResult{
		Team1Score: roundScore(team1),
		Team2Score: roundScore(team2),
		Team1Raw:   team1,
		Team2Raw:   team2,
		Factors:    factors,
	}, nil
}

// formWinRatio returns the fraction of wins in a form string over {W,L,D},
// case-insensitive. A blank string counts as absent.
func formWinRatio(form string) (float64, bool) {
	trimmed := strings.TrimSpace(form)
	if trimmed == "" {
		return 0, false
	}
	wins := strings.Count(strings.ToUpper(trimmed), "W")
	return float64(wins) / float64(len(trimmed)), true
}

func roundScore(v float64) float64 {
	return math.Round(v*1000) / 1000
}
