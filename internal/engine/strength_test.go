package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/value-hunter/internal/models"
)

func newTestEstimator(t *testing.T) *StrengthEstimator {
	t.Helper()
	return NewStrengthEstimator(DefaultParams())
}

func TestEstimateNeutralPrior(t *testing.T) {
	est := newTestEstimator(t)

	result, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Team1Score, 1e-9)
	assert.InDelta(t, 0.5, result.Team2Score, 1e-9)
	assert.Empty(t, result.Factors)
}

func TestEstimateRecentForm(t *testing.T) {
	est := newTestEstimator(t)

	// team1: 4W/5 = 0.8 -> raw 0.5 + 0.16 = 0.66
	// team2: 3W/5 = 0.6 -> raw 0.5 + 0.12 = 0.62
	result, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "WWLWW",
		Team2Form: "WLWWL",
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.66/1.28, result.Team1Raw, 1e-9)
	assert.InDelta(t, 0.62/1.28, result.Team2Raw, 1e-9)
	assert.Equal(t, 0.516, result.Team1Score)
	assert.Equal(t, 0.484, result.Team2Score)
	assert.Len(t, result.Factors, 2)
}

func TestEstimateFormCaseInsensitive(t *testing.T) {
	est := newTestEstimator(t)

	upper, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "WWLWD",
	})
	require.NoError(t, err)

	lower, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "wwlwd",
	})
	require.NoError(t, err)

	assert.Equal(t, upper.Team1Score, lower.Team1Score)
}

func TestEstimateBlankFormSkipped(t *testing.T) {
	est := newTestEstimator(t)

	result, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "   ",
		Team2Form: "",
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, result.Team1Score, 1e-9)
	assert.InDelta(t, 0.5, result.Team2Score, 1e-9)
}

func TestEstimateHomeAdvantage(t *testing.T) {
	est := newTestEstimator(t)

	tests := []struct {
		name     string
		homeTeam string
		wantSide int
	}{
		{"team1 home", "Arsenal", 1},
		{"team2 home", "Chelsea", 2},
		{"case insensitive match", "arsenal", 1},
		{"unknown team ignored", "Spurs", 0},
		{"empty ignored", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := est.Estimate(models.MatchContext{
				Team1Name: "Arsenal",
				Team2Name: "Chelsea",
				HomeTeam:  tt.homeTeam,
			})
			require.NoError(t, err)

			switch tt.wantSide {
			case 1:
				// raw 0.6 vs 0.5 -> normalized 0.6/1.1
				assert.InDelta(t, 0.6/1.1, result.Team1Raw, 1e-9)
				assert.Greater(t, result.Team1Score, result.Team2Score)
			case 2:
				assert.InDelta(t, 0.6/1.1, result.Team2Raw, 1e-9)
				assert.Greater(t, result.Team2Score, result.Team1Score)
			default:
				assert.InDelta(t, 0.5, result.Team1Raw, 1e-9)
			}
		})
	}
}

func TestEstimateScoresSumToOne(t *testing.T) {
	est := newTestEstimator(t)

	contexts := []models.MatchContext{
		{Team1Name: "A", Team2Name: "B"},
		{Team1Name: "A", Team2Name: "B", Team1Form: "WWWWW"},
		{Team1Name: "A", Team2Name: "B", Team1Form: "LLLLL", Team2Form: "WWWWW", HomeTeam: "A"},
		{Team1Name: "A", Team2Name: "B", Team1Form: "WDLWD", Team2Form: "DD", HomeTeam: "B"},
	}

	for _, mc := range contexts {
		result, err := est.Estimate(mc)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, result.Team1Raw+result.Team2Raw, 1e-9)
	}
}

func TestEstimateContextualFactors(t *testing.T) {
	est := newTestEstimator(t)

	base, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
	})
	require.NoError(t, err)

	withContext, err := est.Estimate(models.MatchContext{
		Team1Name:         "Arsenal",
		Team2Name:         "Chelsea",
		Team1Record:       "15W-5L-3D",
		Team2Record:       "12W-8L-3D",
		HeadToHead:        "Arsenal: 3 wins, Chelsea: 2 wins",
		AdditionalContext: "Chelsea missing two starters",
	})
	require.NoError(t, err)

	// Contextual fields show up in factors but never move the score.
	assert.Equal(t, base.Team1Score, withContext.Team1Score)
	assert.Equal(t, base.Team2Score, withContext.Team2Score)
	assert.Len(t, withContext.Factors, 4)
}

func TestEstimateMissingTeamNames(t *testing.T) {
	est := newTestEstimator(t)

	_, err := est.Estimate(models.MatchContext{Team1Name: "", Team2Name: "Chelsea"})
	require.Error(t, err)
	assert.True(t, models.IsInvalidInput(err))

	_, err = est.Estimate(models.MatchContext{Team1Name: "Arsenal", Team2Name: "   "})
	require.Error(t, err)
	assert.True(t, models.IsInvalidInput(err))
}

func TestEstimateIdempotent(t *testing.T) {
	est := newTestEstimator(t)

	mc := models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "WWLWD",
		Team2Form: "LLWWD",
		HomeTeam:  "Chelsea",
	}

	first, err := est.Estimate(mc)
	require.NoError(t, err)
	second, err := est.Estimate(mc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimateCustomWeights(t *testing.T) {
	params := DefaultParams()
	params.FormWeight = 0.4
	params.HomeAdvantage = 0.0
	est := NewStrengthEstimator(params)

	result, err := est.Estimate(models.MatchContext{
		Team1Name: "Arsenal",
		Team2Name: "Chelsea",
		Team1Form: "WWWWW",
		HomeTeam:  "Arsenal",
	})
	require.NoError(t, err)

	// raw 0.9 vs 0.5, home advantage disabled
	assert.InDelta(t, 0.9/1.4, result.Team1Raw, 1e-9)
}
