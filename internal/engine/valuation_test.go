package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/value-hunter/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestValuateTwoWayMarket(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     2.5,
		Team2Odds:     1.8,
		Team1Strength: 0.55,
		Team2Strength: 0.45,
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)

	team1 := result.Outcomes[0]
	assert.Equal(t, models.OutcomeTeam1, team1.Outcome)
	assert.InDelta(t, 0.40, team1.ImpliedProbability, 1e-9)
	assert.InDelta(t, 0.55, team1.ActualProbability, 1e-9)
	assert.InDelta(t, 0.375, team1.ExpectedValue, 1e-9)

	team2 := result.Outcomes[1]
	assert.Equal(t, models.OutcomeTeam2, team2.Outcome)
	assert.InDelta(t, 1.0/1.8, team2.ImpliedProbability, 1e-9)
	assert.InDelta(t, -0.19, team2.ExpectedValue, 1e-9)

	// Only team1 clears the 5% threshold.
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, models.OutcomeTeam1, result.Recommendations[0].Outcome)
	assert.InDelta(t, 0.375, result.Recommendations[0].ExpectedValue, 1e-9)
}

func TestValuateThreeWayMarket(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     2.5,
		Team2Odds:     1.8,
		DrawOdds:      floatPtr(3.2),
		Team1Strength: 0.55,
		Team2Strength: 0.45,
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)

	assert.InDelta(t, 0.495, result.Outcomes[0].ActualProbability, 1e-9)
	assert.InDelta(t, 0.405, result.Outcomes[1].ActualProbability, 1e-9)

	draw := result.Outcomes[2]
	assert.Equal(t, models.OutcomeDraw, draw.Outcome)
	assert.InDelta(t, 0.10, draw.ActualProbability, 1e-9)
	assert.InDelta(t, 1.0/3.2, draw.ImpliedProbability, 1e-9)
	assert.InDelta(t, -0.68, draw.ExpectedValue, 1e-9)

	// Three-way probabilities still sum to 1.0.
	sum := 0.0
	for _, oc := range result.Outcomes {
		sum += oc.ActualProbability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestValuateInvalidOdds(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	tests := []struct {
		name    string
		input   models.OddsInput
		outcome models.Outcome
	}{
		{
			name:    "team1 odds at 1.0",
			input:   models.OddsInput{Team1Odds: 1.0, Team2Odds: 1.8, Team1Strength: 0.5, Team2Strength: 0.5},
			outcome: models.OutcomeTeam1,
		},
		{
			name:    "team2 odds zero",
			input:   models.OddsInput{Team1Odds: 2.0, Team2Odds: 0, Team1Strength: 0.5, Team2Strength: 0.5},
			outcome: models.OutcomeTeam2,
		},
		{
			name:    "team1 odds negative",
			input:   models.OddsInput{Team1Odds: -2.5, Team2Odds: 1.8, Team1Strength: 0.5, Team2Strength: 0.5},
			outcome: models.OutcomeTeam1,
		},
		{
			name:    "draw odds below 1.0",
			input:   models.OddsInput{Team1Odds: 2.0, Team2Odds: 1.8, DrawOdds: floatPtr(0.9), Team1Strength: 0.5, Team2Strength: 0.5},
			outcome: models.OutcomeDraw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := val.Valuate(tt.input)
			require.Error(t, err)
			assert.True(t, models.IsInvalidOdds(err))

			var oddsErr *models.InvalidOddsError
			require.ErrorAs(t, err, &oddsErr)
			assert.Equal(t, tt.outcome, oddsErr.Outcome)
		})
	}
}

func TestValuateImpliedProbabilityRange(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	for _, odds := range []float64{1.01, 1.5, 2.0, 10.0, 500.0} {
		result, err := val.Valuate(models.OddsInput{
			Team1Odds:     odds,
			Team2Odds:     odds,
			Team1Strength: 0.5,
			Team2Strength: 0.5,
		})
		require.NoError(t, err)
		for _, oc := range result.Outcomes {
			assert.Greater(t, oc.ImpliedProbability, 0.0)
			assert.Less(t, oc.ImpliedProbability, 1.0)
			assert.InDelta(t, 1.0/odds, oc.ImpliedProbability, 1e-9)
		}
	}
}

func TestValuateNoValueBets(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	// Short odds against even strengths: both EVs land below the threshold.
	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     1.9,
		Team2Odds:     1.9,
		Team1Strength: 0.5,
		Team2Strength: 0.5,
	})
	require.NoError(t, err)

	assert.False(t, result.HasValueBet())
	assert.Empty(t, result.Recommendations)
	assert.Nil(t, result.BestRecommendation())
}

func TestValuateRecommendationOrder(t *testing.T) {
	params := DefaultParams()
	params.MinEVThreshold = 0.0
	val := NewOddsValuator(params)

	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     3.0,
		Team2Odds:     3.0,
		DrawOdds:      floatPtr(12.0),
		Team1Strength: 0.5,
		Team2Strength: 0.5,
	})
	require.NoError(t, err)

	// All three are positive EV with the threshold at zero; order is
	// preserved as team1, team2, draw.
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, models.OutcomeTeam1, result.Recommendations[0].Outcome)
	assert.Equal(t, models.OutcomeTeam2, result.Recommendations[1].Outcome)
	assert.Equal(t, models.OutcomeDraw, result.Recommendations[2].Outcome)
}

func TestValuateConfigurableThreshold(t *testing.T) {
	params := DefaultParams()
	params.MinEVThreshold = 0.5
	val := NewOddsValuator(params)

	// EV of 0.375 no longer qualifies under the raised threshold.
	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     2.5,
		Team2Odds:     1.8,
		Team1Strength: 0.55,
		Team2Strength: 0.45,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
}

func TestValuateUnnormalizedStrengths(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	// Strengths arriving un-normalized are rescaled before valuation.
	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     2.5,
		Team2Odds:     1.8,
		Team1Strength: 1.1,
		Team2Strength: 0.9,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.55, result.Outcomes[0].ActualProbability, 1e-9)
	assert.InDelta(t, 0.45, result.Outcomes[1].ActualProbability, 1e-9)
}

func TestValuateIdempotent(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	input := models.OddsInput{
		Team1Odds:     2.1,
		Team2Odds:     1.9,
		DrawOdds:      floatPtr(3.4),
		Team1Strength: 0.6,
		Team2Strength: 0.4,
	}

	first, err := val.Valuate(input)
	require.NoError(t, err)
	second, err := val.Valuate(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValuateRecommendationCarriesStake(t *testing.T) {
	val := NewOddsValuator(DefaultParams())

	result, err := val.Valuate(models.OddsInput{
		Team1Odds:     2.5,
		Team2Odds:     1.8,
		Team1Strength: 0.55,
		Team2Strength: 0.45,
	})
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 1)
	assert.Greater(t, result.Recommendations[0].SuggestedStake, 0.0)
}
