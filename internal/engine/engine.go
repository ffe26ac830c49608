package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/value-hunter/internal/models"
)

// Engine composes the strength estimator and odds valuator into a single
// match analysis. It is stateless; every call is an independent pure
// computation over its inputs.
type Engine struct {
	params    Params
	estimator *StrengthEstimator
	valuator  *OddsValuator
}

// New creates an engine from validated params.
func New(params Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		params:    params,
		estimator: NewStrengthEstimator(params),
		valuator:  NewOddsValuator(params),
	}, nil
}

// Params returns the engine's configuration.
func (e *Engine) Params() Params {
	return e.params
}

// EstimateStrength runs only the strength estimation step.
func (e *Engine) EstimateStrength(mc models.MatchContext) (models.StrengthResult, error) {
	return e.estimator.Estimate(mc)
}

// ValuateOdds runs only the odds valuation step.
func (e *Engine) ValuateOdds(in models.OddsInput) (models.ValuationResult, error) {
	return e.valuator.Valuate(in)
}

// AnalyzeMatch estimates team strength from the match context, valuates the
// given odds against it and returns the combined analysis record. Validation
// failures propagate as typed errors; they are never folded into a degraded
// best-effort result.
func (e *Engine) AnalyzeMatch(mc models.MatchContext, team1Odds, team2Odds float64, drawOdds *float64) (*models.MatchAnalysis, error) {
	strength, err := e.estimator.Estimate(mc)
	if err != nil {
		return nil, err
	}

	odds := models.OddsInput{
		Team1Odds:     team1Odds,
		Team2Odds:     team2Odds,
		DrawOdds:      drawOdds,
		Team1Strength: strength.Team1Raw,
		Team2Strength: strength.Team2Raw,
	}
	valuation, err := e.valuator.Valuate(odds)
	if err != nil {
		return nil, err
	}

	status := models.AnalysisStatusNoValue
	if valuation.HasValueBet() {
		status = models.AnalysisStatusValueFound
	}

	now := time.Now().UTC()
	return &models.MatchAnalysis{
		ID:         uuid.New(),
		Context:    mc,
		Odds:       odds,
		Strength:   strength,
		Valuation:  valuation,
		Status:     status,
		AnalyzedAt: now,
		CreatedAt:  now,
	}, nil
}
