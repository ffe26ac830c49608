// Package engine implements the deterministic odds valuation engine: team
// strength estimation from match context and expected-value analysis of
// decimal odds.
package engine

import (
	"fmt"

	"github.com/yourusername/value-hunter/internal/config"
)

// Params holds the engine weights and thresholds. They are plain read-only
// data shared safely across concurrent callers.
type Params struct {
	// BaseScore is the neutral prior each team starts from.
	BaseScore float64
	// FormWeight scales the win ratio extracted from a recent form string.
	FormWeight float64
	// HomeAdvantage is added to the home team's raw score.
	HomeAdvantage float64
	// DrawPrior is the fixed probability mass assigned to the draw outcome
	// in three-way markets. The team probabilities are scaled by the
	// remaining mass so the three outcomes sum to 1.0.
	DrawPrior float64
	// MinEVThreshold is the expected value an outcome must exceed to be
	// recommended.
	MinEVThreshold float64
	// KellyFraction scales the Kelly stake suggestion attached to
	// recommendations. Zero disables stake suggestions.
	KellyFraction float64
}

// DefaultParams returns the engine defaults matching the documented model.
func DefaultParams() Params {
	return Params{
		BaseScore:      0.5,
		FormWeight:     0.2,
		HomeAdvantage:  0.1,
		DrawPrior:      0.10,
		MinEVThreshold: 0.05,
		KellyFraction:  0.25,
	}
}

// FromConfig builds engine params from application configuration.
func FromConfig(cfg *config.EngineConfig) (Params, error) {
	p := Params{
		BaseScore:      cfg.BaseScore,
		FormWeight:     cfg.FormWeight,
		HomeAdvantage:  cfg.HomeAdvantageWeight,
		DrawPrior:      cfg.DrawPrior,
		MinEVThreshold: cfg.MinEVThreshold,
		KellyFraction:  cfg.KellyFraction,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks the params for values the model cannot work with.
func (p Params) Validate() error {
	if p.BaseScore <= 0 {
		return fmt.Errorf("base score must be positive, got %g", p.BaseScore)
	}
	if p.FormWeight < 0 || p.FormWeight > 1 {
		return fmt.Errorf("form weight must be in [0,1], got %g", p.FormWeight)
	}
	if p.HomeAdvantage < 0 || p.HomeAdvantage > 1 {
		return fmt.Errorf("home advantage weight must be in [0,1], got %g", p.HomeAdvantage)
	}
	if p.DrawPrior < 0 || p.DrawPrior >= 1 {
		return fmt.Errorf("draw prior must be in [0,1), got %g", p.DrawPrior)
	}
	if p.MinEVThreshold < 0 {
		return fmt.Errorf("min EV threshold must be non-negative, got %g", p.MinEVThreshold)
	}
	if p.KellyFraction < 0 || p.KellyFraction > 1 {
		return fmt.Errorf("kelly fraction must be in [0,1], got %g", p.KellyFraction)
	}
	return nil
}
