package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus represents the outcome class of a match analysis.
type AnalysisStatus string

const (
	AnalysisStatusValueFound AnalysisStatus = "value_found"
	AnalysisStatusNoValue    AnalysisStatus = "no_value"
	AnalysisStatusError      AnalysisStatus = "error"
)

// MatchAnalysis is the persisted record of a single evaluation: the inputs,
// the strength estimate, the valuation and when it was produced.
type MatchAnalysis struct {
	ID         uuid.UUID       `db:"id" json:"id" validate:"required,uuid4"`
	Sport      string          `db:"sport" json:"sport,omitempty"`
	Context    MatchContext    `db:"-" json:"context"`
	Odds       OddsInput       `db:"-" json:"odds"`
	Strength   StrengthResult  `db:"-" json:"strength"`
	Valuation  ValuationResult `db:"-" json:"valuation"`
	Status     AnalysisStatus  `db:"status" json:"status" validate:"required"`
	AnalyzedAt time.Time       `db:"analyzed_at" json:"analyzed_at" validate:"required"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Summary returns a one-line human-readable verdict for the analysis.
func (a *MatchAnalysis) Summary() string {
	if best := a.Valuation.BestRecommendation(); best != nil {
		return "bet " + string(best.Outcome)
	}
	return "no value bet found"
}
