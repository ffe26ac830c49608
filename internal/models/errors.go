package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrInvalidID    = errors.New("invalid ID format")
)

// InvalidOddsError reports a decimal odds value at or below 1.0. Such odds
// encode no payout and would otherwise produce a degenerate implied
// probability, so they are rejected rather than silently zeroed.
type InvalidOddsError struct {
	Outcome Outcome
	Odds    float64
}

func (e *InvalidOddsError) Error() string {
	return fmt.Sprintf("invalid odds for %s: %g (must be greater than 1.0)", e.Outcome, e.Odds)
}

// NewInvalidOddsError creates an InvalidOddsError for the given outcome.
func NewInvalidOddsError(outcome Outcome, odds float64) *InvalidOddsError {
	return &InvalidOddsError{Outcome: outcome, Odds: odds}
}

// InvalidInputError reports a missing or blank required input field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NewInvalidInputError creates an InvalidInputError for the given field.
func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidOdds reports whether err is an InvalidOddsError.
func IsInvalidOdds(err error) bool {
	var target *InvalidOddsError
	return errors.As(err, &target)
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
