package oddsfeed

import (
	"context"
	"errors"
	"time"
)

// GameSource defines the interface for fetching live game odds from external providers
type GameSource interface {
	// FetchLiveGames retrieves games that are currently in play
	FetchLiveGames(ctx context.Context) ([]GameData, error)

	// Name returns the name of the odds source
	Name() string

	// IsEnabled returns whether this source is currently enabled
	IsEnabled() bool
}

// GameData represents a normalized live game from any odds source
type GameData struct {
	SourceID     string    `json:"source_id"`     // Provider's unique game ID
	Sport        string    `json:"sport"`         // Sport key (e.g., "soccer_epl")
	Team1        string    `json:"team1"`         // First listed team
	Team2        string    `json:"team2"`         // Second listed team
	Team1Odds    float64   `json:"team1_odds"`    // Decimal odds for team1
	Team2Odds    float64   `json:"team2_odds"`    // Decimal odds for team2
	DrawOdds     *float64  `json:"draw_odds"`     // Decimal odds for the draw, nil for two-way markets
	HomeTeam     string    `json:"home_team"`     // Home team name if the provider supplies it
	CommenceTime time.Time `json:"commence_time"` // Kick-off time UTC
	FetchedAt    time.Time `json:"fetched_at"`    // When the odds were retrieved
}

// FeedError represents errors from odds source operations
type FeedError struct {
	Source  string // Odds source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e FeedError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e FeedError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
	ErrCodeSourceDisabled       = "source_disabled"
)

var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidData          = errors.New("invalid data format")
	ErrSourceDisabled       = errors.New("odds source disabled")
)

// NewFeedError creates a new odds feed error
func NewFeedError(source, code, message string, err error) FeedError {
	return FeedError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
