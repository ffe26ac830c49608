package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const theOddsSourceName = "the_odds_api"

// TheOddsClient implements GameSource for The Odds API (https://the-odds-api.com)
type TheOddsClient struct {
	httpClient *RateLimitedHTTPClient
	cache      *ResponseCache
	baseURL    string
	apiKey     string
	regions    []string
	markets    []string
	liveWindow time.Duration
	enabled    bool
	logger     *logrus.Logger
}

// oddsAPIGame represents a game entry from The Odds API
type oddsAPIGame struct {
	ID           string             `json:"id"`
	SportKey     string             `json:"sport_key"`
	CommenceTime string             `json:"commence_time"`
	HomeTeam     string             `json:"home_team"`
	AwayTeam     string             `json:"away_team"`
	Bookmakers   []oddsAPIBookmaker `json:"bookmakers"`
}

// oddsAPIBookmaker represents a bookmaker's offering for a game
type oddsAPIBookmaker struct {
	Key     string          `json:"key"`
	Markets []oddsAPIMarket `json:"markets"`
}

// oddsAPIMarket represents a single market (e.g. h2h)
type oddsAPIMarket struct {
	Key      string           `json:"key"`
	Outcomes []oddsAPIOutcome `json:"outcomes"`
}

// oddsAPIOutcome represents a priced outcome within a market
type oddsAPIOutcome struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// TheOddsClientConfig holds the client settings
type TheOddsClientConfig struct {
	BaseURL    string
	APIKey     string
	Regions    []string
	Markets    []string
	LiveWindow time.Duration
	CacheTTL   time.Duration
	Enabled    bool
}

// NewTheOddsClient creates a new Odds API client
func NewTheOddsClient(httpClient *RateLimitedHTTPClient, cfg TheOddsClientConfig, logger *logrus.Logger) *TheOddsClient {
	if logger == nil {
		logger = logrus.New()
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.the-odds-api.com"
	}

	return &TheOddsClient{
		httpClient: httpClient,
		cache:      NewResponseCache(cfg.CacheTTL),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		regions:    cfg.Regions,
		markets:    cfg.Markets,
		liveWindow: cfg.LiveWindow,
		enabled:    cfg.Enabled,
		logger:     logger,
	}
}

// FetchLiveGames retrieves games that kicked off within the live window
func (c *TheOddsClient) FetchLiveGames(ctx context.Context) ([]GameData, error) {
	if !c.enabled {
		return nil, NewFeedError(theOddsSourceName, ErrCodeSourceDisabled, "source is disabled", ErrSourceDisabled)
	}

	const cacheKey = "live_games"
	if games, found := c.cache.Get(cacheKey); found {
		return games, nil
	}

	requestURL := fmt.Sprintf("%s/v4/sports/upcoming/odds?%s", c.baseURL, c.queryParams())

	resp, err := c.httpClient.Get(ctx, requestURL)
	if err != nil {
		return nil, NewFeedError(theOddsSourceName, ErrCodeNetworkError, "failed to fetch live games", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, NewFeedError(theOddsSourceName, ErrCodeAuthenticationFailed, "invalid API key", ErrAuthenticationFailed)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewFeedError(theOddsSourceName, ErrCodeRateLimitExceeded, "rate limit exceeded", ErrRateLimitExceeded)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, NewFeedError(theOddsSourceName, ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var apiGames []oddsAPIGame
	if err := json.NewDecoder(resp.Body).Decode(&apiGames); err != nil {
		return nil, NewFeedError(theOddsSourceName, ErrCodeInvalidData, "failed to parse response", err)
	}

	games := c.convertGames(apiGames)
	c.cache.Set(cacheKey, games)

	return games, nil
}

// Name returns the odds source name
func (c *TheOddsClient) Name() string {
	return theOddsSourceName
}

// IsEnabled returns whether this source is enabled
func (c *TheOddsClient) IsEnabled() bool {
	return c.enabled
}

// Close drops cached responses and releases HTTP client resources
func (c *TheOddsClient) Close() error {
	c.cache.Flush()
	return c.httpClient.Close()
}

func (c *TheOddsClient) queryParams() string {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(c.regions, ","))
	params.Set("markets", strings.Join(c.markets, ","))
	params.Set("oddsFormat", "decimal")
	return params.Encode()
}

// convertGames filters the provider payload down to live two- or three-way
// games and collapses duplicate fixtures listed by multiple feeds.
func (c *TheOddsClient) convertGames(apiGames []oddsAPIGame) []GameData {
	now := time.Now().UTC()
	seen := make(map[string]struct{})
	var games []GameData

	for _, apiGame := range apiGames {
		commenceTime, err := time.Parse(time.RFC3339, apiGame.CommenceTime)
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"game_id":       apiGame.ID,
				"commence_time": apiGame.CommenceTime,
			}).Debug("Skipping game with unparseable commence time")
			continue
		}

		// A game counts as live if it started within the configured window
		elapsed := now.Sub(commenceTime)
		if elapsed < 0 || elapsed > c.liveWindow {
			continue
		}

		game, ok := c.extractOdds(&apiGame, commenceTime, now)
		if !ok {
			continue
		}

		key := strings.ToLower(game.Team1) + "|" + strings.ToLower(game.Team2)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		games = append(games, game)
	}

	return games
}

// extractOdds pulls the first bookmaker's first market prices for a game
func (c *TheOddsClient) extractOdds(apiGame *oddsAPIGame, commenceTime, fetchedAt time.Time) (GameData, bool) {
	if len(apiGame.Bookmakers) == 0 {
		return GameData{}, false
	}

	markets := apiGame.Bookmakers[0].Markets
	if len(markets) == 0 {
		return GameData{}, false
	}

	outcomes := markets[0].Outcomes
	if len(outcomes) < 2 {
		return GameData{}, false
	}

	game := GameData{
		SourceID:     apiGame.ID,
		Sport:        apiGame.SportKey,
		Team1:        outcomes[0].Name,
		Team2:        outcomes[1].Name,
		Team1Odds:    outcomes[0].Price.InexactFloat64(),
		Team2Odds:    outcomes[1].Price.InexactFloat64(),
		HomeTeam:     apiGame.HomeTeam,
		CommenceTime: commenceTime,
		FetchedAt:    fetchedAt,
	}

	// Three-way markets carry the draw as the third outcome
	if len(outcomes) == 3 {
		drawOdds := outcomes[2].Price.InexactFloat64()
		game.DrawOdds = &drawOdds
	}

	return game, true
}
