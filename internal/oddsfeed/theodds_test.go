package oddsfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string, liveWindow time.Duration) *TheOddsClient {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	httpClient := NewRateLimitedHTTPClient(HTTPClientConfig{
		Timeout:           2 * time.Second,
		MaxRetries:        0,
		RetryWaitMin:      10 * time.Millisecond,
		RetryWaitMax:      50 * time.Millisecond,
		RateLimit:         100.0,
		CircuitBreakerMax: 3,
	}, log)

	return NewTheOddsClient(httpClient, TheOddsClientConfig{
		BaseURL:    serverURL,
		APIKey:     "test-key",
		Regions:    []string{"uk"},
		Markets:    []string{"h2h"},
		LiveWindow: liveWindow,
		CacheTTL:   time.Minute,
		Enabled:    true,
	}, log)
}

func gamePayload(commence time.Time) string {
	return fmt.Sprintf(`[
		{
			"id": "game-1",
			"sport_key": "soccer_epl",
			"commence_time": %q,
			"home_team": "Manchester United",
			"away_team": "Liverpool",
			"bookmakers": [
				{
					"key": "bookie",
					"markets": [
						{
							"key": "h2h",
							"outcomes": [
								{"name": "Manchester United", "price": 2.5},
								{"name": "Liverpool", "price": 1.8},
								{"name": "Draw", "price": 3.2}
							]
						}
					]
				}
			]
		}
	]`, commence.Format(time.RFC3339))
}

func TestFetchLiveGamesParsesThreeWayMarket(t *testing.T) {
	commence := time.Now().UTC().Add(-30 * time.Minute)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/sports/upcoming/odds", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "decimal", r.URL.Query().Get("oddsFormat"))
		fmt.Fprint(w, gamePayload(commence))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	games, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)

	game := games[0]
	assert.Equal(t, "soccer_epl", game.Sport)
	assert.Equal(t, "Manchester United", game.Team1)
	assert.Equal(t, "Liverpool", game.Team2)
	assert.InDelta(t, 2.5, game.Team1Odds, 1e-9)
	assert.InDelta(t, 1.8, game.Team2Odds, 1e-9)
	require.NotNil(t, game.DrawOdds)
	assert.InDelta(t, 3.2, *game.DrawOdds, 1e-9)
	assert.Equal(t, "Manchester United", game.HomeTeam)
}

func TestFetchLiveGamesFiltersOutsideLiveWindow(t *testing.T) {
	// Started four hours ago, outside a three-hour window
	commence := time.Now().UTC().Add(-4 * time.Hour)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, gamePayload(commence))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	games, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFetchLiveGamesFiltersFutureGames(t *testing.T) {
	commence := time.Now().UTC().Add(2 * time.Hour)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, gamePayload(commence))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	games, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFetchLiveGamesCollapsesDuplicateFixtures(t *testing.T) {
	commence := time.Now().UTC().Add(-10 * time.Minute)
	payload := fmt.Sprintf(`[
		{
			"id": "game-1",
			"sport_key": "soccer_epl",
			"commence_time": %[1]q,
			"home_team": "Arsenal",
			"away_team": "Chelsea",
			"bookmakers": [{"key": "a", "markets": [{"key": "h2h", "outcomes": [
				{"name": "Arsenal", "price": 2.0},
				{"name": "Chelsea", "price": 2.0}
			]}]}]
		},
		{
			"id": "game-2",
			"sport_key": "soccer_epl",
			"commence_time": %[1]q,
			"home_team": "Arsenal",
			"away_team": "Chelsea",
			"bookmakers": [{"key": "b", "markets": [{"key": "h2h", "outcomes": [
				{"name": "ARSENAL", "price": 2.1},
				{"name": "CHELSEA", "price": 1.9}
			]}]}]
		}
	]`, commence.Format(time.RFC3339))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	games, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestFetchLiveGamesSkipsGamesWithoutBookmakers(t *testing.T) {
	commence := time.Now().UTC().Add(-10 * time.Minute)
	payload := fmt.Sprintf(`[
		{
			"id": "game-1",
			"sport_key": "soccer_epl",
			"commence_time": %q,
			"home_team": "Arsenal",
			"away_team": "Chelsea",
			"bookmakers": []
		}
	]`, commence.Format(time.RFC3339))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	games, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFetchLiveGamesAuthenticationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	_, err := client.FetchLiveGames(context.Background())
	require.Error(t, err)

	var feedErr FeedError
	require.ErrorAs(t, err, &feedErr)
	assert.Equal(t, ErrCodeAuthenticationFailed, feedErr.Code)
}

func TestFetchLiveGamesUsesCache(t *testing.T) {
	commence := time.Now().UTC().Add(-10 * time.Minute)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, gamePayload(commence))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	_, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)

	_, err = client.FetchLiveGames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
}

func TestCloseFlushesCache(t *testing.T) {
	commence := time.Now().UTC().Add(-10 * time.Minute)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, gamePayload(commence))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3*time.Hour)

	_, err := client.FetchLiveGames(context.Background())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = client.FetchLiveGames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
}

func TestFetchLiveGamesDisabledSource(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	client := NewTheOddsClient(nil, TheOddsClientConfig{
		Enabled:  false,
		CacheTTL: time.Minute,
	}, log)

	_, err := client.FetchLiveGames(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceDisabled)
}

func TestDemoSourceGames(t *testing.T) {
	source := NewDemoSource()

	games, err := source.FetchLiveGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "Manchester United", games[0].Team1)
	require.NotNil(t, games[0].DrawOdds)
	assert.Nil(t, games[1].DrawOdds)
	assert.True(t, source.IsEnabled())
}
