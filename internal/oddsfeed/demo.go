package oddsfeed

import (
	"context"
	"time"
)

const demoSourceName = "demo"

// DemoSource implements GameSource with fixed sample games. It lets the
// analyzer run end to end without a provider API key.
type DemoSource struct{}

// NewDemoSource creates a demo odds source
func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

// FetchLiveGames returns the sample games
func (s *DemoSource) FetchLiveGames(ctx context.Context) ([]GameData, error) {
	now := time.Now().UTC()
	drawOdds := 3.2

	return []GameData{
		{
			SourceID:     "demo-soccer-1",
			Sport:        "soccer",
			Team1:        "Manchester United",
			Team2:        "Liverpool",
			Team1Odds:    2.5,
			Team2Odds:    1.8,
			DrawOdds:     &drawOdds,
			HomeTeam:     "Manchester United",
			CommenceTime: now,
			FetchedAt:    now,
		},
		{
			SourceID:     "demo-basketball-1",
			Sport:        "basketball",
			Team1:        "Lakers",
			Team2:        "Warriors",
			Team1Odds:    2.1,
			Team2Odds:    1.9,
			HomeTeam:     "Lakers",
			CommenceTime: now,
			FetchedAt:    now,
		},
	}, nil
}

// Name returns the demo source name
func (s *DemoSource) Name() string {
	return demoSourceName
}

// IsEnabled always reports true for the demo source
func (s *DemoSource) IsEnabled() bool {
	return true
}
