package oddsfeed

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/value-hunter/internal/config"
)

// NewSourceFromConfig builds the appropriate GameSource for the configuration.
// Demo mode always wins so that a missing API key never blocks a dry run.
func NewSourceFromConfig(cfg *config.Config, logger *logrus.Logger) GameSource {
	if cfg.Analysis.DemoMode || !cfg.OddsFeed.Enabled {
		return NewDemoSource()
	}

	httpClient := NewRateLimitedHTTPClient(HTTPClientConfig{
		Timeout:           time.Duration(cfg.OddsFeed.TimeoutSeconds) * time.Second,
		MaxRetries:        cfg.OddsFeed.MaxRetries,
		RetryWaitMin:      100 * time.Millisecond,
		RetryWaitMax:      5 * time.Second,
		RateLimit:         cfg.OddsFeed.RateLimitPerSecond,
		CircuitBreakerMax: 5,
	}, logger)

	return NewTheOddsClient(httpClient, TheOddsClientConfig{
		BaseURL:    cfg.OddsFeed.BaseURL,
		APIKey:     cfg.OddsFeed.APIKey,
		Regions:    cfg.OddsFeed.Regions,
		Markets:    cfg.OddsFeed.Markets,
		LiveWindow: time.Duration(cfg.OddsFeed.LiveWindowMinutes) * time.Minute,
		CacheTTL:   time.Duration(cfg.OddsFeed.CacheTTLSeconds) * time.Second,
		Enabled:    cfg.OddsFeed.Enabled,
	}, logger)
}
