// Package metrics provides the centralized Prometheus metrics registry for the odds valuation engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "value_hunter",
		Name:      "analyses_total",
		Help:      "Total number of match analyses by status",
	}, []string{"status"})
	ValueBetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_hunter",
		Name:      "value_bets_total",
		Help:      "Total number of value bet recommendations produced",
	})
	FeedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "value_hunter",
		Name:      "feed_requests_total",
		Help:      "Total number of odds feed requests by source and result",
	}, []string{"source", "result"})
	InvalidOddsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "value_hunter",
		Name:      "invalid_odds_total",
		Help:      "Total number of analyses rejected for invalid odds",
	})
)

// Gauge metrics
var (
	LastBatchGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "value_hunter",
		Name:      "last_batch_games",
		Help:      "Number of games analysed in the most recent batch",
	})
	LastBatchValueBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "value_hunter",
		Name:      "last_batch_value_bets",
		Help:      "Number of value bets found in the most recent batch",
	})
	BestExpectedValue = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "value_hunter",
		Name:      "best_expected_value",
		Help:      "Highest expected value seen in the most recent batch",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "value_hunter",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a single match analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	BatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "value_hunter",
		Name:      "batch_duration_seconds",
		Help:      "Duration of a full live-games batch in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(AnalysesTotal)
		registry.MustRegister(ValueBetsTotal)
		registry.MustRegister(FeedRequestsTotal)
		registry.MustRegister(InvalidOddsTotal)

		// Register gauge metrics
		registry.MustRegister(LastBatchGames)
		registry.MustRegister(LastBatchValueBets)
		registry.MustRegister(BestExpectedValue)

		// Register histogram metrics
		registry.MustRegister(AnalysisDuration)
		registry.MustRegister(BatchDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordAnalysis records a completed analysis and its duration.
func RecordAnalysis(status string, durationSeconds float64) {
	AnalysesTotal.WithLabelValues(status).Inc()
	AnalysisDuration.Observe(durationSeconds)
}

// RecordValueBet records a value bet recommendation.
func RecordValueBet() {
	ValueBetsTotal.Inc()
}

// RecordInvalidOdds records an analysis rejected for invalid odds.
func RecordInvalidOdds() {
	InvalidOddsTotal.Inc()
}

// RecordFeedRequest records an odds feed request outcome.
func RecordFeedRequest(source, result string) {
	FeedRequestsTotal.WithLabelValues(source, result).Inc()
}

// RecordBatch records the outcome of a live-games batch.
func RecordBatch(games, valueBets int, bestEV, durationSeconds float64) {
	LastBatchGames.Set(float64(games))
	LastBatchValueBets.Set(float64(valueBets))
	BestExpectedValue.Set(bestEV)
	BatchDuration.Observe(durationSeconds)
}
