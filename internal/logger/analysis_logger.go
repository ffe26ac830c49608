// Package logger provides analysis trail logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides a dedicated trail of every match analysed,
// including the ones that produced no recommendation.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogAnalysis logs a completed match analysis.
func (al *AnalysisLogger) LogAnalysis(analysisID, sport, team1, team2 string, team1Score, team2Score float64, status string, durationMs float64) {
	al.WithFields(logrus.Fields{
		"analysis_id":          analysisID,
		"sport":                sport,
		"team1":                team1,
		"team2":                team2,
		"team1_score":          team1Score,
		"team2_score":          team2Score,
		"status":               status,
		"analysis_duration_ms": durationMs,
	}).Info("Match analysis completed")
}

// LogRecommendation logs a value bet recommendation.
func (al *AnalysisLogger) LogRecommendation(analysisID, outcome string, odds, impliedProbability, actualProbability, expectedValue, suggestedStake float64) {
	al.WithFields(logrus.Fields{
		"analysis_id":         analysisID,
		"outcome":             outcome,
		"odds":                odds,
		"implied_probability": impliedProbability,
		"actual_probability":  actualProbability,
		"expected_value":      expectedValue,
		"suggested_stake":     suggestedStake,
	}).Info("Value bet recommended")
}

// LogAnalysisFailure logs a failed analysis with the reason.
func (al *AnalysisLogger) LogAnalysisFailure(sport, team1, team2 string, err error) {
	al.WithFields(logrus.Fields{
		"sport": sport,
		"team1": team1,
		"team2": team2,
		"error": err.Error(),
	}).Warn("Match analysis failed")
}

// LogBatchSummary logs the result of a batch analysis run.
func (al *AnalysisLogger) LogBatchSummary(gamesAnalysed, valueFound, failures int, startedAt time.Time) {
	al.WithFields(logrus.Fields{
		"games_analysed": gamesAnalysed,
		"value_found":    valueFound,
		"failures":       failures,
		"batch_duration": time.Since(startedAt).String(),
	}).Info("Batch analysis completed")
}

// LogFeedFailure logs an odds feed retrieval failure.
func (al *AnalysisLogger) LogFeedFailure(source string, err error) {
	al.WithFields(logrus.Fields{
		"source": source,
		"error":  err.Error(),
	}).Error("Odds feed retrieval failed")
}
