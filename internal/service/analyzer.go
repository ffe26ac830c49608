package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/value-hunter/internal/engine"
	"github.com/yourusername/value-hunter/internal/logger"
	"github.com/yourusername/value-hunter/internal/metrics"
	"github.com/yourusername/value-hunter/internal/models"
	"github.com/yourusername/value-hunter/internal/oddsfeed"
	"github.com/yourusername/value-hunter/internal/repository"
)

// AnalyzedGame pairs a feed game with its analysis, or with the error that
// stopped it. Exactly one of Analysis and Err is set.
type AnalyzedGame struct {
	Game     oddsfeed.GameData
	Analysis *models.MatchAnalysis
	Err      error
}

// BatchResult summarises a full live-games analysis run
type BatchResult struct {
	Games      []AnalyzedGame
	ValueFound int
	Failures   int
	StartedAt  time.Time
	Duration   time.Duration
}

// AnalyzerService orchestrates the engine over feed games and persists results
type AnalyzerService struct {
	engine         *engine.Engine
	source         oddsfeed.GameSource
	repos          *repository.Repositories
	analysisLogger *logger.AnalysisLogger
	log            *logrus.Logger
	batchLimit     int
	persist        bool
}

// AnalyzerConfig holds the service settings
type AnalyzerConfig struct {
	BatchLimit     int
	PersistResults bool
}

// NewAnalyzerService creates a new analyzer service. The repositories may be
// nil when persistence is disabled.
func NewAnalyzerService(
	eng *engine.Engine,
	source oddsfeed.GameSource,
	repos *repository.Repositories,
	log *logrus.Logger,
	cfg AnalyzerConfig,
) *AnalyzerService {
	batchLimit := cfg.BatchLimit
	if batchLimit <= 0 {
		batchLimit = 25
	}

	return &AnalyzerService{
		engine:         eng,
		source:         source,
		repos:          repos,
		analysisLogger: logger.NewAnalysisLogger(log),
		log:            log,
		batchLimit:     batchLimit,
		persist:        cfg.PersistResults && repos != nil,
	}
}

// AnalyzeMatch analyses one match and persists the result when enabled
func (s *AnalyzerService) AnalyzeMatch(ctx context.Context, sport string, mc models.MatchContext, team1Odds, team2Odds float64, drawOdds *float64) (*models.MatchAnalysis, error) {
	start := time.Now()

	analysis, err := s.engine.AnalyzeMatch(mc, team1Odds, team2Odds, drawOdds)
	if err != nil {
		if models.IsInvalidOdds(err) {
			metrics.RecordInvalidOdds()
		}
		metrics.RecordAnalysis(string(models.AnalysisStatusError), time.Since(start).Seconds())
		s.analysisLogger.LogAnalysisFailure(sport, mc.Team1Name, mc.Team2Name, err)
		return nil, err
	}

	analysis.Sport = sport
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0

	metrics.RecordAnalysis(string(analysis.Status), time.Since(start).Seconds())
	s.analysisLogger.LogAnalysis(
		analysis.ID.String(), sport, mc.Team1Name, mc.Team2Name,
		analysis.Strength.Team1Score, analysis.Strength.Team2Score,
		string(analysis.Status), durationMs,
	)

	for _, rec := range analysis.Valuation.Recommendations {
		metrics.RecordValueBet()
		s.analysisLogger.LogRecommendation(
			analysis.ID.String(), string(rec.Outcome),
			rec.Odds, rec.ImpliedProbability, rec.ActualProbability,
			rec.ExpectedValue, rec.SuggestedStake,
		)
	}

	if s.persist {
		if err := s.persistAnalysis(ctx, analysis); err != nil {
			// Persistence failure does not invalidate the analysis itself
			s.log.WithError(err).Warn("Failed to persist analysis")
		}
	}

	return analysis, nil
}

// AnalyzeLiveGames fetches the current live games and analyses each one.
// A failure on one game never stops the rest of the batch.
func (s *AnalyzerService) AnalyzeLiveGames(ctx context.Context) (*BatchResult, error) {
	result := &BatchResult{StartedAt: time.Now()}

	games, err := s.source.FetchLiveGames(ctx)
	if err != nil {
		metrics.RecordFeedRequest(s.source.Name(), "error")
		s.analysisLogger.LogFeedFailure(s.source.Name(), err)
		return nil, err
	}
	metrics.RecordFeedRequest(s.source.Name(), "success")

	if len(games) > s.batchLimit {
		games = games[:s.batchLimit]
	}

	bestEV := 0.0
	for _, game := range games {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		analyzed := AnalyzedGame{Game: game}

		mc := models.MatchContext{
			Team1Name: game.Team1,
			Team2Name: game.Team2,
			HomeTeam:  game.HomeTeam,
		}

		analysis, err := s.AnalyzeMatch(ctx, game.Sport, mc, game.Team1Odds, game.Team2Odds, game.DrawOdds)
		if err != nil {
			analyzed.Err = err
			result.Failures++
		} else {
			analyzed.Analysis = analysis
			if analysis.Status == models.AnalysisStatusValueFound {
				result.ValueFound++
			}
			if best := analysis.Valuation.BestRecommendation(); best != nil && best.ExpectedValue > bestEV {
				bestEV = best.ExpectedValue
			}
		}

		result.Games = append(result.Games, analyzed)
	}

	result.Duration = time.Since(result.StartedAt)
	metrics.RecordBatch(len(result.Games), result.ValueFound, bestEV, result.Duration.Seconds())
	s.analysisLogger.LogBatchSummary(len(result.Games), result.ValueFound, result.Failures, result.StartedAt)

	return result, nil
}

// RecentAnalyses returns the most recently persisted analyses
func (s *AnalyzerService) RecentAnalyses(ctx context.Context, limit int) ([]*models.MatchAnalysis, error) {
	if s.repos == nil {
		return nil, models.ErrNotFound
	}
	return s.repos.Analysis.GetRecent(ctx, limit)
}

func (s *AnalyzerService) persistAnalysis(ctx context.Context, analysis *models.MatchAnalysis) error {
	if err := s.repos.Analysis.Create(ctx, analysis); err != nil {
		return err
	}
	return s.repos.Recommendation.CreateBatch(ctx, analysis.ID, analysis.Valuation.Recommendations)
}
