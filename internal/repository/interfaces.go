package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/value-hunter/internal/models"
)

// AnalysisRepository defines the interface for match analysis data access
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.MatchAnalysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MatchAnalysis, error)
	GetRecent(ctx context.Context, limit int) ([]*models.MatchAnalysis, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*models.MatchAnalysis, error)
	CountByStatus(ctx context.Context, status models.AnalysisStatus) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecommendationRepository defines the interface for recommendation data access
type RecommendationRepository interface {
	CreateBatch(ctx context.Context, analysisID uuid.UUID, recommendations []models.Recommendation) error
	GetByAnalysisID(ctx context.Context, analysisID uuid.UUID) ([]models.Recommendation, error)
	GetTopByExpectedValue(ctx context.Context, since time.Time, limit int) ([]models.Recommendation, error)
}
