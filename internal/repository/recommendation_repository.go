package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/value-hunter/internal/database"
	"github.com/yourusername/value-hunter/internal/models"
)

// PostgresRecommendationRepository implements RecommendationRepository for PostgreSQL
type PostgresRecommendationRepository struct {
	db *database.DB
}

// NewPostgresRecommendationRepository creates a new recommendation repository
func NewPostgresRecommendationRepository(db *database.DB) RecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

// CreateBatch inserts all recommendations for an analysis in one transaction
func (r *PostgresRecommendationRepository) CreateBatch(ctx context.Context, analysisID uuid.UUID, recommendations []models.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	query := `
		INSERT INTO recommendations (id, analysis_id, outcome, odds, implied_probability,
		                             actual_probability, expected_value, suggested_stake, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		now := time.Now().UTC()
		for _, rec := range recommendations {
			_, err := tx.Exec(ctx, query,
				uuid.New(), analysisID, rec.Outcome, rec.Odds, rec.ImpliedProbability,
				rec.ActualProbability, rec.ExpectedValue, rec.SuggestedStake, now,
			)
			if err != nil {
				return fmt.Errorf("failed to create recommendation: %w", err)
			}
		}
		return nil
	})
}

// GetByAnalysisID retrieves all recommendations for an analysis
func (r *PostgresRecommendationRepository) GetByAnalysisID(ctx context.Context, analysisID uuid.UUID) ([]models.Recommendation, error) {
	query := `
		SELECT outcome, odds, implied_probability, actual_probability, expected_value, suggested_stake
		FROM recommendations
		WHERE analysis_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	var recommendations []models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		err := rows.Scan(
			&rec.Outcome, &rec.Odds, &rec.ImpliedProbability,
			&rec.ActualProbability, &rec.ExpectedValue, &rec.SuggestedStake,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, rows.Err()
}

// GetTopByExpectedValue retrieves the highest-edge recommendations produced since a point in time
func (r *PostgresRecommendationRepository) GetTopByExpectedValue(ctx context.Context, since time.Time, limit int) ([]models.Recommendation, error) {
	query := `
		SELECT outcome, odds, implied_probability, actual_probability, expected_value, suggested_stake
		FROM recommendations
		WHERE created_at >= $1
		ORDER BY expected_value DESC
		LIMIT $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top recommendations: %w", err)
	}
	defer rows.Close()

	var recommendations []models.Recommendation
	for rows.Next() {
		var rec models.Recommendation
		err := rows.Scan(
			&rec.Outcome, &rec.Odds, &rec.ImpliedProbability,
			&rec.ActualProbability, &rec.ExpectedValue, &rec.SuggestedStake,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, rows.Err()
}
