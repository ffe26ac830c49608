package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/value-hunter/internal/database"
	"github.com/yourusername/value-hunter/internal/models"
)

// PostgresAnalysisRepository implements AnalysisRepository for PostgreSQL
type PostgresAnalysisRepository struct {
	db *database.DB
}

// NewPostgresAnalysisRepository creates a new analysis repository
func NewPostgresAnalysisRepository(db *database.DB) AnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

// Create inserts a new match analysis
func (r *PostgresAnalysisRepository) Create(ctx context.Context, analysis *models.MatchAnalysis) error {
	query := `
		INSERT INTO match_analyses (id, sport, team1_name, team2_name, team1_score, team2_score,
		                            factors, status, analyzed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	factors, err := json.Marshal(analysis.Strength.Factors)
	if err != nil {
		return fmt.Errorf("failed to marshal factors: %w", err)
	}

	createdAt := analysis.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.db.GetPool().Exec(ctx, query,
		analysis.ID, analysis.Sport, analysis.Context.Team1Name, analysis.Context.Team2Name,
		analysis.Strength.Team1Score, analysis.Strength.Team2Score,
		factors, analysis.Status, analysis.AnalyzedAt, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// GetByID retrieves a match analysis by ID
func (r *PostgresAnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MatchAnalysis, error) {
	query := `
		SELECT id, sport, team1_name, team2_name, team1_score, team2_score,
		       factors, status, analyzed_at, created_at
		FROM match_analyses WHERE id = $1
	`

	analysis, err := scanAnalysisRow(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return analysis, nil
}

// GetRecent retrieves the most recently analysed matches
func (r *PostgresAnalysisRepository) GetRecent(ctx context.Context, limit int) ([]*models.MatchAnalysis, error) {
	query := `
		SELECT id, sport, team1_name, team2_name, team1_score, team2_score,
		       factors, status, analyzed_at, created_at
		FROM match_analyses
		ORDER BY analyzed_at DESC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent analyses: %w", err)
	}
	defer rows.Close()

	return collectAnalysisRows(rows)
}

// GetByDateRange retrieves analyses within a date range
func (r *PostgresAnalysisRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*models.MatchAnalysis, error) {
	query := `
		SELECT id, sport, team1_name, team2_name, team1_score, team2_score,
		       factors, status, analyzed_at, created_at
		FROM match_analyses
		WHERE analyzed_at >= $1 AND analyzed_at <= $2
		ORDER BY analyzed_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses by date range: %w", err)
	}
	defer rows.Close()

	return collectAnalysisRows(rows)
}

// CountByStatus counts analyses with the given status
func (r *PostgresAnalysisRepository) CountByStatus(ctx context.Context, status models.AnalysisStatus) (int, error) {
	var count int
	err := r.db.GetPool().QueryRow(ctx,
		`SELECT COUNT(*) FROM match_analyses WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return count, nil
}

// Delete removes a match analysis and its recommendations
func (r *PostgresAnalysisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.GetPool().Exec(ctx, `DELETE FROM match_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanAnalysisRow(row pgx.Row) (*models.MatchAnalysis, error) {
	analysis := &models.MatchAnalysis{}
	var factors []byte

	err := row.Scan(
		&analysis.ID, &analysis.Sport,
		&analysis.Context.Team1Name, &analysis.Context.Team2Name,
		&analysis.Strength.Team1Score, &analysis.Strength.Team2Score,
		&factors, &analysis.Status, &analysis.AnalyzedAt, &analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(factors) > 0 {
		if err := json.Unmarshal(factors, &analysis.Strength.Factors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal factors: %w", err)
		}
	}

	return analysis, nil
}

func collectAnalysisRows(rows pgx.Rows) ([]*models.MatchAnalysis, error) {
	var analyses []*models.MatchAnalysis
	for rows.Next() {
		analysis, err := scanAnalysisRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}
