package database

import (
	"context"
	"fmt"

	"github.com/yourusername/value-hunter/internal/config"
)

// schemaStatements holds the idempotent DDL for the analysis tables.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS match_analyses (
		id UUID PRIMARY KEY,
		sport TEXT NOT NULL,
		team1_name TEXT NOT NULL,
		team2_name TEXT NOT NULL,
		team1_score DOUBLE PRECISION NOT NULL,
		team2_score DOUBLE PRECISION NOT NULL,
		factors JSONB NOT NULL DEFAULT '[]',
		status TEXT NOT NULL,
		analyzed_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id UUID PRIMARY KEY,
		analysis_id UUID NOT NULL REFERENCES match_analyses(id) ON DELETE CASCADE,
		outcome TEXT NOT NULL CHECK (outcome IN ('team1', 'team2', 'draw')),
		odds DOUBLE PRECISION NOT NULL,
		implied_probability DOUBLE PRECISION NOT NULL,
		actual_probability DOUBLE PRECISION NOT NULL,
		expected_value DOUBLE PRECISION NOT NULL,
		suggested_stake DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_analyses_analyzed_at ON match_analyses (analyzed_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_analysis_id ON recommendations (analysis_id)`,
}

// Initialize creates a database connection pool and ensures the analysis schema exists
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema applies the analysis table DDL. All statements are idempotent.
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
