package repository

import (
	"fmt"

	"github.com/yourusername/value-hunter/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Analysis       AnalysisRepository
	Recommendation RecommendationRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Analysis:       NewPostgresAnalysisRepository(db),
		Recommendation: NewPostgresRecommendationRepository(db),
	}, nil
}
