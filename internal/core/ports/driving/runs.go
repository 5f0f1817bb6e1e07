package driving

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// RunService exposes recorded analysis runs.
type RunService interface {
	// List returns the most recent runs first.
	List(ctx context.Context, limit int) ([]domain.AnalysisRun, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.AnalysisRun, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error
}
