package driven

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// RunStore persists analysis runs.
type RunStore interface {
	// Save stores or replaces a run.
	Save(ctx context.Context, run *domain.AnalysisRun) error

	// Get retrieves a run by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.AnalysisRun, error)

	// List returns the most recent runs first. A limit <= 0 returns all runs.
	List(ctx context.Context, limit int) ([]domain.AnalysisRun, error)

	// Delete removes a run. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
