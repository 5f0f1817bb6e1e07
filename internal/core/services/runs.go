package services

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// RunService exposes recorded analysis runs.
type RunService struct {
	store driven.RunStore
}

// NewRunService creates a new run service.
func NewRunService(store driven.RunStore) *RunService {
	return &RunService{store: store}
}

// List returns the most recent runs first.
func (s *RunService) List(ctx context.Context, limit int) ([]domain.AnalysisRun, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a run by ID.
func (s *RunService) Get(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Delete removes a run.
func (s *RunService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}
