package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.AnalysisRun
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.AnalysisRun),
	}
}

// Save stores or replaces a run.
func (s *RunStore) Save(_ context.Context, run *domain.AnalysisRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *run
	stored.Outputs = append([]domain.TaskOutput(nil), run.Outputs...)
	s.runs[run.ID] = stored
	return nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(_ context.Context, id string) (*domain.AnalysisRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// List returns the most recent runs first.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.AnalysisRun, error) {
	s.mu.RLock()
	result := make([]domain.AnalysisRun, 0, len(s.runs))
	for _, run := range s.runs {
		result = append(result, run)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartedAt.After(result[j].StartedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a run.
func (s *RunStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, id)
	return nil
}
