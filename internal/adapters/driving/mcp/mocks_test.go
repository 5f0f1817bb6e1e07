package mcp

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report *domain.Report
	err    error
	paths  []string
}

func (m *mockIngestService) ReadDocument(_ context.Context, path string) (*domain.Report, error) {
	m.paths = append(m.paths, path)
	return m.report, m.err
}

func (m *mockIngestService) ReadDocumentText(_ context.Context, path string) string {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return domain.ReadErrorText(m.err)
	}
	return m.report.Text
}

// mockCrewService is a mock implementation of driving.CrewService.
type mockCrewService struct {
	run     *domain.AnalysisRun
	summary string
	err     error
	request driving.CrewRequest
	prompt  string
}

func (m *mockCrewService) Kickoff(_ context.Context, req driving.CrewRequest) (*domain.AnalysisRun, error) {
	m.request = req
	return m.run, m.err
}

func (m *mockCrewService) Summarise(_ context.Context, _, prompt string) (string, error) {
	m.prompt = prompt
	return m.summary, m.err
}

func (m *mockCrewService) Agents() []domain.Agent { return domain.DefaultAgents() }
func (m *mockCrewService) Tasks() []domain.Task   { return domain.DefaultTasks() }

// mockRunService is a mock implementation of driving.RunService.
type mockRunService struct {
	runs  []domain.AnalysisRun
	run   *domain.AnalysisRun
	err   error
	limit int
}

func (m *mockRunService) List(_ context.Context, limit int) ([]domain.AnalysisRun, error) {
	m.limit = limit
	return m.runs, m.err
}

func (m *mockRunService) Get(_ context.Context, _ string) (*domain.AnalysisRun, error) {
	return m.run, m.err
}

func (m *mockRunService) Delete(_ context.Context, _ string) error {
	return m.err
}
