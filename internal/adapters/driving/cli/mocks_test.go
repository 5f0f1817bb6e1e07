package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/fincrew/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
	"github.com/custodia-labs/fincrew/internal/core/services"
	"github.com/custodia-labs/fincrew/internal/tools"
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

func (m *mockIngestService) ReadDocumentText(ctx context.Context, path string) string {
	report, err := m.ReadDocument(ctx, path)
	if err != nil {
		return domain.ReadErrorText(err)
	}
	return report.Text
}

// mockCrewService is a mock implementation of driving.CrewService.
type mockCrewService struct {
	run      *domain.AnalysisRun
	summary  string
	err      error
	requests []driving.CrewRequest
	prompts  []string
}

func (m *mockCrewService) Kickoff(_ context.Context, req driving.CrewRequest) (*domain.AnalysisRun, error) {
	m.requests = append(m.requests, req)
	return m.run, m.err
}

func (m *mockCrewService) Summarise(_ context.Context, _, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.summary, m.err
}

func (m *mockCrewService) Agents() []domain.Agent { return domain.DefaultAgents() }
func (m *mockCrewService) Tasks() []domain.Task   { return domain.DefaultTasks() }

// testServices are the services installed by setupTestServices.
type testServices struct {
	ingest   *mockIngestService
	crew     *mockCrewService
	runs     *memory.RunStore
	settings *services.SettingsService
	config   *memory.ConfigStore
}

// setupTestServices installs mock services and restores the previous
// services and flag values when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		ingest: &mockIngestService{},
		crew:   &mockCrewService{},
		runs:   memory.NewRunStore(),
		config: memory.NewConfigStore(),
	}
	ts.settings = services.NewSettingsService(ts.config, nil)

	SetServices(&Services{
		Ingest:   ts.ingest,
		Crew:     ts.crew,
		Runs:     services.NewRunService(ts.runs),
		Settings: ts.settings,
		Tools:    tools.DefaultRegistry(),
	})
	resetFlags(rootCmd)

	t.Cleanup(func() {
		SetServices(nil)
		resetFlags(rootCmd)
		buildServices = nil
	})
	return ts
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args and returns its combined output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
