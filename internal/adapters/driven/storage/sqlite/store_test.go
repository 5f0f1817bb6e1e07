package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "fincrew-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func sampleRun(id string, started time.Time) *domain.AnalysisRun {
	return &domain.AnalysisRun{
		ID:          id,
		FilePath:    "data/sample.pdf",
		Query:       "Analyze this financial document for investment insights",
		Pages:       3,
		ReportChars: 1200,
		Outputs: []domain.TaskOutput{
			{TaskID: domain.TaskAnalyzeDocument, AgentID: domain.AgentFinancialAnalyst, Output: "first", Attempts: 1},
			{TaskID: domain.TaskVerification, AgentID: domain.AgentFinancialAnalyst, Output: "second", Attempts: 2},
		},
		Status:     domain.RunSucceeded,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "runs.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsRecorded(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.RunStore().Save(context.Background(), sampleRun("run-1", time.Now())))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.RunStore().Get(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	runs := store.RunStore()

	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, sampleRun("run-1", started)))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "data/sample.pdf", got.FilePath)
	assert.Equal(t, 3, got.Pages)
	assert.Equal(t, 1200, got.ReportChars)
	assert.Equal(t, domain.RunSucceeded, got.Status)
	assert.Empty(t, got.Error)
	assert.True(t, started.Equal(got.StartedAt))
	assert.Equal(t, 2*time.Second, got.Duration())
	require.Len(t, got.Outputs, 2)
	assert.Equal(t, "first", got.Outputs[0].Output)
	assert.Equal(t, domain.TaskVerification, got.Outputs[1].TaskID)
	assert.Equal(t, 2, got.Outputs[1].Attempts)
}

func TestRunStore_SaveReplacesOutputs(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	runs := store.RunStore()

	run := sampleRun("run-1", time.Now())
	require.NoError(t, runs.Save(ctx, run))

	run.Outputs = run.Outputs[:1]
	run.Status = domain.RunFailed
	run.Error = "boom"
	require.NoError(t, runs.Save(ctx, run))

	got, err := runs.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, got.Outputs, 1)
	assert.Equal(t, domain.RunFailed, got.Status)
	assert.Equal(t, "boom", got.Error)
}

func TestRunStore_SaveInvalid(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.ErrorIs(t, store.RunStore().Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.RunStore().Save(context.Background(), &domain.AnalysisRun{}), domain.ErrInvalidInput)
}

func TestRunStore_GetNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.RunStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	runs := store.RunStore()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, sampleRun("old", base)))
	require.NoError(t, runs.Save(ctx, sampleRun("new", base.Add(2*time.Hour))))
	require.NoError(t, runs.Save(ctx, sampleRun("mid", base.Add(time.Hour))))

	all, err := runs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)
	assert.Len(t, all[0].Outputs, 2)

	limited, err := runs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "new", limited[0].ID)
}

func TestRunStore_ListEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	runs, err := store.RunStore().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRunStore_DeleteCascades(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	runs := store.RunStore()

	require.NoError(t, runs.Save(ctx, sampleRun("run-1", time.Now())))
	require.NoError(t, runs.Delete(ctx, "run-1"))

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM task_outputs WHERE run_id = ?", "run-1").Scan(&count))
	assert.Zero(t, count)

	assert.ErrorIs(t, runs.Delete(ctx, "run-1"), domain.ErrNotFound)
}
