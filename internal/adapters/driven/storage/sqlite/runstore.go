package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or replaces a run together with its task outputs.
func (s *runStore) Save(ctx context.Context, run *domain.AnalysisRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, file_path, query, pages, report_chars, status, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			file_path = excluded.file_path,
			query = excluded.query,
			pages = excluded.pages,
			report_chars = excluded.report_chars,
			status = excluded.status,
			error = excluded.error,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at
	`, run.ID, run.FilePath, run.Query, run.Pages, run.ReportChars,
		string(run.Status), nullString(run.Error),
		run.StartedAt.UTC(), nullTime(run.FinishedAt))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM task_outputs WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing task outputs: %w", err)
	}

	for i, out := range run.Outputs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO task_outputs (run_id, position, task_id, agent_id, output, attempts)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, i, out.TaskID, out.AgentID, out.Output, out.Attempts)
		if err != nil {
			return fmt.Errorf("saving task output %s: %w", out.TaskID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, file_path, query, pages, report_chars, status, error, started_at, finished_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	outputs, err := s.outputs(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Outputs = outputs

	return run, nil
}

// List returns the most recent runs first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.AnalysisRun, error) {
	query := `
		SELECT id, file_path, query, pages, report_chars, status, error, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var runs []domain.AnalysisRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		outputs, err := s.outputs(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Outputs = outputs
	}

	return runs, nil
}

// Delete removes a run. Its task outputs cascade.
func (s *runStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *runStore) outputs(ctx context.Context, runID string) ([]domain.TaskOutput, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT task_id, agent_id, output, attempts
		FROM task_outputs WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying task outputs: %w", err)
	}
	defer rows.Close()

	var outputs []domain.TaskOutput //nolint:prealloc // size unknown from query
	for rows.Next() {
		var out domain.TaskOutput
		if err := rows.Scan(&out.TaskID, &out.AgentID, &out.Output, &out.Attempts); err != nil {
			return nil, fmt.Errorf("scanning task output: %w", err)
		}
		outputs = append(outputs, out)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task outputs: %w", err)
	}
	return outputs, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.AnalysisRun, error) {
	var run domain.AnalysisRun
	var status string
	var runErr sql.NullString
	var startedAt, finishedAt sql.NullTime
	if err := row.Scan(&run.ID, &run.FilePath, &run.Query, &run.Pages, &run.ReportChars,
		&status, &runErr, &startedAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.Status = domain.RunStatus(status)
	run.Error = runErr.String
	if startedAt.Valid {
		run.StartedAt = startedAt.Time
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
