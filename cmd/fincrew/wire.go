package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/fincrew/internal/adapters/driven/ai"
	"github.com/custodia-labs/fincrew/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fincrew/internal/adapters/driven/pdf"
	"github.com/custodia-labs/fincrew/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fincrew/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/fincrew/internal/adapters/driving/cli"
	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/core/services"
	"github.com/custodia-labs/fincrew/internal/logger"
	"github.com/custodia-labs/fincrew/internal/postprocessors"
	"github.com/custodia-labs/fincrew/internal/tools"
)

// build wires adapters into services according to the global flags and
// the stored settings.
func build(opts cli.Options) (*cli.Services, error) {
	configDir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}

	ingest := services.NewIngestService(pdf.NewOpener(),
		services.WithDefaultPath(settings.Ingest.DefaultPath),
		services.WithNormaliseMode(settings.Ingest.Normalise),
	)

	pipeline, err := postprocessors.DefaultRegistry().BuildPipeline(settings.Processors, settings.ProcessorConfig)
	if err != nil {
		return nil, fmt.Errorf("building postprocess pipeline: %w", err)
	}

	tasks, err := selectTasks(settings.Crew.Tasks)
	if err != nil {
		return nil, err
	}

	runStore, closeStore, err := openRunStore(configDir, opts.Ephemeral)
	if err != nil {
		return nil, err
	}

	// A missing LLM only disables the crew; reading still works.
	llm, err := ai.CreateLLMService(&settings.LLM, prompts)
	if err != nil {
		logger.Warn("LLM unavailable: %v", err)
		llm = nil
	}

	toolRegistry := tools.DefaultRegistry()
	crew := services.NewCrewService(ingest, llm, prompts,
		services.WithRunStore(runStore),
		services.WithPipeline(pipeline),
		services.WithTools(toolRegistry.List()...),
		services.WithTasks(tasks...),
	)

	return &cli.Services{
		Ingest:   ingest,
		Crew:     crew,
		Runs:     services.NewRunService(runStore),
		Settings: settingsService,
		Tools:    toolRegistry,
		Close: func() error {
			var errs []error
			if llm != nil {
				errs = append(errs, llm.Close())
			}
			errs = append(errs, closeStore())
			return errors.Join(errs...)
		},
	}, nil
}

func resolveConfigDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fincrew"), nil
}

// selectTasks picks the configured tasks from the defaults, in the configured order.
func selectTasks(ids []string) ([]domain.Task, error) {
	defaults := domain.DefaultTasks()
	if len(ids) == 0 {
		return defaults, nil
	}

	byID := make(map[string]domain.Task, len(defaults))
	for _, t := range defaults {
		byID[t.ID] = t
	}

	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("crew.tasks: %w: %s", domain.ErrUnknownTask, id)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// openRunStore opens the SQLite run database, or an in-memory store when ephemeral.
func openRunStore(configDir string, ephemeral bool) (driven.RunStore, func() error, error) {
	if ephemeral {
		logger.Debug("Ephemeral mode: runs are kept in memory")
		return memory.NewRunStore(), func() error { return nil }, nil
	}

	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening run database: %w", err)
	}
	logger.Debug("Run database: %s", store.Path())
	return store.RunStore(), store.Close, nil
}
