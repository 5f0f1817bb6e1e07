// Package cli implements the fincrew command line with cobra.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
	"github.com/custodia-labs/fincrew/internal/logger"
	"github.com/custodia-labs/fincrew/internal/tools"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	ephemeral bool
)

// Services wired in by main.
var (
	ingestService   driving.IngestService
	crewService     driving.CrewService
	runService      driving.RunService
	settingsService driving.SettingsService
	toolRegistry    *tools.Registry
)

// skipServicesAnnotation marks commands that run without building services.
const skipServicesAnnotation = "fincrew/skip-services"

// Options carries the global flag values to the service builder.
type Options struct {
	Verbose   bool
	ConfigDir string
	Ephemeral bool
}

// Services holds the driving ports the commands call into.
type Services struct {
	Ingest   driving.IngestService
	Crew     driving.CrewService
	Runs     driving.RunService
	Settings driving.SettingsService
	Tools    *tools.Registry

	// Close releases resources held by the services. Optional.
	Close func() error
}

// BuildFunc builds the services once the global flags are parsed.
type BuildFunc func(opts Options) (*Services, error)

var (
	buildServices BuildFunc
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "fincrew",
	Short: "Analyse financial PDFs with a crew of language-model agents",
	Long: `fincrew reads a financial PDF, collapses repeated line breaks into a single
text report and hands that report to a crew of role-played agents that run a
fixed sequence of analysis tasks.

Configuration lives in ~/.fincrew/config.toml and prompt templates in
~/.fincrew/prompts/.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.fincrew)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep runs in memory instead of the run database")
}

// SetVersion sets the version reported by `fincrew version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects already-built services. Used by tests and embedders.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	ingestService = s.Ingest
	crewService = s.Crew
	runService = s.Runs
	settingsService = s.Settings
	toolRegistry = s.Tools
	closeServices = s.Close
}

// Execute builds services lazily with build and runs the root command.
func Execute(build BuildFunc) error {
	buildServices = build
	defer teardown()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if buildServices == nil || cmd.Annotations[skipServicesAnnotation] == "true" {
		return nil
	}

	services, err := buildServices(Options{
		Verbose:   verbose,
		ConfigDir: configDir,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

func teardown() {
	if closeServices == nil {
		return
	}
	if err := closeServices(); err != nil {
		logger.Warn("Closing services: %v", err)
	}
	closeServices = nil
}

// errNotConfigured reports a service that main did not wire.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
