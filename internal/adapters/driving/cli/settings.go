package cli

import (
	"bufio"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the LLM provider, document ingestion and other options.

Settings are stored in ~/.fincrew/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Configure the LLM provider the crew's agents run on.`,
	RunE:  runSettingsLLM,
}

var settingsNormaliseCmd = &cobra.Command{
	Use:   "normalise [mode]",
	Short: "Set line-break normalisation mode",
	Long: `Set how repeated line breaks are collapsed.

Available modes:
  page     - Each page is normalised before the pages are joined (default).
             A blank line spanning a page boundary is kept.
  document - The joined report is normalised once. No blank line survives.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.NormalisePage), string(domain.NormaliseDocument)},
	RunE:      runSettingsNormalise,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsNormaliseCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading(out, "Current Settings"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading(out, "[LLM]"))
	fmt.Fprintf(out, "  Provider: %s\n", settings.LLM.Provider.Description())
	fmt.Fprintf(out, "  Model: %s\n", settings.LLM.Model)
	if settings.LLM.Provider == domain.AIProviderOllama {
		fmt.Fprintf(out, "  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			fmt.Fprintf(out, "  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			fmt.Fprintf(out, "  API Key: (not set, %s is used if present)\n", "ANTHROPIC_API_KEY")
		}
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	fmt.Fprintf(out, "  Status: %s\n", status)
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading(out, "[Ingest]"))
	fmt.Fprintf(out, "  Default path: %s\n", settings.Ingest.DefaultPath)
	fmt.Fprintf(out, "  Normalise: %s\n", settings.Ingest.Normalise)
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading(out, "[Crew]"))
	if len(settings.Crew.Tasks) > 0 {
		fmt.Fprintf(out, "  Tasks: %s\n", strings.Join(settings.Crew.Tasks, ", "))
	} else {
		fmt.Fprintln(out, "  Tasks: (all)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, heading(out, "[Postprocess]"))
	if len(settings.Processors) > 0 {
		fmt.Fprintf(out, "  Pipeline: %s\n", strings.Join(settings.Processors, " -> "))
	} else {
		fmt.Fprintln(out, "  Pipeline: (none)")
	}
	for _, name := range settings.Processors {
		cfg := settings.ProcessorConfig[name]
		for _, key := range slices.Sorted(maps.Keys(cfg)) {
			fmt.Fprintf(out, "  %s.%s: %v\n", name, key, cfg[key])
		}
	}

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureLLMProvider(cmd, reader)
}

func runSettingsNormalise(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	mode := domain.NormaliseMode(args[0])
	if err := settingsService.SetNormaliseMode(mode); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Normalise mode set to: %s\n", mode)
	return nil
}

func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		fmt.Fprintf(out, "  %d. %s\n", i+1, p.Description())
	}
	fmt.Fprint(out, "\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	fmt.Fprintf(out, "Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var baseURL string
	if selectedProvider == domain.AIProviderOllama {
		fmt.Fprint(out, "Enter base URL [http://localhost:11434]: ")
		baseURL = readLine(reader)
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		fmt.Fprint(out, "Enter API key (empty to use ANTHROPIC_API_KEY): ")
		apiKey = readPassword(reader)
		fmt.Fprintln(out)
		if apiKey == "" && os.Getenv("ANTHROPIC_API_KEY") == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, baseURL, apiKey); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	fmt.Fprint(out, "Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		fmt.Fprintf(out, "FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	fmt.Fprintln(out, "OK")

	fmt.Fprintf(out, "LLM provider configured: %s (%s)\n", selectedProvider.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when stdin is a terminal.
func readPassword(reader *bufio.Reader) string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
