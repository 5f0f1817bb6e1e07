package driving

import "github.com/custodia-labs/fincrew/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, baseURL, apiKey string) error

	// SetNormaliseMode selects per-page or whole-document normalisation.
	SetNormaliseMode(mode domain.NormaliseMode) error

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
