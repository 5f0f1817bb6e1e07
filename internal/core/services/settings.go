package services

import (
	"fmt"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyIngestDefaultPath = "ingest.default_path"
	keyIngestNormalise   = "ingest.normalise"
	keyCrewTasks         = "crew.tasks"
	keyPostprocessOrder  = "postprocess.pipeline"

	// postprocessPrefix prefixes per-processor sections, e.g. postprocess.truncate.max_chars.
	postprocessPrefix = "postprocess."
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.LLMValidator
}

// NewSettingsService creates a new settings service. validator may be nil,
// in which case ValidateLLMConfig always succeeds.
func NewSettingsService(configStore driven.ConfigStore, validator driven.LLMValidator) *SettingsService {
	return &SettingsService{configStore: configStore, validator: validator}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			Model:    s.configStore.GetString(keyLLMModel),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL),
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Ingest: domain.IngestSettings{
			DefaultPath: s.getString(keyIngestDefaultPath, defaults.Ingest.DefaultPath),
			Normalise:   s.getNormaliseMode(defaults.Ingest.Normalise),
		},
		Crew: domain.CrewSettings{
			Tasks: s.configStore.GetStringSlice(keyCrewTasks),
		},
		Processors:      defaults.Processors,
		ProcessorConfig: make(map[string]map[string]any),
	}

	if settings.LLM.Model == "" {
		settings.LLM.Model = domain.DefaultLLMModels()[settings.LLM.Provider]
	}

	if _, ok := s.configStore.Get(keyPostprocessOrder); ok {
		settings.Processors = s.configStore.GetStringSlice(keyPostprocessOrder)
	}
	for _, name := range settings.Processors {
		if section := s.configStore.GetSection(postprocessPrefix + name); len(section) > 0 {
			settings.ProcessorConfig[name] = section
		}
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if err := s.configStore.Set(keyIngestDefaultPath, settings.Ingest.DefaultPath); err != nil {
		return fmt.Errorf("save ingest default_path: %w", err)
	}
	if err := s.configStore.Set(keyIngestNormalise, settings.Ingest.Normalise.String()); err != nil {
		return fmt.Errorf("save ingest normalise: %w", err)
	}

	if len(settings.Crew.Tasks) > 0 {
		if err := s.configStore.Set(keyCrewTasks, settings.Crew.Tasks); err != nil {
			return fmt.Errorf("save crew tasks: %w", err)
		}
	}
	if err := s.configStore.Set(keyPostprocessOrder, settings.Processors); err != nil {
		return fmt.Errorf("save postprocess pipeline: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, baseURL, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		settings.LLM.Model = domain.DefaultLLMModels()[provider]
	}

	// Local providers need a base URL
	if baseURL == "" && provider == domain.AIProviderOllama {
		baseURL = "http://localhost:11434"
	}
	settings.LLM.BaseURL = baseURL

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetNormaliseMode selects per-page or whole-document normalisation.
func (s *SettingsService) SetNormaliseMode(mode domain.NormaliseMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("invalid normalise mode: %s", mode)
	}
	return s.configStore.Set(keyIngestNormalise, mode.String())
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.validator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.validator.ValidateLLM(&settings.LLM)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

func (s *SettingsService) getProvider(fallback domain.AIProvider) domain.AIProvider {
	p := domain.AIProvider(s.configStore.GetString(keyLLMProvider))
	if p.IsValid() {
		return p
	}
	return fallback
}

func (s *SettingsService) getNormaliseMode(fallback domain.NormaliseMode) domain.NormaliseMode {
	m := domain.NormaliseMode(s.configStore.GetString(keyIngestNormalise))
	if m.IsValid() {
		return m
	}
	return fallback
}
