package domain

const unknownDescription = "Unknown"

// AIProvider identifies a language model provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderFake returns canned responses without calling a model.
	AIProviderFake AIProvider = "fake"

	// AIProviderOllama is local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// AllLLMProviders returns every supported provider in menu order.
func AllLLMProviders() []AIProvider {
	return []AIProvider{AIProviderFake, AIProviderOllama, AIProviderAnthropic}
}

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderFake, AIProviderOllama, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama || p == AIProviderFake
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderFake:
		return "Fake (canned responses)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// DefaultLLMModels returns the default model for each provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderFake:      "fake-list",
		AIProviderOllama:    "llama3.2",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for Anthropic).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// IngestSettings holds document ingestion configuration.
type IngestSettings struct {
	// DefaultPath is read when no path is given.
	DefaultPath string

	// Normalise selects per-page or whole-document line-break collapsing.
	Normalise NormaliseMode
}

// CrewSettings holds crew configuration.
type CrewSettings struct {
	// Tasks lists the task IDs to run, in order. Empty means all default tasks.
	Tasks []string
}

// Settings is the complete application configuration.
type Settings struct {
	LLM    LLMSettings
	Ingest IngestSettings
	Crew   CrewSettings

	// Processors lists report postprocessors by name, in order.
	Processors []string

	// ProcessorConfig holds per-processor settings keyed by processor name.
	ProcessorConfig map[string]map[string]any
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		LLM: LLMSettings{
			Provider: AIProviderFake,
			Model:    "fake-list",
		},
		Ingest: IngestSettings{
			DefaultPath: DefaultDocumentPath,
			Normalise:   NormalisePage,
		},
		Processors:      []string{"truncate"},
		ProcessorConfig: map[string]map[string]any{},
	}
}
