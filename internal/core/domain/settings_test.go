package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		provider AIProvider
		expected bool
	}{
		{"fake is valid", AIProviderFake, true},
		{"ollama is valid", AIProviderOllama, true},
		{"anthropic is valid", AIProviderAnthropic, true},
		{"empty is invalid", AIProvider(""), false},
		{"unknown is invalid", AIProvider("openai"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.IsValid())
		})
	}
}

func TestAIProvider_Properties(t *testing.T) {
	assert.True(t, AIProviderAnthropic.RequiresAPIKey())
	assert.False(t, AIProviderOllama.RequiresAPIKey())
	assert.False(t, AIProviderFake.RequiresAPIKey())

	assert.True(t, AIProviderOllama.IsLocal())
	assert.True(t, AIProviderFake.IsLocal())
	assert.False(t, AIProviderAnthropic.IsLocal())

	assert.Equal(t, "Anthropic (cloud)", AIProviderAnthropic.Description())
	assert.Equal(t, unknownDescription, AIProvider("x").Description())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings LLMSettings
		expected bool
	}{
		{"fake needs nothing", LLMSettings{Provider: AIProviderFake}, true},
		{"ollama without key", LLMSettings{Provider: AIProviderOllama}, true},
		{"anthropic without key", LLMSettings{Provider: AIProviderAnthropic}, false},
		{"anthropic with key", LLMSettings{Provider: AIProviderAnthropic, APIKey: "sk-test"}, true},
		{"invalid provider", LLMSettings{Provider: "other"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.settings.IsConfigured())
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, AIProviderFake, s.LLM.Provider)
	assert.Equal(t, DefaultDocumentPath, s.Ingest.DefaultPath)
	assert.Equal(t, NormalisePage, s.Ingest.Normalise)
	assert.Equal(t, []string{"truncate"}, s.Processors)
	assert.NotNil(t, s.ProcessorConfig)
	assert.Empty(t, s.Crew.Tasks)
}

func TestDefaultLLMModels(t *testing.T) {
	models := DefaultLLMModels()
	for _, p := range AllLLMProviders() {
		assert.True(t, p.IsValid())
		assert.NotEmpty(t, models[p], "provider %s should have a default model", p)
	}
	assert.Equal(t, models[AIProviderFake], DefaultSettings().LLM.Model)
}
