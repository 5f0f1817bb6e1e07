// Package ai provides factory functions for creating language model adapters.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	anthropicllm "github.com/custodia-labs/fincrew/internal/adapters/driven/llm/anthropic"
	fakellm "github.com/custodia-labs/fincrew/internal/adapters/driven/llm/fake"
	ollamallm "github.com/custodia-labs/fincrew/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// AnthropicAPIKeyEnv is read when no Anthropic key is configured.
const AnthropicAPIKeyEnv = "ANTHROPIC_API_KEY"

// getenv is replaced in tests.
var getenv = os.Getenv

// WithEnvironment returns a copy of settings with the API key filled from the
// environment when the provider needs one and none is configured.
func WithEnvironment(settings domain.LLMSettings) domain.LLMSettings {
	if settings.Provider == domain.AIProviderAnthropic && settings.APIKey == "" {
		settings.APIKey = getenv(AnthropicAPIKeyEnv)
	}
	return settings
}

// CreateLLMService creates the LLM service selected by settings. Adapters that
// accept a prompt store are given prompts.
func CreateLLMService(settings *domain.LLMSettings, prompts driven.PromptStore) (driven.LLMService, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: no LLM settings", domain.ErrLLMUnavailable)
	}

	resolved := WithEnvironment(*settings)
	if !resolved.IsConfigured() {
		if resolved.Provider.RequiresAPIKey() {
			return nil, fmt.Errorf("%w: %s requires an API key (set %s or run 'fincrew settings llm')",
				domain.ErrLLMUnavailable, resolved.Provider, AnthropicAPIKeyEnv)
		}
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", domain.ErrLLMUnavailable, resolved.Provider)
	}

	var svc driven.LLMService
	switch resolved.Provider {
	case domain.AIProviderFake:
		svc = fakellm.NewLLMService()

	case domain.AIProviderOllama:
		svc = ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: resolved.BaseURL,
			Model:   resolved.Model,
		})

	case domain.AIProviderAnthropic:
		a, err := anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  resolved.APIKey,
			BaseURL: resolved.BaseURL,
			Model:   resolved.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
		}
		svc = a

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider %q", domain.ErrLLMUnavailable, resolved.Provider)
	}

	if aware, ok := svc.(driven.PromptStoreAware); ok && prompts != nil {
		aware.SetPromptStore(prompts)
	}
	return svc, nil
}

// CreateAndValidateLLMService creates an LLM service and checks it is reachable.
func CreateAndValidateLLMService(settings *domain.LLMSettings, prompts driven.PromptStore) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings, prompts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'fincrew settings llm' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}
