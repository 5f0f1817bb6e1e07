package driven

import "github.com/custodia-labs/fincrew/internal/core/domain"

// LLMValidator checks that an LLM configuration works.
// Implementations build the service and test connectivity.
type LLMValidator interface {
	// ValidateLLM pings the provider described by config.
	ValidateLLM(config *domain.LLMSettings) error
}
