package ai

import (
	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.LLMValidator = (*ConfigValidator)(nil)

// ConfigValidator validates LLM provider configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new LLM config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateLLM builds the configured service, pings it and closes it.
func (v *ConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	svc, err := CreateAndValidateLLMService(config, nil)
	if err != nil {
		return err
	}
	return svc.Close()
}
