package driven

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// AnalysisTool is a named capability that inspects document text.
type AnalysisTool interface {
	// Name returns the tool name agents refer to.
	Name() string

	// Description explains what the tool does.
	Description() string

	// Analyse inspects documentText and returns findings.
	Analyse(ctx context.Context, documentText string) (*domain.Findings, error)
}
