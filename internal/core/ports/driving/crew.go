package driving

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// CrewRequest describes one crew kickoff.
type CrewRequest struct {
	// Path is the document to analyse. Empty means the configured default.
	Path string

	// Query is the user's question, substituted for {query}.
	Query string

	// TaskIDs selects and orders the tasks. Empty means the configured sequence.
	TaskIDs []string
}

// CrewService runs agents over a document.
type CrewService interface {
	// Kickoff ingests the document and runs every requested task in order.
	// The returned run is also recorded when a RunStore is configured.
	Kickoff(ctx context.Context, req CrewRequest) (*domain.AnalysisRun, error)

	// Summarise reads the document and asks the model to answer prompt about it.
	Summarise(ctx context.Context, path, prompt string) (string, error)

	// Agents returns the configured agents.
	Agents() []domain.Agent

	// Tasks returns the configured task sequence.
	Tasks() []domain.Task
}
