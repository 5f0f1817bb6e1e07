package mcp

import (
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest reads financial documents.
	Ingest driving.IngestService

	// Crew runs the analysis crew. Optional.
	Crew driving.CrewService

	// Runs exposes recorded runs. Optional.
	Runs driving.RunService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
