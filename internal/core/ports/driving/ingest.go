package driving

import (
	"context"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

// IngestService turns a paged document into a normalised report.
type IngestService interface {
	// ReadDocument reads the document at path (the configured default when empty).
	// On failure the error is a *domain.DocumentReadError.
	ReadDocument(ctx context.Context, path string) (*domain.Report, error)

	// ReadDocumentText is the text-only form of ReadDocument. A failure is
	// returned as "Error reading PDF file: <cause>" instead of an error.
	ReadDocumentText(ctx context.Context, path string) string
}
