package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
	"github.com/custodia-labs/fincrew/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService reads paged documents into normalised reports.
// It holds no per-call state and is safe for concurrent use.
type IngestService struct {
	opener      driven.DocumentOpener
	defaultPath string
	mode        domain.NormaliseMode
}

// IngestOption configures the ingest service.
type IngestOption func(*IngestService)

// WithDefaultPath sets the path read when none is given.
func WithDefaultPath(path string) IngestOption {
	return func(s *IngestService) {
		if path != "" {
			s.defaultPath = path
		}
	}
}

// WithNormaliseMode selects per-page or whole-document normalisation.
func WithNormaliseMode(mode domain.NormaliseMode) IngestOption {
	return func(s *IngestService) {
		if mode.IsValid() {
			s.mode = mode
		}
	}
}

// NewIngestService creates a new ingest service reading documents through opener.
func NewIngestService(opener driven.DocumentOpener, opts ...IngestOption) *IngestService {
	s := &IngestService{
		opener:      opener,
		defaultPath: domain.DefaultDocumentPath,
		mode:        domain.NormalisePage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the normalisation mode in use.
func (s *IngestService) Mode() domain.NormaliseMode {
	return s.mode
}

// Pages returns the pages of the document at path, in order.
//
// Ranging over the sequence opens the document; every range is a fresh read.
// A failure to open or extract is yielded once as a *domain.DocumentReadError
// and ends the sequence. The document is closed when the sequence ends,
// including when the caller stops early.
func (s *IngestService) Pages(ctx context.Context, path string) iter.Seq2[domain.Page, error] {
	path = s.resolvePath(path)

	return func(yield func(domain.Page, error) bool) {
		src, err := s.opener.Open(path)
		if err != nil {
			yield(domain.Page{}, &domain.DocumentReadError{Path: path, Err: err})
			return
		}
		defer func() {
			if err := src.Close(); err != nil {
				logger.Warn("Closing %s: %v", path, err)
			}
		}()

		n := src.NumPages()
		logger.Debug("Opened %s: %d pages", path, n)

		for i := 1; i <= n; i++ {
			if err := ctx.Err(); err != nil {
				yield(domain.Page{}, &domain.DocumentReadError{Path: path, Err: err})
				return
			}

			text, err := src.PageText(i)
			if err != nil {
				yield(domain.Page{}, &domain.DocumentReadError{
					Path: path,
					Err:  fmt.Errorf("page %d: %w", i, err),
				})
				return
			}

			if !yield(domain.Page{Number: i, Text: text}, nil) {
				return
			}
		}
	}
}

// ReadDocument reads the document at path into a report.
// On failure no report is produced and the error is a *domain.DocumentReadError,
// which wraps the context's error if ctx is cancelled mid-read.
func (s *IngestService) ReadDocument(ctx context.Context, path string) (*domain.Report, error) {
	path = s.resolvePath(path)
	logger.Section("Document Ingestion")
	defer logger.Timer("Document ingestion")()
	logger.Debug("Path: %s, normalise: %s", path, s.mode)

	var builder ReportBuilder
	for page, err := range s.Pages(ctx, path) {
		if err != nil {
			logger.Debug("Read failed: %v", err)
			return nil, err
		}

		text := page.Text
		if s.mode == domain.NormalisePage {
			text = Normalise(text)
		}
		builder.AddPage(text)
	}

	text := builder.String()
	if s.mode == domain.NormaliseDocument {
		text = Normalise(text)
	}

	logger.Info("Read %d pages (%d bytes) from %s", builder.Pages(), len(text), path)

	return &domain.Report{
		Path:  path,
		Text:  text,
		Pages: builder.Pages(),
	}, nil
}

// ReadDocumentText reads the document at path and returns its report text,
// or "Error reading PDF file: <cause>" if it cannot be read.
func (s *IngestService) ReadDocumentText(ctx context.Context, path string) string {
	report, err := s.ReadDocument(ctx, path)
	if err != nil {
		return domain.ReadErrorText(err)
	}
	return report.Text
}

func (s *IngestService) resolvePath(path string) string {
	if path == "" {
		return s.defaultPath
	}
	return path
}
