package domain

import (
	"errors"
	"strings"
)

// ReadErrorPrefix starts the text returned in place of a report when the
// source document cannot be read.
const ReadErrorPrefix = "Error reading PDF file: "

// DefaultDocumentPath is used when no path is given.
const DefaultDocumentPath = "data/sample.pdf"

// Page is the raw text extracted from one page of a source document.
type Page struct {
	// Number is the 1-based page position within the document.
	Number int

	// Text is the extracted text. It may be empty.
	Text string
}

// Report is the normalised text of a whole document.
// It is the sole output of the ingestion pipeline.
type Report struct {
	// Path is the file the report was read from.
	Path string

	// Text is the concatenation of every normalised page, each followed by
	// exactly one line break.
	Text string

	// Pages is the number of pages folded into Text.
	Pages int
}

// NormaliseMode selects where line-break collapsing is applied.
type NormaliseMode string

// Available normalisation modes.
const (
	// NormalisePage collapses line breaks within each page before assembly.
	// Blank-line runs that span a page boundary are kept.
	NormalisePage NormaliseMode = "page"

	// NormaliseDocument assembles raw pages and collapses the whole report once.
	NormaliseDocument NormaliseMode = "document"
)

// IsValid returns true if the mode is recognised.
func (m NormaliseMode) IsValid() bool {
	return m == NormalisePage || m == NormaliseDocument
}

// String returns the string representation.
func (m NormaliseMode) String() string {
	return string(m)
}

// DocumentReadError reports that a source document could not be opened,
// parsed, or have one of its pages extracted.
type DocumentReadError struct {
	// Path is the document that failed.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error returns the cause text, matching what the legacy text API embeds
// after ReadErrorPrefix.
func (e *DocumentReadError) Error() string {
	if e.Err == nil {
		return ErrDocumentRead.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDocumentRead.
func (e *DocumentReadError) Is(target error) bool {
	return target == ErrDocumentRead
}

// ReadErrorText renders err in the legacy "Error reading PDF file: <cause>" form.
func ReadErrorText(err error) string {
	var readErr *DocumentReadError
	if errors.As(err, &readErr) {
		return ReadErrorPrefix + readErr.Error()
	}
	return ReadErrorPrefix + err.Error()
}

// IsReadErrorText reports whether text is a read-failure sentinel rather than a report.
func IsReadErrorText(text string) bool {
	return strings.HasPrefix(text, ReadErrorPrefix)
}
