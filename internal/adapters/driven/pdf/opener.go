// Package pdf opens PDF files as paged text sources using github.com/ledongthuc/pdf.
package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.DocumentOpener = (*Opener)(nil)

// Opener opens PDF files from the local filesystem.
type Opener struct{}

// NewOpener creates a PDF opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the PDF at path. Errors carry the parser's message unchanged
// so callers can surface it verbatim. The file is closed on every failure.
func (o *Opener) Open(path string) (driven.PageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	r, err := newReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	return &source{file: f, reader: r}, nil
}

// newReader parses the PDF trailer and cross-reference table.
// The parser panics on some malformed inputs.
func newReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = fmt.Errorf("%v", p)
		}
	}()
	return pdf.NewReader(f, size)
}

// source is one open PDF.
type source struct {
	file   *os.File
	reader *pdf.Reader
}

func (s *source) NumPages() int {
	return s.reader.NumPage()
}

// PageText returns the plain text of page i (1-based). A null page object
// yields empty text.
func (s *source) PageText(i int) (text string, err error) {
	if i < 1 || i > s.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", i, s.reader.NumPage())
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extracting text: %v", r)
		}
	}()

	page := s.reader.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (s *source) Close() error {
	return s.file.Close()
}
