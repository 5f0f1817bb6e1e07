// Package whitespace provides a processor that collapses runs of spaces.
package whitespace

import (
	"context"
	"strings"
)

// Name is the registry name of the processor.
const Name = "collapse_spaces"

// Processor collapses every run of two or more ' ' into a single space.
// Tabs and newlines are left alone.
type Processor struct{}

// New creates a collapse_spaces processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process returns text with runs of spaces collapsed.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	return CollapseSpaces(text), nil
}

// CollapseSpaces replaces every run of two or more ' ' with one.
func CollapseSpaces(text string) string {
	if !strings.Contains(text, "  ") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' && prevSpace {
			continue
		}
		prevSpace = c == ' '
		b.WriteByte(c)
	}
	return b.String()
}
