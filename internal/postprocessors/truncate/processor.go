// Package truncate provides a processor that caps report length.
package truncate

import "context"

// Name is the registry name of the processor.
const Name = "truncate"

// DefaultMaxChars keeps a long annual report within a typical model context.
const DefaultMaxChars = 48000

// Processor keeps at most maxChars characters (runes) of its input.
type Processor struct {
	maxChars int
	marker   string
}

// Option configures the truncate processor.
type Option func(*Processor)

// WithMaxChars sets the number of characters kept.
func WithMaxChars(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxChars = n
		}
	}
}

// WithMarker sets text appended after a cut. It does not count towards the limit.
func WithMarker(marker string) Option {
	return func(p *Processor) {
		p.marker = marker
	}
}

// New creates a new truncate processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxChars: DefaultMaxChars,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// MaxChars returns the configured limit.
func (p *Processor) MaxChars() int {
	return p.maxChars
}

// Process cuts text after maxChars runes. Text within the limit is returned as is.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	if len(text) <= p.maxChars {
		return text, nil
	}

	count := 0
	for i := range text {
		if count == p.maxChars {
			return text[:i] + p.marker, nil
		}
		count++
	}
	// Multi-byte text with no more than maxChars runes.
	return text, nil
}
