// Package postprocessors provides report text processing implementations.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TextPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TextProcessors and runs them in order.
type Pipeline struct {
	processors []driven.TextProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.TextProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs text through every processor in order, each receiving the
// previous processor's output. An empty pipeline returns text unchanged.
func (p *Pipeline) Process(ctx context.Context, text string) (string, error) {
	for _, processor := range p.processors {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var err error
		text, err = processor.Process(ctx, text)
		if err != nil {
			return "", fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}
	return text, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.TextProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
