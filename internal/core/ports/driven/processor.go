package driven

import "context"

// TextProcessor transforms report text before it is handed to the crew.
// Processors are chained in a pipeline (e.g., whitespace cleanup, truncation).
type TextProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the transformed text.
	Process(ctx context.Context, text string) (string, error)
}

// TextPipeline chains multiple TextProcessors.
type TextPipeline interface {
	// Process runs text through all processors in order.
	Process(ctx context.Context, text string) (string, error)
}
