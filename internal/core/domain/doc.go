// Package domain defines the core business entities for fincrew.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: Text extracted from one page of a source document
//   - Report: The normalised, assembled text of a whole document
//   - Agent: A role-played language-model persona
//   - Task: A prompt assigned to an agent
//   - AnalysisRun: The outcome of running a crew over a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
