// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentOpener: Opens a paged document and exposes its page text
//   - LLMService: Language model calls made on behalf of agents
//   - PromptStore: Task prompt templates
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Analysis run persistence. Without it, runs are not recorded.
//   - TextProcessor: Report postprocessing. Without any, the report is sent as-is.
//   - AnalysisTool: Named analysis capabilities offered to agents.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or tool package
package driven
