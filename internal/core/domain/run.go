package domain

import "time"

// RunStatus is the outcome of an analysis run.
type RunStatus string

// Available run statuses.
const (
	// RunSucceeded means every task produced output.
	RunSucceeded RunStatus = "succeeded"

	// RunFailed means the run stopped on an error.
	RunFailed RunStatus = "failed"
)

// AnalysisRun records one crew kickoff over one document.
type AnalysisRun struct {
	// ID is the unique run identifier.
	ID string

	// FilePath is the analysed document.
	FilePath string

	// Query is the user's question.
	Query string

	// Pages is the number of pages read from the document.
	Pages int

	// ReportChars is the length in bytes of the report handed to the crew.
	ReportChars int

	// Outputs holds one entry per completed task, in execution order.
	Outputs []TaskOutput

	// Status is the run outcome.
	Status RunStatus

	// Error is the failure message when Status is RunFailed.
	Error string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run ended.
	FinishedAt time.Time
}

// Duration returns how long the run took.
func (r AnalysisRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// TaskOutput is the text one agent produced for one task.
type TaskOutput struct {
	// TaskID identifies the task.
	TaskID string

	// AgentID identifies the agent that ran it.
	AgentID string

	// Output is the model's response.
	Output string

	// Attempts is the number of model calls made.
	Attempts int
}

// FindingsStatus describes how complete a tool's findings are.
type FindingsStatus string

// Available findings statuses.
const (
	// FindingsPending marks placeholder findings from an unimplemented tool.
	FindingsPending FindingsStatus = "pending"

	// FindingsComplete marks findings produced by a real analysis.
	FindingsComplete FindingsStatus = "complete"
)

// Findings are the structured result of an analysis tool.
type Findings struct {
	// Tool names the tool that produced the findings.
	Tool string `json:"tool"`

	// Status is how complete the findings are.
	Status FindingsStatus `json:"status"`

	// Summary is a one-paragraph description.
	Summary string `json:"summary"`

	// Items are individual observations.
	Items []string `json:"items,omitempty"`
}
