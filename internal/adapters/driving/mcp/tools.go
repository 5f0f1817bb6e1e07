package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driving"
)

// defaultRunLimit caps list_runs when no limit is given.
const defaultRunLimit = 20

// ReadInput is the input schema for the read_financial_document tool.
type ReadInput struct {
	Path string `json:"path,omitempty" jsonschema:"path to the PDF; the configured default when empty"`
}

// ReadOutput is the output schema for the read_financial_document tool.
type ReadOutput struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Text  string `json:"text"`
}

// AnalyzeInput is the input schema for the analyze_financial_document tool.
type AnalyzeInput struct {
	Path  string   `json:"path,omitempty" jsonschema:"path to the PDF; the configured default when empty"`
	Query string   `json:"query" jsonschema:"the question to answer about the document"`
	Tasks []string `json:"tasks,omitempty" jsonschema:"task IDs to run in order (default: all)"`
}

// AnalyzeOutput is the output schema for the analyze_financial_document tool.
type AnalyzeOutput struct {
	RunID   string             `json:"run_id"`
	Path    string             `json:"path"`
	Status  string             `json:"status"`
	Outputs []TaskOutputResult `json:"outputs"`
}

// TaskOutputResult is one task's answer.
type TaskOutputResult struct {
	Task   string `json:"task"`
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// SummariseInput is the input schema for the summarise_financial_document tool.
type SummariseInput struct {
	Path   string `json:"path,omitempty" jsonschema:"path to the PDF; the configured default when empty"`
	Prompt string `json:"prompt,omitempty" jsonschema:"what the summary should focus on"`
}

// SummariseOutput is the output schema for the summarise_financial_document tool.
type SummariseOutput struct {
	Summary string `json:"summary"`
}

// ListRunsInput is the input schema for the list_runs tool.
type ListRunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 20)"`
}

// ListRunsOutput is the output schema for the list_runs tool.
type ListRunsOutput struct {
	Runs  []RunSummary `json:"runs"`
	Count int          `json:"count"`
}

// RunSummary describes a recorded run.
type RunSummary struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Query     string    `json:"query"`
	Status    string    `json:"status"`
	Tasks     int       `json:"tasks"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_financial_document",
		Description: "Read a financial PDF and return its text with repeated line breaks collapsed",
	}, s.handleRead)

	if s.ports.Crew != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "analyze_financial_document",
			Description: "Run the financial analysis crew over a PDF and return each task's answer",
		}, s.handleAnalyze)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "summarise_financial_document",
			Description: "Summarise a financial PDF in one model call",
		}, s.handleSummarise)
	}

	if s.ports.Runs != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_runs",
			Description: "List recorded analysis runs, newest first",
		}, s.handleListRuns)
	}
}

// handleRead handles the read_financial_document tool invocation.
func (s *Server) handleRead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadInput,
) (*mcp.CallToolResult, ReadOutput, error) {
	report, err := s.ports.Ingest.ReadDocument(ctx, input.Path)
	if err != nil {
		return nil, ReadOutput{}, err
	}

	return nil, ReadOutput{
		Path:  report.Path,
		Pages: report.Pages,
		Text:  report.Text,
	}, nil
}

// handleAnalyze handles the analyze_financial_document tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if input.Query == "" {
		return nil, AnalyzeOutput{}, domain.ErrInvalidInput
	}

	run, err := s.ports.Crew.Kickoff(ctx, driving.CrewRequest{
		Path:    input.Path,
		Query:   input.Query,
		TaskIDs: input.Tasks,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		RunID:   run.ID,
		Path:    run.FilePath,
		Status:  string(run.Status),
		Outputs: make([]TaskOutputResult, len(run.Outputs)),
	}
	for i, out := range run.Outputs {
		output.Outputs[i] = TaskOutputResult{
			Task:   out.TaskID,
			Agent:  out.AgentID,
			Output: out.Output,
		}
	}

	return nil, output, nil
}

// handleSummarise handles the summarise_financial_document tool invocation.
func (s *Server) handleSummarise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummariseInput,
) (*mcp.CallToolResult, SummariseOutput, error) {
	summary, err := s.ports.Crew.Summarise(ctx, input.Path, input.Prompt)
	if err != nil {
		return nil, SummariseOutput{}, err
	}
	return nil, SummariseOutput{Summary: summary}, nil
}

// handleListRuns handles the list_runs tool invocation.
func (s *Server) handleListRuns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListRunsInput,
) (*mcp.CallToolResult, ListRunsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRunLimit
	}

	runs, err := s.ports.Runs.List(ctx, limit)
	if err != nil {
		return nil, ListRunsOutput{}, err
	}

	output := ListRunsOutput{
		Runs:  make([]RunSummary, len(runs)),
		Count: len(runs),
	}
	for i := range runs {
		output.Runs[i] = summariseRun(&runs[i])
	}

	return nil, output, nil
}

func summariseRun(run *domain.AnalysisRun) RunSummary {
	return RunSummary{
		ID:        run.ID,
		Path:      run.FilePath,
		Query:     run.Query,
		Status:    string(run.Status),
		Tasks:     len(run.Outputs),
		Error:     run.Error,
		StartedAt: run.StartedAt,
	}
}
