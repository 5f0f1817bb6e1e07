package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fincrew/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for fincrew resources.
	uriScheme = "fincrew://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Runs == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recently recorded analysis runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "A recorded analysis run with every task output",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleRunsResource returns the most recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	runs, err := s.ports.Runs.List(ctx, defaultRunLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i := range runs {
		summaries[i] = summariseRun(&runs[i])
	}

	return jsonResource(req.Params.URI, summaries)
}

// handleRunResource returns one run with its outputs.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// fincrew://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.Runs.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	type runDetail struct {
		RunSummary
		Pages       int                `json:"pages"`
		ReportChars int                `json:"report_chars"`
		Outputs     []TaskOutputResult `json:"outputs"`
	}

	detail := runDetail{
		RunSummary:  summariseRun(run),
		Pages:       run.Pages,
		ReportChars: run.ReportChars,
		Outputs:     make([]TaskOutputResult, len(run.Outputs)),
	}
	for i, out := range run.Outputs {
		detail.Outputs[i] = TaskOutputResult{Task: out.TaskID, Agent: out.AgentID, Output: out.Output}
	}

	return jsonResource(req.Params.URI, detail)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like fincrew://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	id, ok := strings.CutPrefix(uri, prefix)
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}
