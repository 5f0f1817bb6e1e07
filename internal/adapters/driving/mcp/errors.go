// Package mcp provides an MCP (Model Context Protocol) server adapter for fincrew.
// It lets AI assistants read financial documents, run the analysis crew and
// browse recorded runs.
package mcp

import "errors"

// ErrMissingIngestService is returned when the ingest service is not provided.
var ErrMissingIngestService = errors.New("mcp: ingest service is required")
