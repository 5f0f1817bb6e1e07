package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fincrew/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools:
  read_financial_document       normalised report text of a PDF
  analyze_financial_document    run the crew and return each task's answer
  summarise_financial_document  one-call summary of a PDF
  list_runs                     recorded runs, newest first

Examples:
  # Stdio mode (default, for Claude Desktop)
  fincrew mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  fincrew mcp serve --http :8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "fincrew": {
        "command": "/path/to/fincrew",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Ingest: ingestService,
		Crew:   crewService,
		Runs:   runService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.PrintErrf("MCP server listening on http://%s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
