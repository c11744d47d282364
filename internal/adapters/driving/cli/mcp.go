package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server that lets AI assistants query
the records log.

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve over HTTP instead, e.g. for the MCP Inspector.

Tools: query_records, record_stats, get_record, list_changes.
Resource: postliste://summary.

Examples:
  # Stdio mode (default)
  postliste mcp serve

  # HTTP mode
  postliste mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "postliste": {
        "command": "/path/to/postliste",
        "args": ["mcp", "serve", "--data", "https://example.org/postliste"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Dataset: datasetService,
		Query:   queryService,
		Stats:   statsService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
