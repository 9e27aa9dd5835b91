package cmd

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes diary tools
over stdio transport, so an MCP client can log work as it happens.

Available tools:
  - append_entry: Append a timestamped entry to today's log
  - replace_summary: Replace today's summary block
  - read_latest: Return the most recent date section
  - list_dates: List date sections with entry counts
  - reorder_diary: Rewrite the diary newest first
  - suggest_entry: Suggest an entry from uncommitted git changes

Example client config:
  {
    "mcpServers": {
      "gitdiary": {
        "command": "/path/to/gitdiary",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(mcptools.Deps{
		Journal:    jrnl,
		Git:        gitProbe(),
		ContentDir: appConfig.ContentDir,
		Logger:     logger,
	}, version)

	// Logging goes to stderr; stdout is reserved for the protocol.
	logger.Info("starting MCP server",
		slog.String("transport", "stdio"),
		slog.String("diary_file", store.Path()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}
