package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	chatmcp "github.com/ashgrove/chatcmd/internal/mcp"
	"github.com/ashgrove/chatcmd/internal/store"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run chatcmd as a Model Context Protocol (MCP) server over stdio.

This exposes template operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "chatcmd": {
        "command": "chatcmd",
        "args": ["serve"]
      }
    }
  }

Available tools: resolve, list, show

Template directories are watched while the server runs, so edits to
project or global templates take effect without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := store.New()
			ctx := cmd.Context()

			// Keep the parse cache fresh for the life of the server.
			go func() { _ = st.Watch(ctx) }()

			server := chatmcp.NewServer(buildVersion(), st)
			return server.Run(ctx, &mcp.StdioTransport{})
		},
	}
}
