// Package mcp provides a Model Context Protocol server for chatcmd.
// It exposes template operations as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ashgrove/chatcmd/internal/store"
)

// NewServer creates an MCP server with all chatcmd tools registered.
func NewServer(version string, st *store.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chatcmd",
		Version: version,
	}, nil)
	registerTools(server, st)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
// Every chatcmd tool is read-only: resolution never writes.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all chatcmd tools to the server.
func registerTools(server *mcp.Server, st *store.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "resolve",
		Description: "Resolve a chat template by name, substituting arguments into its " +
			"$ARGUMENTS and positional $N tokens. Returns the resolved text.",
		Annotations: readOnlyAnnotations(),
	}, handleResolve(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List available chat templates with name, description, and source (project, global, or built-in).",
		Annotations: readOnlyAnnotations(),
	}, handleList(st))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Show a single chat template: its metadata and raw body with substitution tokens intact.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(st))
}
