// Package mcp provides a Model Context Protocol server for steering.
// It exposes template discovery and loading as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Deps carries the configuration accessors and workspace root the tools
// operate on. Splitting these out keeps the handlers testable without a
// real config directory.
type Deps struct {
	// TemplatesPath returns the configured templates directory ("" = unset).
	TemplatesPath func() string
	// SetTemplatesPath persists a new templates directory.
	SetTemplatesPath func(dir string) error
	// WorkspaceRoot is the workspace templates are loaded into.
	// Empty when no workspace is known to the server.
	WorkspaceRoot string
}

// NewServer creates an MCP server with all steering tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "steering",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all steering tools to the server.
func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List available steering templates from the configured templates directory. Placeholder items describe unset, missing, unreadable, or empty directories.",
		Annotations: readOnlyAnnotations(),
	}, handleListTemplates(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_template",
		Description: "Copy a steering template into the workspace's .kiro/steering/ directory, overwriting any same-named file.",
		Annotations: writeAnnotations(),
	}, handleLoadTemplate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_templates_path",
		Description: "Persist the templates directory used for discovery and loading.",
		Annotations: writeAnnotations(),
	}, handleSetTemplatesPath(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show the configured templates path, template count, workspace root, and steering directory state.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(deps))
}
