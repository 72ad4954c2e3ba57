// Package main provides the entry point for the steering CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	steeringmcp "github.com/kirolabs/steering/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var workspaceFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run steering as a Model Context Protocol (MCP) server over stdio.

This exposes template operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "steering": {
        "command": "steering",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, load_template, set_templates_path, status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := steeringmcp.Deps{
				TemplatesPath:    config.TemplatesPath,
				SetTemplatesPath: config.SetTemplatesPath,
				WorkspaceRoot:    workspaceRoot(cmd),
			}
			server := steeringmcp.NewServer(buildVersion(), deps)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&workspaceFlag, "workspace", "", "Workspace root templates are loaded into (default: current directory)")
	return cmd
}
