// Package main provides the entry point for the steering CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

// newLoadCmd creates the load command.
func newLoadCmd() *cobra.Command {
	var workspaceFlag string

	cmd := &cobra.Command{
		Use:   "load <template>",
		Short: "Copy a template into the workspace steering directory",
		Long: `Load copies a steering template into <workspace>/.kiro/steering/,
creating the directory if needed and overwriting any same-named file.

The argument is either a template name (resolved against the configured
templates directory, .md extension optional) or an explicit file path.
The workspace defaults to the current directory.

Examples:
  steering load conventions          # By name from the templates directory
  steering load ./docs/local.md      # By explicit path
  steering load api --workspace ~/p  # Into another workspace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&workspaceFlag, "workspace", "", "Workspace root to load into (default: current directory)")
	return cmd
}

// runLoad executes the load command.
func runLoad(cmd *cobra.Command, arg string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	source, err := template.Resolve(arg, config.TemplatesPath())
	if err != nil {
		printer.Error(err)
		return err
	}

	loader := template.NewLoader(workspaceRoot(cmd))
	result, err := loader.Load(source)
	if err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message":  "Loaded " + result.Template,
		"template": result.Template,
		"source":   result.Source,
		"dest":     result.Dest,
	})
}
