// Package main provides the entry point for the steering CLI.
package main

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show <template>",
		Short: "Preview a template's content",
		Long: `Show renders a template's Markdown to the terminal without
loading it into the workspace.

Terminal output is rendered with glamour; piped output and --raw
pass the content through verbatim.

Examples:
  steering show conventions        # Rendered preview
  steering show conventions --raw  # Verbatim file content
  steering show ./docs/local.md    # By explicit path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the file content without rendering")
	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, arg string, raw bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	source, err := template.Resolve(arg, config.TemplatesPath())
	if err != nil {
		printer.Error(err)
		return err
	}

	content, err := os.ReadFile(source)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to read template", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"source":  source,
			"content": string(content),
		})
	}

	if raw || !printer.IsTTY() {
		printer.Print("%s", string(content))
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Rendering is cosmetic; fall back to the raw content.
		printer.Print("%s", string(content))
		return nil
	}

	rendered, err := renderer.Render(string(content))
	if err != nil {
		printer.Print("%s", string(content))
		return nil
	}

	printer.Print("%s", rendered)
	return nil
}
