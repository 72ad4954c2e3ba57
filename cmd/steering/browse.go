// Package main provides the entry point for the steering CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/browse"
	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	var workspaceFlag string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick and load templates interactively",
		Long: `Browse opens an interactive picker over the configured templates.

Keys:
  enter  load the highlighted template into the workspace
  r      refresh the listing
  /      filter templates by name
  q      quit

The listing also refreshes automatically when .md files in the
templates directory change on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}

	cmd.Flags().StringVar(&workspaceFlag, "workspace", "", "Workspace root to load into (default: current directory)")
	return cmd
}

// runBrowse executes the browse command.
func runBrowse(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if isJSONMode(cmd) {
		err := output.NewUserError("browse is interactive; use 'steering list --json' for scripting")
		printer.Error(err)
		return err
	}

	lister := template.NewLister(config.TemplatesPath)
	loader := template.NewLoader(workspaceRoot(cmd))

	// Watch the templates directory when it exists; otherwise the
	// picker still works with manual refresh.
	var watcher *browse.Watcher
	if dir := config.TemplatesPath(); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if w, err := browse.NewWatcher(dir); err == nil {
				watcher = w
				defer watcher.Close() //nolint:errcheck // best-effort release on exit
			}
		}
	}

	if err := browse.Run(lister, loader, watcher); err != nil {
		sysErr := output.NewSystemErrorWithCause("browse failed", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
