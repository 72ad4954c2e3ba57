// Package main provides the entry point for the steering CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

// listResult holds the data for list output.
type listResult struct {
	TemplatesPath string          `json:"templates_path"`
	Items         []template.Item `json:"items"`
	TemplateCount int             `json:"template_count"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available steering templates",
		Long: `List the .md templates in the configured templates directory.

Every run re-reads the directory, so running list again is a refresh.
When the path is unset, missing, unreadable, or empty, placeholder
items describe the state instead of failing. Items are sorted
lexicographically by label.

Examples:
  steering list           # Human-readable listing
  steering list --json    # Items with labels, paths, and kinds as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	lister := template.NewLister(config.TemplatesPath)
	items := lister.List()

	count := 0
	for _, item := range items {
		if item.IsTemplate() {
			count++
		}
	}

	if printer.IsJSON() {
		return printer.WriteJSON(&listResult{
			TemplatesPath: config.TemplatesPath(),
			Items:         items,
			TemplateCount: count,
		})
	}

	printItems(printer, items)
	return nil
}

// printItems renders display items in human-readable form.
// Templates get their label and a muted path; placeholders are
// highlighted so configuration problems stand out.
func printItems(printer *output.Printer, items []template.Item) {
	for _, item := range items {
		switch item.Kind {
		case template.KindTemplate:
			printer.Print("%s  %s\n", printer.Bold(item.Label), printer.Muted(item.Path))
		case template.KindSetup, template.KindError:
			printer.Println(printer.Highlight(item.Label))
		default:
			printer.Println(printer.Muted(item.Label))
		}
	}
}
