// Package main provides the entry point for the steering CLI.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

// statusResult holds the data for status output.
type statusResult struct {
	WorkspaceRoot     string `json:"workspace_root"`
	SteeringDir       string `json:"steering_dir"`
	SteeringDirExists bool   `json:"steering_dir_exists"`
	LoadedCount       int    `json:"loaded_count"`
	TemplatesPath     string `json:"templates_path"`
	PathExists        bool   `json:"path_exists"`
	TemplateCount     int    `json:"template_count"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var workspaceFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show workspace and template configuration state",
		Long: `Show the workspace steering directory state and the templates
configuration: configured path, whether it exists, and how many
templates it holds.

Examples:
  steering status           # Human-readable status
  steering status --json    # Output status as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd)
		},
	}

	cmd.Flags().StringVar(&workspaceFlag, "workspace", "", "Workspace root to inspect (default: current directory)")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	result := gatherStatus(workspaceRoot(cmd))

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// gatherStatus collects all status information.
func gatherStatus(root string) *statusResult {
	result := &statusResult{
		WorkspaceRoot: root,
		TemplatesPath: config.TemplatesPath(),
	}

	if root != "" {
		steeringDir := template.SteeringDir(root)
		result.SteeringDir = steeringDir
		if info, err := os.Stat(steeringDir); err == nil && info.IsDir() {
			result.SteeringDirExists = true
			result.LoadedCount = countMarkdownFiles(steeringDir)
		}
	}

	if result.TemplatesPath != "" {
		info, err := os.Stat(result.TemplatesPath)
		result.PathExists = err == nil && info.IsDir()
	}

	lister := template.NewLister(config.TemplatesPath)
	result.TemplateCount = len(lister.Templates())

	return result
}

// countMarkdownFiles counts .md files directly inside dir.
func countMarkdownFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), template.Extension) {
			count++
		}
	}
	return count
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Workspace")
	printer.KeyValue("Root", status.WorkspaceRoot)
	printer.KeyValue("Steering dir", status.SteeringDir)
	printer.KeyValue("Initialized", formatBool(status.SteeringDirExists))
	printer.KeyValue("Loaded", strconv.Itoa(status.LoadedCount))

	printer.Section("Templates")
	if status.TemplatesPath == "" {
		printer.Println(printer.Highlight("No templates path configured"))
		return
	}
	printer.KeyValue("Directory", status.TemplatesPath)
	printer.KeyValue("Exists", formatBool(status.PathExists))
	printer.KeyValue("Templates", strconv.Itoa(status.TemplateCount))
}
