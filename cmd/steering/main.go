// Package main provides the entry point for the steering CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/envfile"
	"github.com/kirolabs/steering/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the effective color setting from the --color flag
// and TTY detection on the command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// workspaceRoot resolves the workspace templates are loaded into.
// The --workspace flag wins when set; otherwise the current directory.
func workspaceRoot(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("workspace"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the steering CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steering",
		Short: "Load steering templates into a workspace",
		Long: `Steering copies Markdown guidance templates into a workspace's
.kiro/steering/ directory.

Point it at a directory of .md templates once, then:
  - Discover templates with 'list' or the interactive 'browse' picker
  - Copy one into the current workspace with 'load'
  - Preview content with 'show'

Discovery re-reads the templates directory on every run, so a plain
re-run is always a refresh. All commands support --json for scripting.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'steering --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for overrides like STEERING_TEMPLATES.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-workspace override, gitignored)
//  2. $CWD/.env         (per-workspace)
//  3. ~/.config/steering/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Template commands: list, load, show, browse
	addGroupedCommand(cmd, newListCmd(), "core")
	addGroupedCommand(cmd, newLoadCmd(), "core")
	addGroupedCommand(cmd, newShowCmd(), "core")
	addGroupedCommand(cmd, newBrowseCmd(), "core")

	// Admin commands: path, status, doctor
	addGroupedCommand(cmd, newPathCmd(), "admin")
	addGroupedCommand(cmd, newStatusCmd(), "admin")
	addGroupedCommand(cmd, newDoctorCmd(), "admin")

	// Agent commands: serve
	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
