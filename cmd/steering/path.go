// Package main provides the entry point for the steering CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
)

// pathResult holds the data for path output.
type pathResult struct {
	TemplatesPath string `json:"templates_path"`
	Source        string `json:"source"` // "env", "config", or "unset"
	Exists        bool   `json:"exists"`
	ConfigFile    string `json:"config_file"`
}

// newPathCmd creates the path command with its set subcommand.
func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show or set the templates directory",
		Long: `Show the configured templates directory and where it comes from.

The effective path is resolved on every operation:
  1. $` + config.EnvTemplatesPath + ` environment variable
  2. templates_path in the config file

Examples:
  steering path                 # Show the current configuration
  steering path set ~/steering  # Persist a templates directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd)
		},
	}

	cmd.AddCommand(newPathSetCmd())
	return cmd
}

// newPathSetCmd creates the path set subcommand.
func newPathSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <dir>",
		Short: "Persist the templates directory",
		Long: `Persist the templates directory into the steering config file.

The directory doesn't have to exist yet; discovery reports a missing
path inline. A non-directory path is rejected.

Examples:
  steering path set ~/steering-templates
  steering path set /srv/shared/templates --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathSet(cmd, args[0])
		},
	}
}

// runPath executes the path command.
func runPath(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	result := gatherPath()

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	if result.TemplatesPath == "" {
		printer.Println(printer.Highlight("No templates path configured"))
		printer.Println(printer.Muted("Run 'steering path set <dir>' to configure"))
		return nil
	}

	printer.KeyValue("Templates", result.TemplatesPath)
	printer.KeyValue("Source", result.Source)
	printer.KeyValue("Exists", formatBool(result.Exists))
	printer.KeyValue("Config", result.ConfigFile)
	return nil
}

// gatherPath collects the current path configuration.
func gatherPath() *pathResult {
	result := &pathResult{
		ConfigFile: config.Path(),
		Source:     "unset",
	}

	if env := os.Getenv(config.EnvTemplatesPath); env != "" {
		result.TemplatesPath = env
		result.Source = "env"
	} else if cfg, err := config.Load(); err == nil && cfg.TemplatesPath != "" {
		result.TemplatesPath = cfg.TemplatesPath
		result.Source = "config"
	}

	if result.TemplatesPath != "" {
		info, err := os.Stat(result.TemplatesPath)
		result.Exists = err == nil && info.IsDir()
	}

	return result
}

// runPathSet executes the path set subcommand.
func runPathSet(cmd *cobra.Command, dir string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		userErr := output.NewUserError("not a directory: " + dir)
		printer.Error(userErr)
		return userErr
	} else if err != nil {
		printer.Warn("directory does not exist yet: %s", dir)
	}

	if err := config.SetTemplatesPath(dir); err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to save templates path", err)
		printer.Error(sysErr)
		return sysErr
	}

	return printer.Success(map[string]any{
		"message":        "Templates path set to " + dir,
		"templates_path": dir,
		"config_file":    config.Path(),
	})
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
