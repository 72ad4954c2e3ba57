// Package main provides the entry point for the steering CLI.
package main

import (
	"os"
	"strconv"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/template"
)

// runConfigChecks performs configuration checks.
func runConfigChecks() []checkResult {
	checks := make([]checkResult, 0, 3)
	checks = append(checks, checkConfigFile())
	checks = append(checks, checkTemplatesPath())
	checks = append(checks, checkTemplates())
	return checks
}

// checkConfigFile checks that the config file, when present, parses.
func checkConfigFile() checkResult {
	path := config.Path()
	if path == "" {
		return checkResult{
			Name:    "Config File",
			Status:  checkFail,
			Message: "could not determine config directory",
		}
	}

	if _, statErr := os.Stat(path); statErr != nil {
		return checkResult{
			Name:    "Config File",
			Status:  checkWarn,
			Message: "no config file at " + path,
			Hint:    "Run 'steering path set <dir>' to create it",
		}
	}

	if _, err := config.LoadFrom(path); err != nil {
		return checkResult{
			Name:    "Config File",
			Status:  checkFail,
			Message: "unreadable: " + err.Error(),
			Hint:    "Run 'steering path set <dir>' to rewrite it",
		}
	}

	return checkResult{
		Name:    "Config File",
		Status:  checkPass,
		Message: path,
	}
}

// checkTemplatesPath checks the configured templates directory.
func checkTemplatesPath() checkResult {
	dir := config.TemplatesPath()
	if dir == "" {
		return checkResult{
			Name:    "Templates Path",
			Status:  checkWarn,
			Message: "not configured",
			Hint:    "Run 'steering path set <dir>'",
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return checkResult{
			Name:    "Templates Path",
			Status:  checkFail,
			Message: "does not exist: " + dir,
			Hint:    "Run 'steering path set <dir>' to reconfigure",
		}
	}
	if !info.IsDir() {
		return checkResult{
			Name:    "Templates Path",
			Status:  checkFail,
			Message: "not a directory: " + dir,
			Hint:    "Run 'steering path set <dir>' to reconfigure",
		}
	}

	return checkResult{
		Name:    "Templates Path",
		Status:  checkPass,
		Message: dir,
	}
}

// checkTemplates checks that discovery finds loadable templates.
func checkTemplates() checkResult {
	if config.TemplatesPath() == "" {
		return checkResult{
			Name:    "Templates",
			Status:  checkWarn,
			Message: "skipped, no templates path",
		}
	}

	lister := template.NewLister(config.TemplatesPath)
	templates := lister.Templates()
	if len(templates) == 0 {
		return checkResult{
			Name:    "Templates",
			Status:  checkWarn,
			Message: "no .md templates found",
			Hint:    "Add .md files to the templates directory",
		}
	}

	return checkResult{
		Name:    "Templates",
		Status:  checkPass,
		Message: strconv.Itoa(len(templates)) + " template(s) found",
	}
}

// runWorkspaceChecks performs workspace checks.
func runWorkspaceChecks(root string) []checkResult {
	checks := make([]checkResult, 0, 2)
	checks = append(checks, checkWorkspaceRoot(root))
	checks = append(checks, checkSteeringDir(root))
	return checks
}

// checkWorkspaceRoot checks that a workspace root is resolvable.
func checkWorkspaceRoot(root string) checkResult {
	if root == "" {
		return checkResult{
			Name:    "Workspace Root",
			Status:  checkFail,
			Message: "no workspace open",
			Hint:    "Run from a workspace or pass --workspace",
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return checkResult{
			Name:    "Workspace Root",
			Status:  checkFail,
			Message: "not a directory: " + root,
		}
	}

	return checkResult{
		Name:    "Workspace Root",
		Status:  checkPass,
		Message: root,
	}
}

// checkSteeringDir checks the destination steering directory state.
// A missing directory is normal; it is created lazily on first load.
func checkSteeringDir(root string) checkResult {
	if root == "" {
		return checkResult{
			Name:    "Steering Directory",
			Status:  checkWarn,
			Message: "skipped, no workspace root",
		}
	}

	steeringDir := template.SteeringDir(root)
	info, err := os.Stat(steeringDir)
	if err != nil {
		return checkResult{
			Name:    "Steering Directory",
			Status:  checkPass,
			Message: "not created yet (created on first load)",
		}
	}
	if !info.IsDir() {
		return checkResult{
			Name:    "Steering Directory",
			Status:  checkFail,
			Message: "exists but is not a directory: " + steeringDir,
		}
	}

	return checkResult{
		Name:    "Steering Directory",
		Status:  checkPass,
		Message: steeringDir,
	}
}
