// Package main provides the entry point for the steering CLI.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kirolabs/steering/internal/config"
	"github.com/kirolabs/steering/internal/output"
	"github.com/kirolabs/steering/internal/template"
)

func TestLoadCommand_ByName(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	workspace := t.TempDir()
	writeTemplate(t, dir, "conventions.md", "follow the rules")
	t.Setenv(config.EnvTemplatesPath, dir)

	out, err := runCommand(t, "load", "conventions", "--workspace", workspace, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\nOutput: %s", err, out)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out)
	}
	if result["template"] != "conventions.md" {
		t.Errorf("template = %v, want conventions.md", result["template"])
	}

	data, readErr := os.ReadFile(filepath.Join(template.SteeringDir(workspace), "conventions.md"))
	if readErr != nil {
		t.Fatalf("destination not written: %v", readErr)
	}
	if string(data) != "follow the rules" {
		t.Errorf("destination content = %q", data)
	}
}

func TestLoadCommand_ByPath(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	workspace := t.TempDir()
	source := filepath.Join(dir, "local.md")
	writeTemplate(t, dir, "local.md", "hello")

	// No templates path configured; an explicit path still works.
	out, err := runCommand(t, "load", source, "--workspace", workspace)
	if err != nil {
		t.Fatalf("Execute() error = %v\nOutput: %s", err, out)
	}

	data, readErr := os.ReadFile(filepath.Join(template.SteeringDir(workspace), "local.md"))
	if readErr != nil {
		t.Fatalf("destination not written: %v", readErr)
	}
	if string(data) != "hello" {
		t.Errorf("destination content = %q", data)
	}
}

func TestLoadCommand_MissingSource(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	workspace := t.TempDir()
	t.Setenv(config.EnvTemplatesPath, dir)

	_, err := runCommand(t, "load", "nonexistent", "--workspace", workspace)
	if err == nil {
		t.Fatal("Execute() expected error for missing template")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}

	// No destination file was written.
	entries, readErr := os.ReadDir(template.SteeringDir(workspace))
	if readErr == nil && len(entries) != 0 {
		t.Errorf("failed load left files in the steering directory: %v", entries)
	}
}

func TestLoadCommand_EmptyWorkspace(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writeTemplate(t, dir, "a.md", "x")
	t.Setenv(config.EnvTemplatesPath, dir)

	_, err := runCommand(t, "load", "a", "--workspace", "")
	if err == nil {
		t.Fatal("Execute() expected error for empty workspace")
	}
	if err.Error() != "no workspace open" {
		t.Errorf("error = %q, want %q", err.Error(), "no workspace open")
	}
}

func TestLoadCommand_SequentialLoads(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	workspace := t.TempDir()
	writeTemplate(t, dir, "x.md", "ex")
	writeTemplate(t, dir, "y.md", "why")
	t.Setenv(config.EnvTemplatesPath, dir)

	for _, name := range []string{"x", "y"} {
		if out, err := runCommand(t, "load", name, "--workspace", workspace); err != nil {
			t.Fatalf("load %s error = %v\nOutput: %s", name, err, out)
		}
	}

	steeringDir := template.SteeringDir(workspace)
	for name, want := range map[string]string{"x.md": "ex", "y.md": "why"} {
		data, err := os.ReadFile(filepath.Join(steeringDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s content = %q, want %q", name, data, want)
		}
	}
}
