// Package main provides the entry point for the steering CLI.
package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/kirolabs/steering/internal/config"
)

// doctorJSON is the parsed doctor --json output.
type doctorJSON struct {
	Config    []checkResult  `json:"config"`
	Workspace []checkResult  `json:"workspace"`
	Summary   *doctorSummary `json:"summary"`
}

func runDoctorJSON(t *testing.T, args ...string) *doctorJSON {
	t.Helper()
	out, err := runCommand(t, append([]string{"doctor", "--json"}, args...)...)
	if err != nil {
		t.Fatalf("Execute() error = %v\nOutput: %s", err, out)
	}
	var result doctorJSON
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, out)
	}
	return &result
}

func findCheck(t *testing.T, checks []checkResult, name string) checkResult {
	t.Helper()
	for _, check := range checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q not found in %+v", name, checks)
	return checkResult{}
}

func TestDoctorCommand_HealthyConfiguration(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	workspace := t.TempDir()
	writeTemplate(t, dir, "a.md", "x")

	if _, err := runCommand(t, "path", "set", dir); err != nil {
		t.Fatalf("path set error = %v", err)
	}

	result := runDoctorJSON(t, "--workspace", workspace)

	if result.Summary.Failed != 0 {
		t.Errorf("failed = %d, want 0: %+v", result.Summary.Failed, result)
	}
	for _, name := range []string{"Config File", "Templates Path", "Templates"} {
		if check := findCheck(t, result.Config, name); check.Status != checkPass {
			t.Errorf("%s status = %q, want pass (%s)", name, check.Status, check.Message)
		}
	}
	if check := findCheck(t, result.Workspace, "Workspace Root"); check.Status != checkPass {
		t.Errorf("Workspace Root status = %q, want pass", check.Status)
	}
}

func TestDoctorCommand_UnsetPath(t *testing.T) {
	isolateConfig(t)

	result := runDoctorJSON(t, "--workspace", t.TempDir())

	if check := findCheck(t, result.Config, "Templates Path"); check.Status != checkWarn {
		t.Errorf("Templates Path status = %q, want warn", check.Status)
	}
	if result.Summary.Warnings == 0 {
		t.Error("summary should count warnings for an unset path")
	}
}

func TestDoctorCommand_MissingTemplatesDir(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvTemplatesPath, filepath.Join(t.TempDir(), "gone"))

	result := runDoctorJSON(t, "--workspace", t.TempDir())

	if check := findCheck(t, result.Config, "Templates Path"); check.Status != checkFail {
		t.Errorf("Templates Path status = %q, want fail", check.Status)
	}
	if result.Summary.Failed == 0 {
		t.Error("summary should count failures for a missing directory")
	}
}

func TestDoctorCommand_EmptyTemplatesDir(t *testing.T) {
	isolateConfig(t)
	t.Setenv(config.EnvTemplatesPath, t.TempDir())

	result := runDoctorJSON(t, "--workspace", t.TempDir())

	if check := findCheck(t, result.Config, "Templates"); check.Status != checkWarn {
		t.Errorf("Templates status = %q, want warn for empty directory", check.Status)
	}
}

func TestDoctorCommand_NoWorkspace(t *testing.T) {
	isolateConfig(t)

	result := runDoctorJSON(t, "--workspace", "")

	if check := findCheck(t, result.Workspace, "Workspace Root"); check.Status != checkFail {
		t.Errorf("Workspace Root status = %q, want fail", check.Status)
	}
}
