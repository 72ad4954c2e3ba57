package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempConfig points the config directory at a fresh temp dir and
// clears the env override so tests see only the config file.
func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STEERING_CONFIG_HOME", dir)
	t.Setenv(EnvTemplatesPath, "")
	_ = os.Unsetenv(EnvTemplatesPath) //nolint:errcheck
	return dir
}

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TemplatesPath != "" {
		t.Errorf("TemplatesPath = %q, want empty", cfg.TemplatesPath)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	useTempConfig(t)

	if err := Save(&Config{TemplatesPath: "/srv/templates"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TemplatesPath != "/srv/templates" {
		t.Errorf("TemplatesPath = %q, want %q", cfg.TemplatesPath, "/srv/templates")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("templates_path: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("LoadFrom() error = %v, want parse error", err)
	}
}

func TestTemplatesPath_EnvWins(t *testing.T) {
	useTempConfig(t)

	if err := SetTemplatesPath("/from/config"); err != nil {
		t.Fatalf("SetTemplatesPath() error = %v", err)
	}
	t.Setenv(EnvTemplatesPath, "/from/env")

	if got := TemplatesPath(); got != "/from/env" {
		t.Errorf("TemplatesPath() = %q, want %q (env should take precedence)", got, "/from/env")
	}
}

func TestTemplatesPath_ConfigFallback(t *testing.T) {
	useTempConfig(t)

	if got := TemplatesPath(); got != "" {
		t.Errorf("TemplatesPath() = %q, want empty for unset config", got)
	}

	if err := SetTemplatesPath("/from/config"); err != nil {
		t.Fatalf("SetTemplatesPath() error = %v", err)
	}
	if got := TemplatesPath(); got != "/from/config" {
		t.Errorf("TemplatesPath() = %q, want %q", got, "/from/config")
	}
}

func TestSetTemplatesPath_ReplacesUnreadableConfig(t *testing.T) {
	dir := useTempConfig(t)

	// Corrupt config file must not block reconfiguration.
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(":::"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := SetTemplatesPath("/recovered"); err != nil {
		t.Fatalf("SetTemplatesPath() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TemplatesPath != "/recovered" {
		t.Errorf("TemplatesPath = %q, want %q", cfg.TemplatesPath, "/recovered")
	}
}

func TestSave_CreatesConfigDirectory(t *testing.T) {
	parent := t.TempDir()
	nested := filepath.Join(parent, "deep", "steering")
	t.Setenv("STEERING_CONFIG_HOME", nested)

	if err := Save(&Config{TemplatesPath: "/x"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(nested, FileName)); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}
