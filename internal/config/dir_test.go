package config

import (
	"path/filepath"
	"testing"
)

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("STEERING_CONFIG_HOME", "/custom/steering")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := Dir(); got != "/custom/steering" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/steering")
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("STEERING_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	want := filepath.Join("/xdg", "steering")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("STEERING_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	want := filepath.Join("/home/tester", ".config", "steering")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}
