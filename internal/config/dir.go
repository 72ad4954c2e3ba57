// Package config provides the steering configuration directory and the
// persisted templates path setting.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the steering configuration directory.
//
// Resolution:
//   - $STEERING_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/steering if set (respects XDG on any platform)
//   - %AppData%/steering on Windows
//   - ~/.config/steering on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("STEERING_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "steering")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "steering")
		}
	}

	// macOS and Linux: ~/.config/steering
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "steering")
}
