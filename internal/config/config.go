package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the steering config directory.
const FileName = "config.yaml"

// EnvTemplatesPath overrides the persisted templates path when set.
// Environment always takes precedence over the config file.
const EnvTemplatesPath = "STEERING_TEMPLATES"

// Config holds the persisted steering settings.
type Config struct {
	// TemplatesPath is the directory containing .md steering templates.
	// Empty means not configured, which is a valid, handled state.
	TemplatesPath string `yaml:"templates_path"`
}

// Path returns the full path to the config file, or "" if the
// configuration directory cannot be determined.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Load reads the config file from the steering config directory.
// A missing file yields a zero Config, not an error.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
// A missing file yields a zero Config, not an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	path := Path()
	if path == "" {
		return errors.New("cannot determine config directory")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes a config file to an explicit path.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// TemplatesPath returns the effective templates directory.
// $STEERING_TEMPLATES wins over the config file; "" means unset.
// The value is re-read on every call, never cached.
func TemplatesPath() string {
	if env := os.Getenv(EnvTemplatesPath); env != "" {
		return env
	}
	cfg, err := Load()
	if err != nil {
		return ""
	}
	return cfg.TemplatesPath
}

// SetTemplatesPath persists the templates directory into the config file.
func SetTemplatesPath(dir string) error {
	cfg, err := Load()
	if err != nil {
		// An unreadable config file is replaced rather than blocking the
		// user from reconfiguring.
		cfg = &Config{}
	}
	cfg.TemplatesPath = dir
	return Save(cfg)
}
