package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "urlmap"
	configFile = "config.yaml"

	// CurrentVersion is the only supported config file version
	CurrentVersion = 1
)

// Output styles for rendered command output
const (
	OutputAuto  = "auto"  // Color when stdout is a terminal
	OutputColor = "color" // Always color
	OutputPlain = "plain" // Never color
)

// Config represents the user configuration file.
type Config struct {
	Version   int      `yaml:"version"`
	Maps      []string `yaml:"maps,omitempty"`       // Extra map files, merged in order
	NoBuiltin bool     `yaml:"no_builtin,omitempty"` // Skip the embedded table
	LogLevel  string   `yaml:"log_level,omitempty"`  // debug, info, warn, error
	Output    string   `yaml:"output,omitempty"`     // auto, color, plain

	// path is the file this config was loaded from, if any
	path string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Output:  OutputAuto,
	}
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}

	switch c.Output {
	case "", OutputAuto, OutputColor, OutputPlain:
	default:
		return fmt.Errorf("invalid output %q (expected auto, color or plain)", c.Output)
	}

	for i, m := range c.Maps {
		if m == "" {
			return fmt.Errorf("maps[%d] is empty", i)
		}
	}

	return nil
}

// MapPaths returns the configured map files with relative paths resolved
// against the directory of the config file.
func (c *Config) MapPaths() []string {
	paths := make([]string, 0, len(c.Maps))
	for _, m := range c.Maps {
		if !filepath.IsAbs(m) && c.path != "" {
			m = filepath.Join(filepath.Dir(c.path), m)
		}
		paths = append(paths, m)
	}
	return paths
}

// GetConfigDir returns the directory holding the urlmap config file.
func GetConfigDir() (string, error) {
	root, err := configRoot(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, appName), nil
}

// configRoot returns the per-user configuration root for goos:
// %LOCALAPPDATA% on Windows, $XDG_CONFIG_HOME on other non-macOS systems,
// and $HOME/.config otherwise.
func configRoot(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	if goos == "windows" {
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
		if profile := getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "AppData", "Local"), nil
		}
		return "", errors.New("cannot locate config root: LOCALAPPDATA and USERPROFILE are unset")
	}

	if goos != "darwin" {
		if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
	}

	dir, err := home()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(dir, ".config"), nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the configuration file at path.
// An empty path selects the default location. If the file doesn't exist,
// a default Config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes and validates configuration YAML.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = OutputAuto
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, or to the default location when
// path is empty. Performs an atomic write to prevent corruption on crash.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# urlmap configuration file
#
# maps: extra [namespace, base_url] files merged after the built-in table.
#       Relative paths are resolved against this file's directory.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	c.path = path
	return nil
}
