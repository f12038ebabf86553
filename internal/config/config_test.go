package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "urlmap") {
		t.Errorf("GetConfigDir() = %v, should contain 'urlmap'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix-like systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "urlmap"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestConfigRoot(t *testing.T) {
	home := func() (string, error) { return "/home/ada", nil }
	noHome := func() (string, error) { return "", errors.New("no home") }

	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		home    func() (string, error)
		want    string
		wantErr bool
	}{
		{"linux xdg", "linux", map[string]string{"XDG_CONFIG_HOME": "/xdg"}, home, "/xdg", false},
		{"linux home", "linux", nil, home, filepath.Join("/home/ada", ".config"), false},
		{"darwin ignores xdg", "darwin", map[string]string{"XDG_CONFIG_HOME": "/xdg"}, home, filepath.Join("/home/ada", ".config"), false},
		{"windows localappdata", "windows", map[string]string{"LOCALAPPDATA": `C:\Local`}, noHome, `C:\Local`, false},
		{"windows profile", "windows", map[string]string{"USERPROFILE": "/profile"}, noHome, filepath.Join("/profile", "AppData", "Local"), false},
		{"windows nothing set", "windows", nil, home, "", true},
		{"no home", "linux", nil, noHome, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			got, err := configRoot(tt.goos, getenv, tt.home)
			if (err != nil) != tt.wantErr {
				t.Fatalf("configRoot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("configRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.Output != OutputAuto {
		t.Errorf("NewConfig().Output = %q, want %q", cfg.Output, OutputAuto)
	}
	if len(cfg.Maps) != 0 {
		t.Errorf("NewConfig().Maps = %v, want empty", cfg.Maps)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("NewConfig().Validate() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty for defaults", cfg.Path())
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `version: 1
maps:
  - gtk.yaml
  - /opt/maps/extra.json
log_level: debug
output: plain
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Output != OutputPlain {
		t.Errorf("Output = %q, want plain", cfg.Output)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	paths := cfg.MapPaths()
	if len(paths) != 2 {
		t.Fatalf("MapPaths() = %v, want 2 entries", paths)
	}
	if want := filepath.Join(dir, "gtk.yaml"); paths[0] != want {
		t.Errorf("MapPaths()[0] = %q, want %q", paths[0], want)
	}
	if runtime.GOOS != "windows" && paths[1] != "/opt/maps/extra.json" {
		t.Errorf("MapPaths()[1] = %q, want absolute path unchanged", paths[1])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unsupported version", "version: 2\n"},
		{"bad output", "version: 1\noutput: sparkly\n"},
		{"empty map path", "version: 1\nmaps: [\"\"]\n"},
		{"not yaml", "version: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.data)
			}
		})
	}
}

func TestParse_DefaultsOutput(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Output != OutputAuto {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputAuto)
	}
}

func TestConfigSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Maps = []string{"gtk.yaml"}
	cfg.LogLevel = "warn"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() after Save = %q, want %q", cfg.Path(), path)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Maps) != 1 || loaded.Maps[0] != "gtk.yaml" {
		t.Errorf("loaded Maps = %v", loaded.Maps)
	}
	if loaded.LogLevel != "warn" {
		t.Errorf("loaded LogLevel = %q, want warn", loaded.LogLevel)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
