//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs so no
// real user config leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	return tmpDir
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde with nested path", "~/music/library/songs.json", filepath.Join(home, "music", "library", "songs.json")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/songs.json", "music/songs.json"},
		{"url unchanged", "https://example.com/songs.json", "https://example.com/songs.json"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog != "songs.json" {
		t.Errorf("Catalog = %q, want songs.json", cfg.Catalog)
	}
	if cfg.Icons != IconsUnicode {
		t.Errorf("Icons = %q, want %q", cfg.Icons, IconsUnicode)
	}
	if cfg.Volume != 1 {
		t.Errorf("Volume = %v, want 1", cfg.Volume)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Notifications {
		t.Error("Notifications should default to false")
	}
	if cfg.HasVoiceConfig() {
		t.Error("voice should not be configured by default")
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	isolate(t)

	configContent := `
catalog = "~/music/songs.json"
icons = "nerd"
volume = 0.4
notifications = true
log_level = "DEBUG"

[voice]
command = "whisper-listen"
args = ["--lang", "en"]
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "music", "songs.json"); cfg.Catalog != want {
		t.Errorf("Catalog = %q, want %q", cfg.Catalog, want)
	}
	if cfg.Icons != IconsNerd {
		t.Errorf("Icons = %q, want %q", cfg.Icons, IconsNerd)
	}
	if cfg.Volume != 0.4 {
		t.Errorf("Volume = %v, want 0.4", cfg.Volume)
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.HasVoiceConfig() {
		t.Fatal("voice should be configured")
	}
	if cfg.Voice.Command != "whisper-listen" {
		t.Errorf("Voice.Command = %q", cfg.Voice.Command)
	}
	if len(cfg.Voice.Args) != 2 || cfg.Voice.Args[1] != "en" {
		t.Errorf("Voice.Args = %v", cfg.Voice.Args)
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile("config.toml", []byte(`icons = "nerd"
catalog = "local.json"`), 0o600); err != nil {
		t.Fatal(err)
	}
	extra := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(extra, []byte(`icons = "none"`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(extra)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Icons != IconsNone {
		t.Errorf("Icons = %q, want %q", cfg.Icons, IconsNone)
	}
	// Keys absent from the explicit file keep lower-priority values.
	if cfg.Catalog != "local.json" {
		t.Errorf("Catalog = %q, want local.json", cfg.Catalog)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	isolate(t)

	if _, err := Load("does-not-exist.toml"); err == nil {
		t.Error("Load() expected error for missing explicit config")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	isolate(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestInitialVolume(t *testing.T) {
	tests := []struct {
		volume float64
		want   float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{3, 1},
		{0, 0},
		{1, 1},
	}
	for _, tt := range tests {
		cfg := &Config{Volume: tt.volume}
		if got := cfg.InitialVolume(); got != tt.want {
			t.Errorf("InitialVolume(%v) = %v, want %v", tt.volume, got, tt.want)
		}
	}
}
