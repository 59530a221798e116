package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tunes/internal/catalog"
)

const (
	IconsNerd    = "nerd"
	IconsUnicode = "unicode"
	IconsNone    = "none"
)

type Config struct {
	Catalog       string  `koanf:"catalog"`       // URL, JSON file or music directory
	Icons         string  `koanf:"icons"`         // "nerd", "unicode", or "none"
	Volume        float64 `koanf:"volume"`        // initial volume when none was saved
	Notifications bool    `koanf:"notifications"` // desktop "now playing" notifications
	LogLevel      string  `koanf:"log_level"`     // "debug", "info", "warn", "error"
	LogFile       string  `koanf:"log_file"`      // empty means the XDG state dir

	// Voice search (enables the voice key when a command is set)
	Voice VoiceConfig `koanf:"voice"`
}

// VoiceConfig holds the external speech-to-text command.
// The command must print one transcript per line, best first.
type VoiceConfig struct {
	Command string   `koanf:"command"`
	Args    []string `koanf:"args"`
}

// Load reads the config files in priority order (last wins).
// extra is an optional explicit path; unlike the default locations it must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := &Config{
		Catalog:  catalog.DefaultSource,
		Icons:    IconsUnicode,
		Volume:   1,
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Voice.Command = expandPath(cfg.Voice.Command)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/tunes/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tunes", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasVoiceConfig returns true if a speech-to-text command is configured.
func (c *Config) HasVoiceConfig() bool {
	return c.Voice.Command != ""
}

// InitialVolume returns the configured volume clamped to 0.0-1.0.
func (c *Config) InitialVolume() float64 {
	return min(max(c.Volume, 0), 1)
}
