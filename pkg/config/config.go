/*
Package config manages TOML configuration for the spell checker's ambient
tunables — the core packages (affix, wordgraph, dictionary, spell,
suggest) take their settings as explicit constructor arguments; this
package only exists to load those arguments from disk for cmd/ entrypoints.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/affixspell/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire configuration structure.
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	CLI     CLIConfig     `toml:"cli"`
}

// SuggestConfig controls the suggestion engine's bounded search (spec §4.5,
// §9).
type SuggestConfig struct {
	MaxSuggestions  int `toml:"max_suggestions"`
	CacheCapacity   int `toml:"cache_capacity"`
	MaxRecurseDepth int `toml:"max_recurse_depth"`
}

// CLIConfig holds interactive CLI defaults.
type CLIConfig struct {
	MinPrefixLength int `toml:"min_prefix_length"`
	MaxPrefixLength int `toml:"max_prefix_length"`
}

// DefaultConfig returns a Config populated with the spec's stated defaults.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			MaxSuggestions:  10,
			CacheCapacity:   4096,
			MaxRecurseDepth: 16,
		},
		CLI: CLIConfig{
			MinPrefixLength: 1,
			MaxPrefixLength: 100,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/affixspell
// 2. ~/Library/Application Support/affixspell (macOS)
// 3. current executable's directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("failed to get home directory: %v", err)
		return executableDir()
	}

	primaryPath := filepath.Join(homeDir, ".config", "affixspell")
	if writableDir(primaryPath) {
		return primaryPath, nil
	}

	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "affixspell")
	if writableDir(macOSPath) {
		return macOSPath, nil
	}

	return executableDir()
}

func writableDir(path string) bool {
	if err := utils.EnsureDir(path); err != nil {
		return false
	}
	probe := filepath.Join(path, ".writetest")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. custom path from a --config flag
// 2. default path under the user config dir
// 3. builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				return cfg, customConfigPath, nil
			}
			log.Warnf("failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	if err := utils.EnsureDir(dir); err != nil {
		log.Warnf("failed to create config directory %s: %v. Using built-in defaults...", dir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
		}
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads a Config from a TOML file, starting from the built-in
// defaults so any section or key the file omits keeps its default value.
// A malformed file is skipped entirely in favor of all-defaults, the same
// "skip what doesn't parse, keep going" posture pkg/affix/parser.go takes
// toward a malformed .aff directive, just applied at the whole-file grain
// a single config document warrants rather than per key.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		log.Warnf("could not parse configuration from %s: %v. Using all defaults.", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// SaveConfig saves a Config to a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
