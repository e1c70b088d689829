// Package config provides hierarchical configuration management for
// changelog-md using koanf. Configuration is loaded with priority:
// environment variables > project config (.changelog-md.yml) > user
// config (~/.config/changelog-md/config.yml) > defaults. Both YAML and
// JSON config files are supported.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the changelog-md CLI tool configuration.
type Configuration struct {
	// DefaultFormat is the format used by init and convert when no
	// --format flag is given. Valid values: yaml, toml, json.
	// Can be set via CHANGELOG_MD_DEFAULT_FORMAT.
	DefaultFormat string `koanf:"default_format"`

	// Source pins the changelog source file path, bypassing the
	// CHANGELOG.* autodetection. Can be set via CHANGELOG_MD_SOURCE.
	Source string `koanf:"source"`

	// Repository overrides the repository URL written by init,
	// taking precedence over git remote discovery.
	// Can be set via CHANGELOG_MD_REPOSITORY.
	Repository string `koanf:"repository"`

	// Plain disables colors and icons in terminal output.
	// Can be set via CHANGELOG_MD_PLAIN.
	Plain bool `koanf:"plain"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .changelog-md.yml).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadConfigFile(k, userPath, "user"); err != nil {
			return nil, err
		}
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	if err := loadConfigFile(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("CHANGELOG_MD_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFile loads one config file if it exists, choosing the
// parser by extension. A missing file is not an error.
func loadConfigFile(k *koanf.Koanf, path, configType string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform maps CHANGELOG_MD_DEFAULT_FORMAT to default_format.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CHANGELOG_MD_"))
}

// Validate checks configuration values that have a constrained set.
func Validate(cfg *Configuration) error {
	switch strings.ToLower(cfg.DefaultFormat) {
	case "", "yaml", "yml", "toml", "json":
		return nil
	default:
		return fmt.Errorf("invalid default_format %q (expected yaml, toml, or json)", cfg.DefaultFormat)
	}
}
