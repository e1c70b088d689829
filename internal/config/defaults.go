package config

import (
	"os"
	"path/filepath"
)

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_format": "yaml",
		"source":         "",
		"repository":     "",
		"plain":          false,
	}
}

// UserConfigPath returns the path to the user-level config file,
// honoring XDG_CONFIG_HOME when set.
func UserConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "changelog-md", "config.yml"), nil
}

// ProjectConfigPath returns the project-level config path relative to
// the current directory.
func ProjectConfigPath() string {
	return ".changelog-md.yml"
}
