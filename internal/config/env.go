package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".daftar"
	// FileName is the config file looked up inside the base directory.
	FileName = "config.toml"
)

// ResolveBasePath determines where daftar keeps its config, defaulting to
// ~/.daftar. The location can be overridden by exporting DAFTAR_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("DAFTAR_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// DefaultPath returns the config file path under ResolveBasePath.
func DefaultPath() (string, error) {
	base, err := ResolveBasePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, FileName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
