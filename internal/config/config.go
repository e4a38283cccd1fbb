package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKey is returned when the config file sets a key daftar does not read.
var ErrUnknownKey = errors.New("unknown config key")

// Config holds user settings read from config.toml.
type Config struct {
	Language  string `toml:"language"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	AltScreen bool   `toml:"alt_screen"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Language: "en",
		LogLevel: "info",
	}
}

// Load reads path on top of Default. A missing file is not an error. An empty
// path resolves to DefaultPath.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Default(), fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	if logFile, err := normalizePath(strings.TrimSpace(cfg.LogFile)); err == nil {
		cfg.LogFile = logFile
	}
	return cfg, nil
}
