package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user-adjustable application settings. The file is optional;
// a missing file yields the defaults.
type Config struct {
	// ExportDir is where `backup export` writes JSON files. Empty means the
	// current working directory.
	ExportDir string `yaml:"export_dir"`
	// VolumeUnit is the display unit for feed amounts ("ml" or "oz").
	// Stored amounts are always milliliters.
	VolumeUnit string `yaml:"volume_unit"`
	// Timezone overrides the system local time for the "today" default on
	// add commands. IANA name, e.g. "Asia/Tokyo".
	Timezone string `yaml:"timezone"`
	// Debug enables verbose logging to stderr.
	Debug bool `yaml:"debug"`
}

func Default() Config {
	return Config{VolumeUnit: "ml"}
}

// Path returns the config file path next to the given data directory.
func Path(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// Load reads the config file at path, returning defaults when the file does
// not exist.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.VolumeUnit != "ml" && cfg.VolumeUnit != "oz" {
		return cfg, fmt.Errorf("invalid volume_unit %q (must be ml or oz)", cfg.VolumeUnit)
	}
	if _, err := cfg.Location(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Location resolves the configured timezone, defaulting to the system local
// time when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Save writes the config file, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
