// Package config loads the YAML site configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level generator configuration.
type Config struct {
	// CSVPath is the talks spreadsheet export read by generate.
	CSVPath string `yaml:"csv_path"`

	// OutDir is where the generated Markdown tree is written.
	OutDir string `yaml:"out_dir"`

	// BuildDir is the rendered HTML root checked by validate.
	BuildDir string `yaml:"build_dir"`

	// SiteTitle labels the generated section.
	SiteTitle string `yaml:"site_title"`

	// RecentLimit caps the "Recently completed" list on the root index.
	RecentLimit int `yaml:"recent_limit"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		CSVPath:     filepath.Join("content", "talks.csv"),
		OutDir:      filepath.Join("content", "talks"),
		BuildDir:    "talks",
		SiteTitle:   "Talks",
		RecentLimit: 12,
	}
}

// Normalize fills in missing/zero values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.CSVPath == "" {
		c.CSVPath = d.CSVPath
	}
	if c.OutDir == "" {
		c.OutDir = d.OutDir
	}
	if c.BuildDir == "" {
		c.BuildDir = d.BuildDir
	}
	if c.SiteTitle == "" {
		c.SiteTitle = d.SiteTitle
	}
	if c.RecentLimit <= 0 {
		c.RecentLimit = d.RecentLimit
	}
}

// Load loads configuration from the given YAML path. A missing file is the
// first run: a default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".talkgen-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
