// Package config persists the application settings: the configured paths
// and the saved mod load order with enabled flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vmm/internal/domain"

	"gopkg.in/yaml.v3"
)

// DefaultTmpDir is the work directory for merge output when none is
// configured.
const DefaultTmpDir = "tmp"

// DefaultModsDir is where mods are discovered when none is configured.
const DefaultModsDir = "mods"

// Config holds every persisted setting. Mods carries the load order; slice
// position is the merge priority.
type Config struct {
	GamePath   string            `yaml:"game_path"`
	CfgBinPath string            `yaml:"cfgbin_path"`
	ViolaPath  string            `yaml:"violacli_path"`
	TmpDir     string            `yaml:"tmp_dir"`
	ModsDir    string            `yaml:"mods_dir"`
	Mods       []domain.SavedMod `yaml:"mods"`
}

// Path returns the config file location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// Load reads configuration from the given directory. A missing file yields
// defaults, not an error.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		TmpDir:  DefaultTmpDir,
		ModsDir: DefaultModsDir,
	}

	data, err := os.ReadFile(Path(configDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.TmpDir == "" {
		cfg.TmpDir = DefaultTmpDir
	}
	if cfg.ModsDir == "" {
		cfg.ModsDir = DefaultModsDir
	}

	return cfg, nil
}

// Save writes configuration to the given directory.
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(Path(configDir), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
