package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ViewConfig holds user-tunable view defaults, loaded from an optional
// YAML file in the app config directory.
type ViewConfig struct {
	DayWidth int    `yaml:"day_width"`
	Mirrored bool   `yaml:"mirrored"`
	Theme    string `yaml:"theme"`
}

func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		DayWidth: DayWidthDefault,
		Mirrored: true,
		Theme:    "default",
	}
}

// LoadViewConfig reads config.yaml from dir. A missing file is not an
// error; it returns the defaults.
func LoadViewConfig(dir string) (ViewConfig, error) {
	cfg := DefaultViewConfig()
	path := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultViewConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DayWidth < DayWidthMin || cfg.DayWidth > DayWidthMax {
		cfg.DayWidth = DayWidthDefault
	}
	return cfg, nil
}

// SaveViewConfig rewrites config.yaml in dir.
func SaveViewConfig(dir string, cfg ViewConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644)
}
