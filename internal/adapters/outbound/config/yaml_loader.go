package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commitgate/commitgate/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".commitgate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .commitgate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .commitgate.yaml from root.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(root string) (domain.GateConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.GateConfig{}, err
	}

	var cfg domain.GateConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.GateConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Settings the file leaves unset fall back to the defaults; the hook
	// list is taken whole, never merged entry-by-entry.
	defaults := domain.DefaultConfig()
	if cfg.Settings.Jobs == 0 {
		cfg.Settings.Jobs = defaults.Settings.Jobs
	}
	if cfg.Settings.HookTimeout == 0 {
		cfg.Settings.HookTimeout = defaults.Settings.HookTimeout
	}
	if cfg.Settings.Exclude == "" {
		cfg.Settings.Exclude = defaults.Settings.Exclude
	}
	if len(cfg.Hooks) == 0 {
		cfg.Hooks = defaults.Hooks
	}

	// Validate before use — catches typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.GateConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
