// Package yaml implements config file loading backed by goccy/go-yaml.
package yaml

import (
	"os"

	"github.com/fwojciec/pagemd"
	"github.com/goccy/go-yaml"
)

// Ensure ConfigLoader implements pagemd.ConfigLoader at compile time.
var _ pagemd.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader loads converter settings from YAML files.
type ConfigLoader struct{}

// NewConfigLoader creates a new ConfigLoader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// LoadConfig reads and validates the config file at path. Unknown keys are
// rejected so a misspelled setting surfaces instead of silently doing
// nothing.
func (l *ConfigLoader) LoadConfig(path string) (*pagemd.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagemd.Errorf(pagemd.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}

	var cfg pagemd.Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, pagemd.Errorf(pagemd.EINVALID, "invalid config file %q: %s", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
