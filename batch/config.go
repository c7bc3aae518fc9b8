package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/outline"
)

// LoadConfig reads extraction settings from a YAML file. Fields absent
// from the file keep their default values, so a config file only needs
// to name the settings it changes.
func LoadConfig(filename string) (outline.Config, error) {
	cfg := outline.DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
