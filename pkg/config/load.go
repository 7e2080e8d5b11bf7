package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a check profile from a YAML file, applies defaults, and
// validates it
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	profile := &Profile{}
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	profile.Normalize()

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return profile, nil
}
