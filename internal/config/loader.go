package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the converter configuration.
// Search order: customPath -> ~/.lrconv/config.yaml -> ./lrconv.yaml -> built-in defaults.
// Missing files in the search path are skipped; a custom path that cannot be
// read is an error.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userPath, err)
			}
			return cfg, nil
		}
	}

	if data, err := os.ReadFile("lrconv.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config lrconv.yaml: %w", err)
		}
		return cfg, nil
	}

	return cfg, nil
}

// userConfigPath returns ~/.lrconv/config.yaml, or "" when the home
// directory cannot be resolved.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lrconv", "config.yaml")
}
