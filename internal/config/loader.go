package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadZigzag loads the runner configuration.
// Search order: customPath -> ~/.zigzag/configs/zigzag.yaml -> ./configs/zigzag.yaml -> embedded default
func LoadZigzag(customPath string) (ZigzagConfig, error) {
	// A custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ZigzagConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ZigzagConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("zigzag.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "zigzag.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultZigzagYAML); err == nil {
		return cfg, nil
	}
	return DefaultZigzagConfig(), nil
}

// parse decodes YAML on top of the built-in defaults, so a partial file only
// overrides the keys it names, then validates the result.
func parse(data []byte) (ZigzagConfig, error) {
	cfg := DefaultZigzagConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ZigzagConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ZigzagConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zigzag", "configs", filename)
}
