package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/spriteloop.yaml
var defaultYAML []byte

// SourceEmbedded names the built-in defaults as a config source.
const SourceEmbedded = "embedded"

// Load returns the configuration and where it came from.
// Search order: customPath -> ~/.spriteloop/config.yaml -> ./configs/spriteloop.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. The
// user and local files are skipped silently when unusable.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, candidate := range []string{userConfigPath(), filepath.Join("configs", "spriteloop.yaml")} {
		if candidate == "" {
			continue
		}
		if cfg, err := LoadFile(candidate); err == nil {
			return cfg, candidate, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates one config file. Fields missing from the file
// keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// decode picks the format from the file extension. Anything that is not
// .toml is treated as YAML.
func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spriteloop", "config.yaml")
}
