package fsarcamp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataRoot overrides the configured data root when set.
const EnvDataRoot = "FSARCAMP_DATA"

// Config holds the machine-local settings of the library. Fields omitted
// from the JSON file keep their zero value, so partial configs are safe.
type Config struct {
	// DataRoot is the directory holding the campaign project trees,
	// e.g. the Pol-InSAR share mount point.
	DataRoot string `json:"data_root,omitempty"`

	// GroundTruthRoot is the directory holding ground measurement files
	// when they live outside the campaign trees.
	GroundTruthRoot string `json:"ground_truth_root,omitempty"`
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "fsarcamp", "config.json"), nil
}

// LoadConfig loads a Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// DataRoot resolves the campaign data root: the FSARCAMP_DATA environment
// variable wins, then the per-user config file. Fails with ErrNotFound when
// neither is configured.
func DataRoot() (string, error) {
	if root := os.Getenv(EnvDataRoot); root != "" {
		return root, nil
	}
	path, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}
	cfg, err := LoadConfig(path)
	if err != nil || cfg.DataRoot == "" {
		return "", NotFoundf("data root (set %s or data_root in %s)", EnvDataRoot, path)
	}
	return cfg.DataRoot, nil
}
