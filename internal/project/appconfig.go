package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/cabinetforge/internal/model"
)

// DefaultConfigDir returns the per-user directory for application state.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cabinetforge"), nil
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure the collections are never nil
	if config.RecentDesigns == nil {
		config.RecentDesigns = []string{}
	}
	if config.DefaultMaterialCosts == nil {
		config.DefaultMaterialCosts = map[string]float64{}
	}
	return config, nil
}

// SaveAppConfigToDefault saves the config to the default path.
func SaveAppConfigToDefault(config model.AppConfig) error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveAppConfig(path, config)
}

// LoadAppConfigFromDefault loads the config from the default path.
func LoadAppConfigFromDefault() (model.AppConfig, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return model.AppConfig{}, err
	}
	return LoadAppConfig(path)
}
