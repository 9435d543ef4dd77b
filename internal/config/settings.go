package config

import (
	"github.com/ech-workers/ech-client/internal/models"
)

// LoadSettings loads the global settings from ~/.ech-client/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	return s, nil
}

// SaveSettings saves the global settings to ~/.ech-client/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
