package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/ycalendar/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(prefs fyne.Preferences) *ConfigStore {
	return &ConfigStore{prefs: prefs}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	config := &models.Config{
		AutoStart:      cs.prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		StorageBackend: cs.prefs.StringWithFallback("storage_backend", defaults.StorageBackend),
		StoragePath:    cs.prefs.String("storage_path"),
	}
	config.Normalize()

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool("auto_start", config.AutoStart)
	cs.prefs.SetString("storage_backend", config.StorageBackend)
	cs.prefs.SetString("storage_path", config.StoragePath)
}
