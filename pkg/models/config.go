package models

// Storage backend names accepted in Config.StorageBackend
const (
	BackendPreferences = "preferences"
	BackendFile        = "file"
	BackendSQLite      = "sqlite"
)

// Config holds application configuration
type Config struct {
	AutoStart      bool   `json:"auto_start"`
	StorageBackend string `json:"storage_backend"` // preferences, file or sqlite
	StoragePath    string `json:"storage_path"`    // file or sqlite location, empty for default
}

// DefaultConfig returns the configuration used on first run
func DefaultConfig() *Config {
	return &Config{
		AutoStart:      false,
		StorageBackend: BackendPreferences,
	}
}

// Normalize replaces unknown values with defaults
func (c *Config) Normalize() {
	switch c.StorageBackend {
	case BackendPreferences, BackendFile, BackendSQLite:
	default:
		c.StorageBackend = BackendPreferences
	}
	if c.StorageBackend == BackendPreferences {
		c.StoragePath = ""
	}
}

// StorageBackends lists the selectable backends in display order
func StorageBackends() []string {
	return []string{BackendPreferences, BackendFile, BackendSQLite}
}
