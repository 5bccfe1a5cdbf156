package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/borgmon/ycalendar/pkg/models"
)

// EventsKey is the fixed key the whole event store is saved under
const EventsKey = "calendarEvents"

// Backend holds the serialized event store as a single blob
type Backend interface {
	// Read returns the saved blob, or "" if nothing has been saved yet
	Read() (string, error)
	// Write replaces the saved blob
	Write(data string) error
	// Location describes where the blob lives, for display
	Location() string
	Close() error
}

// OpenBackend opens the backend selected in the config. prefs is only used by
// the preferences backend and may be nil otherwise.
func OpenBackend(config *models.Config, prefs fyne.Preferences) (Backend, error) {
	switch config.StorageBackend {
	case models.BackendFile:
		path := config.StoragePath
		if path == "" {
			var err error
			if path, err = DefaultPath(models.BackendFile); err != nil {
				return nil, err
			}
		}
		return NewFileBackend(path), nil
	case models.BackendSQLite:
		path := config.StoragePath
		if path == "" {
			var err error
			if path, err = DefaultPath(models.BackendSQLite); err != nil {
				return nil, err
			}
		}
		return OpenSQLiteBackend(path)
	default:
		if prefs == nil {
			return nil, fmt.Errorf("preferences backend needs an application")
		}
		return NewPreferencesBackend(prefs), nil
	}
}

// DefaultPath returns the default data file for the file and sqlite backends
func DefaultPath(backend string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	name := "events.json"
	if backend == models.BackendSQLite {
		name = "events.db"
	}
	return filepath.Join(dir, "ycalendar", name), nil
}
