package main

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

func TestStorageDir(t *testing.T) {
	app := test.NewTempApp(t)
	dir := t.TempDir()

	prefs := store.NewPreferencesBackend(app.Preferences())
	assert.Equal(t, "/app/root", storageDir(prefs, "/app/root"))

	file := store.NewFileBackend(filepath.Join(dir, "events.json"))
	assert.Equal(t, dir, storageDir(file, "/app/root"))
}

func TestSettingsWindow_OpenLocationFollowsOpenBackend(t *testing.T) {
	app := test.NewTempApp(t)
	config := &models.Config{StorageBackend: models.BackendPreferences}
	backend := store.NewPreferencesBackend(app.Preferences())

	sw := NewSettingsWindow(app, config, backend, func(newConfig *models.Config) error {
		return nil
	})
	defer sw.window.Close()

	sw.backendSelect.SetSelected(models.BackendFile)
	sw.pathEntry.SetText(filepath.Join(t.TempDir(), "events.json"))
	sw.save()

	// The saved config now names the file backend, but preferences are still open
	assert.Equal(t, models.BackendFile, sw.config.StorageBackend)
	assert.Equal(t, "/app/root", storageDir(sw.backend, "/app/root"))
	assert.Equal(t, backend.Location(), sw.backend.Location())
}
