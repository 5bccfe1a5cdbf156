package store

import "fyne.io/fyne/v2"

// PreferencesBackend keeps the events blob in the application's Fyne
// preferences, next to the rest of the settings
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend on top of prefs
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

func (b *PreferencesBackend) Read() (string, error) {
	return b.prefs.String(EventsKey), nil
}

func (b *PreferencesBackend) Write(data string) error {
	b.prefs.SetString(EventsKey, data)
	return nil
}

func (b *PreferencesBackend) Location() string {
	return "application preferences (" + EventsKey + ")"
}

func (b *PreferencesBackend) Close() error {
	return nil
}
