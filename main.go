package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

const appID = "io.github.borgmon.ycalendar"

type YCalendar struct {
	app            fyne.App
	configStore    *store.ConfigStore
	config         *models.Config
	eventStore     *store.EventStore
	calendarWindow *CalendarWindow
	settingsWindow *SettingsWindow
	stopWatch      chan struct{}
}

func main() {
	Execute()
}

func runGUI() error {
	yc := &YCalendar{
		app: app.NewWithID(appID),
	}

	if err := yc.initialize(); err != nil {
		return err
	}

	yc.run()
	return nil
}

func (yc *YCalendar) initialize() error {
	yc.configStore = store.NewConfigStore(yc.app.Preferences())
	yc.config = yc.configStore.Load()

	// Sync autostart state with config on startup
	if err := setupAutostart(yc.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	backend, err := store.OpenBackend(yc.config, yc.app.Preferences())
	if err != nil {
		log.Printf("Error opening %s storage, falling back to preferences: %v", yc.config.StorageBackend, err)
		backend = store.NewPreferencesBackend(yc.app.Preferences())
	}

	yc.eventStore = store.NewEventStore(backend)
	yc.eventStore.Load()
	log.Printf("Loaded events for %d days from %s", yc.eventStore.Len(), backend.Location())

	yc.calendarWindow = NewCalendarWindow(yc.app, yc.eventStore, yc.showSettingsWindow, yc.updateSystemTrayMenu)
	yc.setupSystemTray()

	return nil
}

func (yc *YCalendar) run() {
	yc.calendarWindow.Show()
	yc.app.Run()

	if yc.stopWatch != nil {
		close(yc.stopWatch)
	}

	if err := yc.eventStore.Backend().Close(); err != nil {
		log.Printf("Error closing storage: %v", err)
	}
}

func (yc *YCalendar) showSettingsWindow() {
	// If settings window already exists and is showing, just bring it to front
	if yc.settingsWindow != nil && yc.settingsWindow.window != nil {
		yc.settingsWindow.window.RequestFocus()
		yc.settingsWindow.window.Show()
		return
	}

	yc.settingsWindow = NewSettingsWindow(yc.app, yc.config, yc.eventStore.Backend(), func(newConfig *models.Config) error {
		if err := setupAutostart(newConfig.AutoStart); err != nil {
			return err
		}

		if newConfig.StorageBackend != yc.config.StorageBackend || newConfig.StoragePath != yc.config.StoragePath {
			log.Printf("Storage changed to %s, takes effect on next launch", newConfig.StorageBackend)
		}

		yc.config = newConfig
		yc.configStore.Save(yc.config)
		return nil
	})

	yc.settingsWindow.window.SetOnClosed(func() {
		yc.settingsWindow = nil
	})

	yc.settingsWindow.Show()
}

func (yc *YCalendar) quit() {
	yc.app.Quit()
}
