package main

import (
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

type SettingsWindow struct {
	window   fyne.Window
	app      fyne.App
	config   *models.Config
	backend  store.Backend
	onSave   func(*models.Config) error

	autoStartCheck *widget.Check
	backendSelect  *widget.Select
	pathEntry      *widget.Entry

	// UI state
	saveStatusLabel *widget.Label
	saveButton      *widget.Button
}

// NewSettingsWindow creates the settings window. backend is the storage open
// for this session, which stays in use until restart even if config changes.
func NewSettingsWindow(app fyne.App, config *models.Config, backend store.Backend, onSave func(*models.Config) error) *SettingsWindow {
	sw := &SettingsWindow{
		app:      app,
		config:   config,
		backend:  backend,
		onSave:   onSave,
	}

	sw.window = app.NewWindow("YCalendar - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	sw.autoStartCheck = widget.NewCheck("Launch YCalendar at login", func(bool) {
		sw.updateSaveButtonState()
	})
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	sw.pathEntry = widget.NewEntry()
	sw.pathEntry.SetPlaceHolder("Default location")
	sw.pathEntry.SetText(sw.config.StoragePath)
	sw.pathEntry.OnChanged = func(string) {
		sw.updateSaveButtonState()
	}

	sw.backendSelect = widget.NewSelect(models.StorageBackends(), func(value string) {
		if value == models.BackendPreferences {
			sw.pathEntry.SetText("")
			sw.pathEntry.Disable()
		} else {
			sw.pathEntry.Enable()
		}
		sw.updateSaveButtonState()
	})
	sw.backendSelect.SetSelected(sw.config.StorageBackend)

	// Storage location display (read-only)
	locationEntry := widget.NewEntry()
	locationEntry.SetText(sw.backend.Location())
	locationEntry.Disable()

	openLocationButton := widget.NewButton("Open in File Manager", func() {
		sw.openLocation()
	})

	autoStartLabel := widget.NewLabel("Auto Start:")
	autoStartHelp := widget.NewLabel("Open the calendar automatically when you log in")
	autoStartHelp.Importance = widget.MediumImportance

	backendLabel := widget.NewLabel("Storage:")
	backendHelp := widget.NewLabel("Where events are kept. Changes take effect the next time YCalendar starts.")
	backendHelp.Wrapping = fyne.TextWrapWord
	backendHelp.Importance = widget.MediumImportance

	pathLabel := widget.NewLabel("Data File:")
	pathHelp := widget.NewLabel("File or database path for the file and sqlite storage")
	pathHelp.Importance = widget.MediumImportance

	locationLabel := widget.NewLabel("Current Location:")

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(autoStartLabel, autoStartHelp),
		sw.autoStartCheck,

		container.NewVBox(backendLabel, backendHelp),
		container.NewVBox(sw.backendSelect),

		container.NewVBox(pathLabel, pathHelp),
		sw.pathEntry,

		locationLabel,
		container.NewBorder(nil, container.NewPadded(openLocationButton), nil, nil, locationEntry),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable() // Initially disabled until changes are made

	closeButton := widget.NewButton("Close", func() {
		sw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		container.NewPadded(container.NewVScroll(container.NewVBox(
			widget.NewLabel("General Settings"),
			widget.NewSeparator(),
			form,
		))),
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(640, 420))
	sw.window.CenterOnScreen()

	sw.window.SetCloseIntercept(func() {
		sw.handleClose()
	})
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	config := &models.Config{
		AutoStart:      sw.autoStartCheck.Checked,
		StorageBackend: sw.backendSelect.Selected,
		StoragePath:    sw.pathEntry.Text,
	}
	config.Normalize()
	return config
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()

	newConfig := sw.getConfigFromUI()
	if err := sw.onSave(newConfig); err != nil {
		log.Printf("Error saving settings: %v", err)
		sw.saveStatusLabel.SetText("Error: " + err.Error())
		sw.saveStatusLabel.Importance = widget.DangerImportance
		sw.saveStatusLabel.Refresh()
		sw.updateSaveButtonState()
		return
	}

	sw.config = newConfig
	sw.saveStatusLabel.SetText("Settings saved successfully")
	sw.saveStatusLabel.Importance = widget.SuccessImportance
	sw.saveStatusLabel.Refresh()
	sw.updateSaveButtonState()

	// Clear success message after 3 seconds
	go func() {
		time.Sleep(3 * time.Second)
		fyne.Do(func() {
			if sw.saveStatusLabel.Text == "Settings saved successfully" {
				sw.saveStatusLabel.SetText("")
			}
		})
	}()
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

// updateSaveButtonState enables the save button only when something changed
func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasChanges() {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// hasChanges checks if the current UI state differs from the saved config
func (sw *SettingsWindow) hasChanges() bool {
	return *sw.getConfigFromUI() != *sw.config
}

// handleClose handles window close with unsaved changes check
func (sw *SettingsWindow) handleClose() {
	if !sw.hasChanges() {
		sw.window.Close()
		return
	}

	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

func (sw *SettingsWindow) openLocation() {
	path := storageDir(sw.backend, sw.app.Storage().RootURI().Path())

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		log.Printf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Error opening file manager: %v", err)
	}
}

// storageDir returns the directory holding backend's data. Preferences live
// in the app's own storage root.
func storageDir(backend store.Backend, appRoot string) string {
	if _, ok := backend.(*store.PreferencesBackend); ok {
		return appRoot
	}
	return filepath.Dir(backend.Location())
}
