package main

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/controller"
	"github.com/borgmon/ycalendar/pkg/platform"
	"github.com/borgmon/ycalendar/pkg/store"
	"github.com/borgmon/ycalendar/pkg/ui/components"
)

var (
	windowSize    = fyne.NewSize(1000, 700)
	windowMinSize = fyne.NewSize(500, 400)
)

// CalendarWindow is the main window. It is the controller's view, notifier
// and confirmer.
type CalendarWindow struct {
	window     fyne.Window
	app        fyne.App
	controller *controller.Controller

	monthView   *components.MonthView
	detailPanel *components.DetailPanel

	onSettings func()
	onRender   func()
}

func NewCalendarWindow(app fyne.App, eventStore *store.EventStore, onSettings, onRender func()) *CalendarWindow {
	cw := &CalendarWindow{
		app:        app,
		onSettings: onSettings,
		onRender:   onRender,
	}

	cw.window = app.NewWindow("YCalendar")
	cw.controller = controller.NewController(eventStore, cw, cw, cw)
	cw.buildUI()
	cw.controller.Start()

	return cw
}

func (cw *CalendarWindow) buildUI() {
	var monthContent, detailContent *fyne.Container

	cw.monthView, monthContent = components.NewMonthView(components.MonthViewConfig{
		OnSelect: cw.controller.SelectCell,
		OnPrev:   cw.controller.PrevMonth,
		OnNext:   cw.controller.NextMonth,
		OnToday:  cw.controller.GoToToday,
	})

	cw.detailPanel, detailContent = components.NewDetailPanel(components.DetailPanelConfig{
		OnAdd: func(text string) {
			cw.controller.AddEvent(text)
		},
		OnDelete: func(row controller.DetailRow) {
			cw.controller.DeleteEvent(row.Key, row.Index)
		},
	})

	split := container.NewHSplit(monthContent, container.NewPadded(detailContent))
	split.Offset = 0.65

	// Fyne windows have no minimum size setting; a transparent spacer holds the
	// content at the minimum instead
	minSpacer := canvas.NewRectangle(color.Transparent)
	minSpacer.SetMinSize(windowMinSize)

	cw.window.SetContent(container.NewStack(minSpacer, container.NewPadded(split)))
	cw.window.SetMainMenu(cw.buildMainMenu())
	cw.window.Resize(windowSize)
	cw.window.CenterOnScreen()

	cw.setupKeyboardShortcuts()

	// With a system tray the window hides instead of quitting
	if _, ok := cw.app.(desktop.App); ok {
		cw.window.SetCloseIntercept(func() {
			cw.window.Hide()
		})
	} else {
		cw.window.SetMaster()
	}
}

func (cw *CalendarWindow) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export iCalendar...", cw.exportICal),
		fyne.NewMenuItem("Import iCalendar...", cw.importICal),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			if cw.onSettings != nil {
				cw.onSettings()
			}
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Previous Month", cw.controller.PrevMonth),
		fyne.NewMenuItem("Next Month", cw.controller.NextMonth),
		fyne.NewMenuItem("Today", cw.controller.GoToToday),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu)
}

// setupKeyboardShortcuts binds arrow keys to month navigation while no
// widget has focus
func (cw *CalendarWindow) setupKeyboardShortcuts() {
	cw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if cw.window.Canvas().Focused() != nil {
			return
		}

		switch key.Name {
		case fyne.KeyLeft, fyne.KeyPageUp:
			cw.controller.PrevMonth()
		case fyne.KeyRight, fyne.KeyPageDown:
			cw.controller.NextMonth()
		case fyne.KeyHome:
			cw.controller.GoToToday()
		case fyne.KeyReturn, fyne.KeyEnter:
			cw.window.Canvas().Focus(cw.detailPanel.FocusInput())
		}
	})
}

// Render implements controller.View
func (cw *CalendarWindow) Render(frame controller.Frame) {
	cw.monthView.Update(frame)
	cw.detailPanel.Update(frame.Detail)

	if cw.onRender != nil {
		cw.onRender()
	}
}

// ClearInput implements controller.View
func (cw *CalendarWindow) ClearInput() {
	cw.detailPanel.ClearInput()
}

// Notify implements controller.Notifier
func (cw *CalendarWindow) Notify(message string) {
	dialog.ShowInformation("YCalendar", message, cw.window)
}

// Confirm implements controller.Confirmer
func (cw *CalendarWindow) Confirm(message string, onResult func(bool)) {
	dialog.ShowConfirm("Delete Event", message, onResult, cw.window)
}

func (cw *CalendarWindow) Show() {
	cw.window.Show()
	platform.BringToFront()
	cw.window.RequestFocus()
}

func (cw *CalendarWindow) exportICal() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := cw.controller.ExportEvents(writer); err != nil {
			log.Printf("Error exporting events: %v", err)
			dialog.ShowError(err, cw.window)
			return
		}
		log.Printf("Exported events to %s", writer.URI())
		dialog.ShowInformation("Export", fmt.Sprintf("Events exported to %s", writer.URI().Name()), cw.window)
	}, cw.window)

	saveDialog.SetFileName("ycalendar.ics")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	saveDialog.Show()
}

func (cw *CalendarWindow) importICal() {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, cw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		events, err := calendar.ImportICal(reader)
		if err != nil {
			log.Printf("Error importing %s: %v", reader.URI(), err)
			dialog.ShowError(err, cw.window)
			return
		}

		added := cw.controller.ImportEvents(events)
		log.Printf("Imported %d new events from %s", added, reader.URI())
		dialog.ShowInformation("Import", fmt.Sprintf("Imported %d new events", added), cw.window)
	}, cw.window)

	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	openDialog.Show()
}
