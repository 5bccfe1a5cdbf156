package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/ycalendar/pkg/models"
)

const trayMaxEvents = 5

func (yc *YCalendar) setupSystemTray() {
	yc.updateSystemTrayMenu()

	if _, ok := yc.app.(desktop.App); !ok {
		return
	}

	// The window may stay hidden past midnight; keep "Today:" current
	yc.stopWatch = make(chan struct{})
	go watchDayChange(time.Minute, models.Today, func() {
		fyne.Do(yc.updateSystemTrayMenu)
	}, yc.stopWatch)
}

// watchDayChange calls onChange each time today() moves to a new day,
// checking every interval until stop is closed
func watchDayChange(interval time.Duration, today func() models.Date, onChange func(), stop <-chan struct{}) {
	last := today()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if now := today(); now != last {
				last = now
				onChange()
			}
		}
	}
}

func (yc *YCalendar) updateSystemTrayMenu() {
	desk, ok := yc.app.(desktop.App)
	if !ok || yc.eventStore == nil {
		return
	}

	menuItems := []*fyne.MenuItem{}

	// Add today's events at the top
	today := models.Today()
	for _, label := range todayMenuLabels(yc.eventStore.Events(today.Key()), trayMaxEvents) {
		item := fyne.NewMenuItem(label, nil)
		item.Disabled = true
		menuItems = append(menuItems, item)
	}
	if len(menuItems) > 0 {
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show Calendar", func() {
			yc.calendarWindow.Show()
		}),
		fyne.NewMenuItem("Go to Today", func() {
			yc.calendarWindow.controller.GoToToday()
			yc.calendarWindow.Show()
		}),
		fyne.NewMenuItem("Settings", func() {
			yc.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		yc.quit()
	}))

	menu := fyne.NewMenu("YCalendar", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// todayMenuLabels returns the tray header and up to limit of today's events
func todayMenuLabels(events []string, limit int) []string {
	if len(events) == 0 {
		return nil
	}

	labels := []string{"Today:"}
	for i, event := range events {
		if i == limit {
			labels = append(labels, "  ...")
			break
		}
		labels = append(labels, "  "+truncateString(event, 35))
	}
	return labels
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
