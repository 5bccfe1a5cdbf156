package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
)

func setupAutostart(enable bool) error {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	app := &autostart.App{
		Name:        "ycalendar",
		DisplayName: "YCalendar",
		Exec:        []string{execPath},
	}

	if enable == app.IsEnabled() {
		return nil
	}

	if enable {
		if err := app.Enable(); err != nil {
			log.Printf("Failed to enable launch at login: %v", err)
			return err
		}
		log.Println("Launch at login enabled")
		return nil
	}

	if err := app.Disable(); err != nil {
		log.Printf("Failed to disable launch at login: %v", err)
		return err
	}
	log.Println("Launch at login disabled")
	return nil
}
