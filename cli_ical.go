package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/borgmon/ycalendar/pkg/calendar"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE.ics",
	Short: "Export all events to an iCalendar file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import FILE.ics",
	Short: "Import events from an iCalendar file",
	Long:  "Import all-day events from an iCalendar file. Events already present on the same day are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	if eventStore.Len() == 0 {
		return errors.New("no events to export")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}

	if err := calendar.ExportICal(f, eventStore.Snapshot()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported events for %d day(s) to %s\n", eventStore.Len(), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	imported, err := calendar.ImportICal(f)
	if err != nil {
		return err
	}

	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	added := eventStore.Merge(imported)
	if added > 0 {
		if err := eventStore.Save(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d event(s)\n", added)
	return nil
}
