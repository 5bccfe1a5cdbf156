package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/borgmon/ycalendar/pkg/models"
)

var (
	listMonth  string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved events",
	Long:  "List saved events by day, optionally limited to one month",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only list events in this month (YYYY-MM)")
	listCmd.Flags().StringVar(&listFormat, "format", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var month *models.YearMonth
	if listMonth != "" {
		ym, err := models.ParseYearMonth(listMonth)
		if err != nil {
			return err
		}
		month = &ym
	}

	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	events := eventStore.Snapshot()
	if month != nil {
		for key := range events {
			date, err := models.ParseDateKey(string(key))
			if err != nil || !month.Contains(date) {
				delete(events, key)
			}
		}
	}

	out := cmd.OutOrStdout()
	switch listFormat {
	case "text":
		return writeEventsText(out, events)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(events); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q: use text, json or yaml", listFormat)
	}
}

func writeEventsText(w io.Writer, events map[models.DateKey][]string) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No events")
		return err
	}

	for _, key := range sortedKeys(events) {
		heading := string(key)
		if date, err := models.ParseDateKey(string(key)); err == nil {
			heading = date.Long()
		}
		fmt.Fprintf(w, "%s  %s\n", key, heading)
		for i, text := range events[key] {
			fmt.Fprintf(w, "  [%d] %s\n", i, text)
		}
	}
	return nil
}
