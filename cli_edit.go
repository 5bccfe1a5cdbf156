package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

var deleteConfirmed bool

var addCmd = &cobra.Command{
	Use:   "add DATE TEXT...",
	Short: "Add an event to a day",
	Long:  "Add an event to a day. DATE is YYYY-MM-DD; the remaining arguments form the description.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAdd,
}

var deleteCmd = &cobra.Command{
	Use:   "delete DATE INDEX",
	Short: "Delete an event from a day",
	Long:  "Delete the event at INDEX (as shown by list) from a day. Requires --yes.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteConfirmed, "yes", "y", false, "Confirm the deletion")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	date, err := models.ParseDateKey(args[0])
	if err != nil {
		return err
	}

	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		return errors.New("event description is empty")
	}

	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	eventStore.Add(date.Key(), text)
	if err := eventStore.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", text, date.Key())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	date, err := models.ParseDateKey(args[0])
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid event index %q: %w", args[1], err)
	}

	if !deleteConfirmed {
		return errors.New("refusing to delete without --yes")
	}

	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	events := eventStore.Events(date.Key())
	if err := eventStore.Delete(date.Key(), index); err != nil {
		if errors.Is(err, store.ErrIndexOutOfRange) {
			return fmt.Errorf("%s has %d event(s), no index %d: %w", date.Key(), len(events), index, err)
		}
		return err
	}
	if err := eventStore.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q from %s\n", events[index], date.Key())
	return nil
}

func sortedKeys(events map[models.DateKey][]string) []models.DateKey {
	keys := make([]models.DateKey, 0, len(events))
	for key := range events {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
