package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

var (
	backendName string
	dataPath    string
)

var rootCmd = &cobra.Command{
	Use:   "ycalendar",
	Short: "Desktop calendar with per-day events",
	Long: "A month calendar widget that keeps short event notes per day.\n" +
		"Run without a subcommand to open the calendar window.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGUI()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", models.BackendFile, "Storage backend for subcommands (file or sqlite)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "path", "", "Data file path (default: <config dir>/ycalendar/events.json or events.db)")
}

// openCLIStore opens and loads the event store selected by --backend and --path.
// Callers close it through Backend().Close().
func openCLIStore() (*store.EventStore, error) {
	switch backendName {
	case models.BackendFile, models.BackendSQLite:
	default:
		return nil, fmt.Errorf("unsupported backend %q: use %s or %s", backendName, models.BackendFile, models.BackendSQLite)
	}

	config := &models.Config{StorageBackend: backendName, StoragePath: dataPath}
	backend, err := store.OpenBackend(config, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	eventStore := store.NewEventStore(backend)
	eventStore.Load()
	return eventStore, nil
}

func closeCLIStore(eventStore *store.EventStore) {
	if err := eventStore.Backend().Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close storage: %v\n", err)
	}
}
