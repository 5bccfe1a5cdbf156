package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

// gridToday is replaced in tests
var gridToday = models.Today

var gridCmd = &cobra.Command{
	Use:   "grid [YYYY-MM]",
	Short: "Print a month grid with event markers",
	Long: "Print the 6-week grid for a month (default: the current month).\n" +
		"[n] is today, (n) is a day of a neighbouring month, * is one event line and • one event dot.",
	Args: cobra.MaximumNArgs(1),
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	today := gridToday()
	month := models.MonthOf(today)
	if len(args) == 1 {
		var err error
		if month, err = models.ParseYearMonth(args[0]); err != nil {
			return err
		}
	}

	eventStore, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeCLIStore(eventStore)

	writeGrid(cmd.OutOrStdout(), calendar.BuildMonthGrid(month, today), eventStore)
	return nil
}

const gridCellWidth = 6

func writeGrid(w io.Writer, grid calendar.MonthGrid, eventStore *store.EventStore) {
	fmt.Fprintln(w, grid.Title())

	var header strings.Builder
	for _, name := range calendar.WeekdayNames() {
		fmt.Fprintf(&header, "%-*s", gridCellWidth, name)
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	for _, week := range grid.Weeks() {
		var days, marks strings.Builder
		for _, cell := range week {
			fmt.Fprintf(&days, "%-*s", gridCellWidth, gridCellLabel(cell))
			fmt.Fprintf(&marks, "%-*s", gridCellWidth, badgeMarks(calendar.BuildBadge(eventStore.Events(cell.Key))))
		}
		fmt.Fprintln(w, strings.TrimRight(days.String(), " "))
		if m := strings.TrimRight(marks.String(), " "); m != "" {
			fmt.Fprintln(w, m)
		}
	}
}

func gridCellLabel(cell calendar.Cell) string {
	switch {
	case cell.Today:
		return fmt.Sprintf("[%2d]", cell.Day)
	case !cell.CurrentMonth:
		return fmt.Sprintf("(%2d)", cell.Day)
	default:
		return fmt.Sprintf(" %2d", cell.Day)
	}
}

func badgeMarks(badge calendar.Badge) string {
	if badge.Dots > 0 {
		return " " + strings.Repeat("•", badge.Dots)
	}
	return " " + strings.Repeat("*", len(badge.Lines))
}
