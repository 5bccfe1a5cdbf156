package calendar

import (
	"time"

	"github.com/borgmon/ycalendar/pkg/models"
)

// GridCells is the fixed number of cells in a month grid (6 weeks of 7 days).
// Months that fit in 5 weeks still get a sixth row so the layout never jumps.
const GridCells = 42

// Cell is one day position in the month grid
type Cell struct {
	Index        int // 0..41
	Day          int // day of month shown in the cell
	Date         models.Date
	Key          models.DateKey
	CurrentMonth bool
	Today        bool // only ever set on current-month cells
}

// MonthGrid is the 42-cell layout of one displayed month
type MonthGrid struct {
	Month models.YearMonth
	Cells [GridCells]Cell
}

// BuildMonthGrid lays out the month starting on Sunday. Leading cells belong to
// the previous month and trailing cells to the next month.
func BuildMonthGrid(month models.YearMonth, today models.Date) MonthGrid {
	grid := MonthGrid{Month: month}

	first := models.NewDate(month.Year, month.Month, 1)
	leading := int(first.Weekday())
	daysInMonth := models.DaysIn(month.Year, month.Month)

	prev := month.AddMonths(-1)
	next := month.AddMonths(1)
	daysInPrev := models.DaysIn(prev.Year, prev.Month)

	dayCount := 1
	nextDayCount := 1

	for i := 0; i < GridCells; i++ {
		cell := Cell{Index: i}

		switch {
		case i < leading:
			cell.Day = daysInPrev - leading + i + 1
			cell.Date = models.Date{Year: prev.Year, Month: prev.Month, Day: cell.Day}
		case dayCount <= daysInMonth:
			cell.Day = dayCount
			cell.CurrentMonth = true
			cell.Date = models.Date{Year: month.Year, Month: month.Month, Day: cell.Day}
			cell.Today = cell.Date == today
			dayCount++
		default:
			cell.Day = nextDayCount
			cell.Date = models.Date{Year: next.Year, Month: next.Month, Day: cell.Day}
			nextDayCount++
		}

		cell.Key = cell.Date.Key()
		grid.Cells[i] = cell
	}

	return grid
}

// Title returns the header text, e.g. "March 2024"
func (g MonthGrid) Title() string {
	return g.Month.Title()
}

// Weeks returns the grid as 6 rows of 7 cells
func (g MonthGrid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, GridCells/7)
	for i := 0; i < GridCells; i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// CellFor returns the current-month cell showing d, if the grid has one
func (g MonthGrid) CellFor(d models.Date) (Cell, bool) {
	if !g.Month.Contains(d) {
		return Cell{}, false
	}
	for _, cell := range g.Cells {
		if cell.CurrentMonth && cell.Date == d {
			return cell, true
		}
	}
	return Cell{}, false
}

// WeekdayNames returns the column headers, Sunday first
func WeekdayNames() []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday(i).String()[:3]
	}
	return names
}
