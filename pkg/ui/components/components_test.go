package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/controller"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func march2024Frame(selected *models.Date) controller.Frame {
	grid := calendar.BuildMonthGrid(models.YearMonth{Year: 2024, Month: time.March}, models.NewDate(2024, time.March, 10))
	return controller.Frame{
		Grid: grid,
		Badges: map[models.DateKey]calendar.Badge{
			"2024-03-15": calendar.BuildBadge([]string{"a", "b", "c", "d", "e", "f"}),
			"2024-03-16": calendar.BuildBadge([]string{"Dentist appointment downtown"}),
		},
		Selected: selected,
	}
}

func TestDayCell_TapAndRender(t *testing.T) {
	test.NewTempApp(t)

	var tapped []calendar.Cell
	c := NewDayCell(func(cell calendar.Cell) { tapped = append(tapped, cell) })

	cell := calendar.Cell{Day: 15, CurrentMonth: true, Date: models.NewDate(2024, time.March, 15), Key: "2024-03-15"}
	c.SetCell(cell, calendar.Badge{Dots: 5}, true)
	test.Tap(c)

	require.Len(t, tapped, 1)
	assert.Equal(t, cell, tapped[0])
	assert.True(t, c.Selected())

	r := test.WidgetRenderer(c).(*dayCellRenderer)
	assert.Equal(t, "15", r.day.Text)
	for _, dot := range r.dots {
		assert.True(t, dot.Visible())
	}

	c.SetCell(cell, calendar.Badge{Lines: []string{"Dentist"}}, false)
	assert.Equal(t, "Dentist", r.lines[0].Text)
	assert.Equal(t, "", r.lines[1].Text)
	for _, dot := range r.dots {
		assert.False(t, dot.Visible())
	}
}

func TestMonthView_Update(t *testing.T) {
	test.NewTempApp(t)

	var selected []calendar.Cell
	mv, content := NewMonthView(MonthViewConfig{
		OnSelect: func(cell calendar.Cell) { selected = append(selected, cell) },
	})
	test.NewWindow(content)

	sel := models.NewDate(2024, time.March, 15)
	mv.Update(march2024Frame(&sel))
	assert.Equal(t, "March 2024", mv.Title())

	for i := 0; i < calendar.GridCells; i++ {
		assert.Equal(t, i == 19, mv.DayCell(i).Selected(), "cell %d", i)
	}

	r := test.WidgetRenderer(mv.DayCell(19)).(*dayCellRenderer)
	visible := 0
	for _, dot := range r.dots {
		if dot.Visible() {
			visible++
		}
	}
	assert.Equal(t, 5, visible)

	r = test.WidgetRenderer(mv.DayCell(20)).(*dayCellRenderer)
	assert.Equal(t, "Dentist appo...", r.lines[0].Text)

	test.Tap(mv.DayCell(0))
	require.Len(t, selected, 1)
	assert.Equal(t, models.DateKey("2024-02-25"), selected[0].Key)
	assert.False(t, selected[0].CurrentMonth)
}

func TestMonthView_SelectionOutsideMonth(t *testing.T) {
	test.NewTempApp(t)
	mv, _ := NewMonthView(MonthViewConfig{})

	// Feb 25 is visible as a leading cell but only current-month cells are marked
	sel := models.NewDate(2024, time.February, 25)
	mv.Update(march2024Frame(&sel))
	for i := 0; i < calendar.GridCells; i++ {
		assert.False(t, mv.DayCell(i).Selected(), "cell %d", i)
	}
}

func TestDetailPanel(t *testing.T) {
	test.NewTempApp(t)

	var added []string
	dp, content := NewDetailPanel(DetailPanelConfig{
		OnAdd: func(text string) { added = append(added, text) },
	})
	test.NewWindow(content)

	dp.Update(controller.DetailView{Heading: "Select a date to view events"})
	assert.Equal(t, "Select a date to view events", dp.heading.Text)
	assert.False(t, dp.placeholder.Visible())
	assert.Empty(t, dp.Rows())

	dp.Update(controller.DetailView{Heading: "Events for Friday, March 15, 2024", Placeholder: "No events for this day", HasDate: true})
	assert.True(t, dp.placeholder.Visible())
	assert.Equal(t, "No events for this day", dp.placeholder.Text)

	rows := []controller.DetailRow{{Key: "2024-03-15", Index: 0, Text: "Dentist"}}
	dp.Update(controller.DetailView{Heading: "Events for Friday, March 15, 2024", Rows: rows, HasDate: true})
	assert.False(t, dp.placeholder.Visible())
	assert.Equal(t, rows, dp.Rows())

	dp.entry.SetText("Gym")
	test.Tap(dp.addButton)
	assert.Equal(t, []string{"Gym"}, added)

	dp.ClearInput()
	assert.Empty(t, dp.entry.Text)
}
