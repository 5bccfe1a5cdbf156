package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/controller"
)

// MonthView shows the month header, weekday names and the 42 day cells
type MonthView struct {
	title *widget.Label
	cells [calendar.GridCells]*DayCell
}

// MonthViewConfig configures the month view callbacks
type MonthViewConfig struct {
	OnSelect func(calendar.Cell) // Called when a day cell is tapped
	OnPrev   func()              // Called by the previous-month button
	OnNext   func()              // Called by the next-month button
	OnToday  func()              // Called by the Today button
}

// NewMonthView creates the month grid component
func NewMonthView(config MonthViewConfig) (*MonthView, *fyne.Container) {
	mv := &MonthView{}

	mv.title = widget.NewLabel("")
	mv.title.Alignment = fyne.TextAlignCenter
	mv.title.TextStyle.Bold = true

	prevButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), config.OnPrev)
	nextButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), config.OnNext)
	todayButton := widget.NewButton("Today", config.OnToday)

	header := container.NewBorder(
		nil,
		nil,
		prevButton,
		container.NewHBox(nextButton, todayButton),
		mv.title,
	)

	weekdays := container.NewGridWithColumns(7)
	for _, name := range calendar.WeekdayNames() {
		label := widget.NewLabel(name)
		label.Alignment = fyne.TextAlignCenter
		label.Importance = widget.MediumImportance
		weekdays.Add(label)
	}

	grid := container.NewGridWithColumns(7)
	for i := range mv.cells {
		mv.cells[i] = NewDayCell(config.OnSelect)
		grid.Add(mv.cells[i])
	}

	content := container.NewBorder(
		container.NewVBox(header, weekdays),
		nil,
		nil,
		nil,
		grid,
	)

	return mv, content
}

// Update redraws the header and every cell from frame
func (mv *MonthView) Update(frame controller.Frame) {
	mv.title.SetText(frame.Grid.Title())

	for i, cell := range frame.Grid.Cells {
		selected := frame.Selected != nil && cell.CurrentMonth && cell.Date == *frame.Selected
		mv.cells[i].SetCell(cell, frame.Badges[cell.Key], selected)
	}
}

// Title returns the displayed month title
func (mv *MonthView) Title() string {
	return mv.title.Text
}

// DayCell returns the widget at grid position i
func (mv *MonthView) DayCell(i int) *DayCell {
	return mv.cells[i]
}
