package components

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/ycalendar/pkg/calendar"
)

const (
	maxBadgeLines = 2
	maxBadgeDots  = 5
	dotSize       = 6
)

// DayCell is one tappable day in the month grid
type DayCell struct {
	widget.BaseWidget
	OnTapped func(calendar.Cell)

	cell     calendar.Cell
	badge    calendar.Badge
	selected bool
	hovered  bool
}

// NewDayCell creates an empty DayCell
func NewDayCell(onTapped func(calendar.Cell)) *DayCell {
	c := &DayCell{OnTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// SetCell updates what the cell shows
func (c *DayCell) SetCell(cell calendar.Cell, badge calendar.Badge, selected bool) {
	c.cell = cell
	c.badge = badge
	c.selected = selected
	c.Refresh()
}

// Cell returns the day the widget currently shows
func (c *DayCell) Cell() calendar.Cell {
	return c.cell
}

// Selected reports whether the cell is drawn as selected
func (c *DayCell) Selected() bool {
	return c.selected
}

// CreateRenderer implements fyne.Widget
func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	r := &dayCellRenderer{
		cell:    c,
		bg:      canvas.NewRectangle(theme.ButtonColor()),
		outline: canvas.NewRectangle(color.Transparent),
		day:     canvas.NewText("", theme.ForegroundColor()),
	}
	r.outline.StrokeWidth = 2

	for i := range r.lines {
		r.lines[i] = canvas.NewText("", theme.ForegroundColor())
		r.lines[i].TextSize = theme.CaptionTextSize()
	}
	for i := range r.dots {
		r.dots[i] = canvas.NewCircle(theme.PrimaryColor())
	}

	r.Refresh()
	return r
}

// Tapped implements fyne.Tappable
func (c *DayCell) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped(c.cell)
	}
}

// MouseIn implements desktop.Hoverable
func (c *DayCell) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (c *DayCell) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (c *DayCell) MouseOut() {
	c.hovered = false
	c.Refresh()
}

type dayCellRenderer struct {
	cell    *DayCell
	bg      *canvas.Rectangle
	outline *canvas.Rectangle
	day     *canvas.Text
	lines   [maxBadgeLines]*canvas.Text
	dots    [maxBadgeDots]*canvas.Circle
}

func (r *dayCellRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.outline.Resize(size)

	pad := theme.Padding()
	r.day.Move(fyne.NewPos(pad, pad))
	r.day.Resize(r.day.MinSize())

	y := pad + r.day.MinSize().Height + pad/2
	for _, line := range r.lines {
		line.Move(fyne.NewPos(pad, y))
		line.Resize(fyne.NewSize(size.Width-2*pad, line.MinSize().Height))
		y += line.MinSize().Height
	}

	dotsY := pad + r.day.MinSize().Height + pad
	for i, dot := range r.dots {
		dot.Move(fyne.NewPos(pad+float32(i)*(dotSize+pad/2), dotsY))
		dot.Resize(fyne.NewSize(dotSize, dotSize))
	}
}

func (r *dayCellRenderer) MinSize() fyne.Size {
	pad := theme.Padding()
	height := r.day.MinSize().Height + pad*2
	for _, line := range r.lines {
		height += line.MinSize().Height
	}
	return fyne.NewSize(60, height)
}

func (r *dayCellRenderer) Refresh() {
	c := r.cell

	switch {
	case c.hovered:
		r.bg.FillColor = theme.HoverColor()
	case c.cell.CurrentMonth:
		r.bg.FillColor = theme.ButtonColor()
	default:
		r.bg.FillColor = theme.DisabledButtonColor()
	}

	if c.selected {
		r.outline.StrokeColor = theme.PrimaryColor()
	} else {
		r.outline.StrokeColor = color.Transparent
	}

	r.day.Text = ""
	if c.cell.Day > 0 {
		r.day.Text = strconv.Itoa(c.cell.Day)
	}
	r.day.TextStyle.Bold = c.cell.Today
	switch {
	case c.cell.Today:
		r.day.Color = theme.PrimaryColor()
	case c.cell.CurrentMonth:
		r.day.Color = theme.ForegroundColor()
	default:
		r.day.Color = theme.DisabledColor()
	}

	for i, line := range r.lines {
		line.Text = ""
		if i < len(c.badge.Lines) {
			line.Text = c.badge.Lines[i]
		}
		line.Color = r.day.Color
		if c.cell.Today {
			line.Color = theme.ForegroundColor()
		}
	}

	for i, dot := range r.dots {
		if i < c.badge.Dots {
			dot.Show()
		} else {
			dot.Hide()
		}
	}

	r.bg.Refresh()
	r.outline.Refresh()
	r.day.Refresh()
	for _, line := range r.lines {
		line.Refresh()
	}
	for _, dot := range r.dots {
		dot.Refresh()
	}
}

func (r *dayCellRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.bg, r.day}
	for _, line := range r.lines {
		objects = append(objects, line)
	}
	for _, dot := range r.dots {
		objects = append(objects, dot)
	}
	return append(objects, r.outline)
}

func (r *dayCellRenderer) Destroy() {}
