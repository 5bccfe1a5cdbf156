package controller

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
)

// Messages shown through the Notifier and Confirmer
const (
	MsgSelectDate    = "Please select a date first"
	MsgEnterText     = "Please enter an event description"
	MsgSaveFailed    = "Error saving events. Your events may not be preserved."
	MsgConfirmDelete = "Are you sure you want to delete this event?"
)

// ViewState is the displayed month and the selected day. It is never saved.
type ViewState struct {
	Displayed models.YearMonth
	Selected  *models.Date
}

// Controller owns the event store and view state and turns user actions into
// store mutations and re-renders. It is not safe for concurrent use; all
// calls are expected on the UI goroutine.
type Controller struct {
	store     *store.EventStore
	view      View
	notifier  Notifier
	confirmer Confirmer
	today     func() models.Date

	state ViewState
}

// NewController creates a controller showing the current month with nothing
// selected
func NewController(eventStore *store.EventStore, view View, notifier Notifier, confirmer Confirmer) *Controller {
	c := &Controller{
		store:     eventStore,
		view:      view,
		notifier:  notifier,
		confirmer: confirmer,
		today:     models.Today,
	}
	c.state.Displayed = models.MonthOf(c.today())
	return c
}

// Start draws the initial frame
func (c *Controller) Start() {
	c.render()
}

// State returns a copy of the current view state
func (c *Controller) State() ViewState {
	state := c.state
	if state.Selected != nil {
		selected := *state.Selected
		state.Selected = &selected
	}
	return state
}

// PrevMonth shows the previous month, keeping the selection
func (c *Controller) PrevMonth() {
	c.state.Displayed = c.state.Displayed.AddMonths(-1)
	c.render()
}

// NextMonth shows the next month, keeping the selection
func (c *Controller) NextMonth() {
	c.state.Displayed = c.state.Displayed.AddMonths(1)
	c.render()
}

// GoToToday shows the current month and selects today
func (c *Controller) GoToToday() {
	c.SelectDate(c.today())
}

// SelectDate selects d and shows its month
func (c *Controller) SelectDate(d models.Date) {
	c.state.Displayed = models.MonthOf(d)
	c.state.Selected = &d
	c.render()
}

// SelectCell handles a click on a grid cell. A leading or trailing cell
// moves the view to the adjacent month first: days above 15 can only be at
// the end of the previous month, anything else is the start of the next.
func (c *Controller) SelectCell(cell calendar.Cell) {
	if !cell.CurrentMonth {
		if cell.Day > 15 {
			c.state.Displayed = c.state.Displayed.AddMonths(-1)
		} else {
			c.state.Displayed = c.state.Displayed.AddMonths(1)
		}
	}

	selected := models.NewDate(c.state.Displayed.Year, c.state.Displayed.Month, cell.Day)
	c.state.Selected = &selected
	c.render()
}

// AddEvent appends text to the selected day. It reports whether an event
// was added.
func (c *Controller) AddEvent(text string) bool {
	if c.state.Selected == nil {
		c.notifier.Notify(MsgSelectDate)
		return false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.notifier.Notify(MsgEnterText)
		return false
	}

	key := c.state.Selected.Key()
	c.store.Add(key, text)
	log.Printf("Added event on %s (%d total)", key, c.store.Count(key))
	c.persist()

	c.view.ClearInput()
	c.render()
	return true
}

// DeleteEvent removes the event at index on key once the user confirms
func (c *Controller) DeleteEvent(key models.DateKey, index int) {
	c.confirmer.Confirm(MsgConfirmDelete, func(confirmed bool) {
		if !confirmed {
			return
		}

		if err := c.store.Delete(key, index); err != nil {
			log.Printf("Error deleting event: %v", err)
			c.render()
			return
		}
		log.Printf("Deleted event %d on %s", index, key)
		c.persist()
		c.render()
	})
}

// ImportEvents merges events into the store and returns how many were new
func (c *Controller) ImportEvents(events map[models.DateKey][]string) int {
	added := c.store.Merge(events)
	if added > 0 {
		c.persist()
	}
	c.render()
	return added
}

// ExportEvents writes the whole store as iCalendar
func (c *Controller) ExportEvents(w io.Writer) error {
	if c.store.Len() == 0 {
		return fmt.Errorf("there are no events to export")
	}
	return calendar.ExportICal(w, c.store.Snapshot())
}

// persist saves the store. A failed write is reported but the in-memory
// change is kept.
func (c *Controller) persist() {
	if err := c.store.Save(); err != nil {
		log.Printf("Error saving events: %v", err)
		c.notifier.Notify(MsgSaveFailed)
	}
}

func (c *Controller) render() {
	grid := calendar.BuildMonthGrid(c.state.Displayed, c.today())

	badges := make(map[models.DateKey]calendar.Badge)
	for _, cell := range grid.Cells {
		if c.store.Count(cell.Key) > 0 {
			badges[cell.Key] = calendar.BuildBadge(c.store.Events(cell.Key))
		}
	}

	var events []string
	if c.state.Selected != nil {
		events = c.store.Events(c.state.Selected.Key())
	}

	c.view.Render(Frame{
		Grid:     grid,
		Badges:   badges,
		Selected: c.State().Selected,
		Detail:   buildDetail(c.state.Selected, events),
	})
}
