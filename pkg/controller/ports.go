package controller

import (
	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/models"
)

// Frame is everything the view needs to draw one state of the calendar
type Frame struct {
	Grid     calendar.MonthGrid
	Badges   map[models.DateKey]calendar.Badge
	Selected *models.Date
	Detail   DetailView
}

// View draws frames. Implementations must not call back into the
// controller from Render.
type View interface {
	Render(frame Frame)
	ClearInput()
}

// Notifier shows a blocking message to the user
type Notifier interface {
	Notify(message string)
}

// Confirmer asks the user a yes/no question and reports the answer through
// onResult, which may be called after Confirm returns
type Confirmer interface {
	Confirm(message string, onResult func(confirmed bool))
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// ConfirmerFunc adapts a function to Confirmer
type ConfirmerFunc func(message string, onResult func(bool))

func (f ConfirmerFunc) Confirm(message string, onResult func(bool)) { f(message, onResult) }
