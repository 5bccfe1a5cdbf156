package controller

import "github.com/borgmon/ycalendar/pkg/models"

const (
	promptNoSelection = "Select a date to view events"
	placeholderEmpty  = "No events for this day"
)

// DetailRow is one event in the detail panel. Key and Index identify it for
// deletion.
type DetailRow struct {
	Key   models.DateKey
	Index int
	Text  string
}

// DetailView is the side panel for the selected date
type DetailView struct {
	Heading     string
	Placeholder string // shown instead of rows when set
	Rows        []DetailRow
	HasDate     bool
}

func buildDetail(selected *models.Date, events []string) DetailView {
	if selected == nil {
		return DetailView{Heading: promptNoSelection}
	}

	detail := DetailView{
		Heading: "Events for " + selected.Long(),
		HasDate: true,
	}
	if len(events) == 0 {
		detail.Placeholder = placeholderEmpty
		return detail
	}

	key := selected.Key()
	detail.Rows = make([]DetailRow, len(events))
	for i, text := range events {
		detail.Rows[i] = DetailRow{Key: key, Index: i, Text: text}
	}
	return detail
}
