package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/ycalendar/pkg/controller"
)

// DetailPanel lists the selected day's events with a delete control per row
// and an entry for adding new ones
type DetailPanel struct {
	heading     *widget.Label
	placeholder *widget.Label
	list        *widget.List
	entry       *widget.Entry
	addButton   *widget.Button

	rows     []controller.DetailRow
	onDelete func(controller.DetailRow)
}

// DetailPanelConfig configures the detail panel
type DetailPanelConfig struct {
	OnAdd    func(text string)          // Called with the entry text on Add or Enter
	OnDelete func(controller.DetailRow) // Called when a row's Delete button is tapped
}

// NewDetailPanel creates the detail panel component
func NewDetailPanel(config DetailPanelConfig) (*DetailPanel, *fyne.Container) {
	dp := &DetailPanel{onDelete: config.OnDelete}

	dp.heading = widget.NewLabel("")
	dp.heading.TextStyle.Bold = true
	dp.heading.Wrapping = fyne.TextWrapWord

	dp.placeholder = widget.NewLabel("")
	dp.placeholder.Alignment = fyne.TextAlignCenter
	dp.placeholder.Importance = widget.LowImportance
	dp.placeholder.Hide()

	dp.list = widget.NewList(
		func() int {
			return len(dp.rows)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Event")
			label.Wrapping = fyne.TextWrapWord
			deleteButton := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), nil)
			deleteButton.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil, deleteButton, label)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			row := o.(*fyne.Container)
			label := row.Objects[0].(*widget.Label)
			deleteButton := row.Objects[1].(*widget.Button)

			if i >= len(dp.rows) {
				return
			}
			event := dp.rows[i]
			label.SetText(event.Text)
			deleteButton.OnTapped = func() {
				if dp.onDelete != nil {
					dp.onDelete(event)
				}
			}
		})

	dp.entry = widget.NewEntry()
	dp.entry.SetPlaceHolder("Add an event...")
	dp.entry.OnSubmitted = func(text string) {
		if config.OnAdd != nil {
			config.OnAdd(text)
		}
	}

	dp.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), func() {
		if config.OnAdd != nil {
			config.OnAdd(dp.entry.Text)
		}
	})
	dp.addButton.Importance = widget.HighImportance

	inputRow := container.NewBorder(nil, nil, nil, dp.addButton, dp.entry)

	// Wrap list in scroll with border
	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		nil,
		nil,
		container.NewStack(dp.list, container.NewPadded(dp.placeholder)),
	)

	content := container.NewBorder(
		dp.heading,
		inputRow,
		nil,
		nil,
		listWithBorder,
	)

	return dp, content
}

// Update shows detail in the panel
func (dp *DetailPanel) Update(detail controller.DetailView) {
	dp.heading.SetText(detail.Heading)
	dp.rows = detail.Rows

	if detail.Placeholder != "" {
		dp.placeholder.SetText(detail.Placeholder)
		dp.placeholder.Show()
	} else {
		dp.placeholder.Hide()
	}

	dp.list.UnselectAll()
	dp.list.Refresh()
}

// ClearInput empties the add-event entry
func (dp *DetailPanel) ClearInput() {
	dp.entry.SetText("")
}

// FocusInput returns the entry so the window can focus it
func (dp *DetailPanel) FocusInput() fyne.Focusable {
	return dp.entry
}

// Rows returns the rows currently shown
func (dp *DetailPanel) Rows() []controller.DetailRow {
	return dp.rows
}
