package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/borgmon/ycalendar/pkg/calendar"
	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/borgmon/ycalendar/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	frames  []Frame
	cleared int
}

func (v *fakeView) Render(frame Frame) { v.frames = append(v.frames, frame) }
func (v *fakeView) ClearInput()        { v.cleared++ }

func (v *fakeView) last(t *testing.T) Frame {
	t.Helper()
	require.NotEmpty(t, v.frames)
	return v.frames[len(v.frames)-1]
}

type fakeBackend struct {
	data     string
	writes   int
	writeErr error
}

func (b *fakeBackend) Read() (string, error) { return b.data, nil }
func (b *fakeBackend) Write(data string) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	b.data = data
	b.writes++
	return nil
}
func (b *fakeBackend) Location() string { return "fake" }
func (b *fakeBackend) Close() error     { return nil }

type harness struct {
	c        *Controller
	view     *fakeView
	backend  *fakeBackend
	store    *store.EventStore
	notified []string
	confirms []string
	answer   bool
}

var fixedToday = models.NewDate(2024, time.March, 10)

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{view: &fakeView{}, backend: &fakeBackend{}, answer: true}
	h.store = store.NewEventStore(h.backend)
	h.store.Load()

	notifier := NotifierFunc(func(msg string) { h.notified = append(h.notified, msg) })
	confirmer := ConfirmerFunc(func(msg string, onResult func(bool)) {
		h.confirms = append(h.confirms, msg)
		onResult(h.answer)
	})

	h.c = NewController(h.store, h.view, notifier, confirmer)
	h.c.today = func() models.Date { return fixedToday }
	h.c.state.Displayed = models.MonthOf(fixedToday)
	h.c.Start()
	return h
}

func TestController_InitialFrame(t *testing.T) {
	h := newHarness(t)

	frame := h.view.last(t)
	assert.Equal(t, "March 2024", frame.Grid.Title())
	assert.Nil(t, frame.Selected)
	assert.Equal(t, "Select a date to view events", frame.Detail.Heading)
	assert.Empty(t, frame.Detail.Rows)
	assert.False(t, frame.Detail.HasDate)

	todayCell, ok := frame.Grid.CellFor(fixedToday)
	require.True(t, ok)
	assert.True(t, todayCell.Today)
}

func TestController_AddAndDeleteScenario(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(models.NewDate(2024, time.March, 15))

	require.True(t, h.c.AddEvent("  Dentist  "))
	assert.Equal(t, []string{"Dentist"}, h.store.Events("2024-03-15"))
	assert.JSONEq(t, `{"2024-03-15":["Dentist"]}`, h.backend.data)
	assert.Equal(t, 1, h.view.cleared)

	frame := h.view.last(t)
	assert.Equal(t, "Events for Friday, March 15, 2024", frame.Detail.Heading)
	require.Len(t, frame.Detail.Rows, 1)
	assert.Equal(t, DetailRow{Key: "2024-03-15", Index: 0, Text: "Dentist"}, frame.Detail.Rows[0])
	assert.Equal(t, []string{"Dentist"}, frame.Badges["2024-03-15"].Lines)

	h.c.DeleteEvent("2024-03-15", 0)
	assert.Equal(t, []string{MsgConfirmDelete}, h.confirms)
	assert.Equal(t, 0, h.store.Len())
	assert.JSONEq(t, `{}`, h.backend.data)

	frame = h.view.last(t)
	assert.Equal(t, "No events for this day", frame.Detail.Placeholder)
	assert.NotContains(t, frame.Badges, models.DateKey("2024-03-15"))
}

func TestController_AddEventValidation(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.c.AddEvent("Dentist"))
	assert.Equal(t, []string{MsgSelectDate}, h.notified)

	h.c.SelectDate(fixedToday)
	assert.False(t, h.c.AddEvent("   "))
	assert.Equal(t, []string{MsgSelectDate, MsgEnterText}, h.notified)

	assert.Equal(t, 0, h.store.Len())
	assert.Equal(t, 0, h.backend.writes)
	assert.Equal(t, 0, h.view.cleared)
}

func TestController_AddEventIncrementsByOne(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(fixedToday)
	key := fixedToday.Key()

	for i := 1; i <= 3; i++ {
		require.True(t, h.c.AddEvent("event"))
		assert.Equal(t, i, h.store.Count(key))
		assert.Equal(t, i, h.backend.writes)
	}
}

func TestController_SaveFailureKeepsMemory(t *testing.T) {
	h := newHarness(t)
	h.backend.writeErr = errors.New("disk full")
	h.c.SelectDate(fixedToday)

	assert.True(t, h.c.AddEvent("Dentist"))
	assert.Equal(t, []string{MsgSaveFailed}, h.notified)
	assert.Equal(t, []string{"Dentist"}, h.store.Events(fixedToday.Key()))
	assert.Len(t, h.view.last(t).Detail.Rows, 1)
}

func TestController_DeleteDeclined(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(fixedToday)
	h.c.AddEvent("Dentist")
	writes := h.backend.writes

	h.answer = false
	h.c.DeleteEvent(fixedToday.Key(), 0)

	assert.Len(t, h.confirms, 1)
	assert.Equal(t, []string{"Dentist"}, h.store.Events(fixedToday.Key()))
	assert.Equal(t, writes, h.backend.writes)
}

func TestController_DeleteStaleIndex(t *testing.T) {
	h := newHarness(t)
	h.c.DeleteEvent("2024-03-15", 3)

	assert.Equal(t, 0, h.backend.writes)
	assert.Empty(t, h.notified)
}

func TestController_SelectCurrentMonthCell(t *testing.T) {
	h := newHarness(t)
	grid := h.view.last(t).Grid

	cell, ok := grid.CellFor(models.NewDate(2024, time.March, 20))
	require.True(t, ok)
	h.c.SelectCell(cell)

	state := h.c.State()
	assert.Equal(t, models.YearMonth{Year: 2024, Month: time.March}, state.Displayed)
	require.NotNil(t, state.Selected)
	assert.Equal(t, models.NewDate(2024, time.March, 20), *state.Selected)
}

func TestController_SelectLeadingCellGoesBack(t *testing.T) {
	h := newHarness(t)
	leading := h.view.last(t).Grid.Cells[0] // Feb 25
	require.False(t, leading.CurrentMonth)

	h.c.SelectCell(leading)

	state := h.c.State()
	assert.Equal(t, models.YearMonth{Year: 2024, Month: time.February}, state.Displayed)
	assert.Equal(t, models.NewDate(2024, time.February, 25), *state.Selected)

	frame := h.view.last(t)
	assert.Equal(t, "February 2024", frame.Grid.Title())
	_, ok := frame.Grid.CellFor(*frame.Selected)
	assert.True(t, ok)
}

func TestController_SelectTrailingCellGoesForward(t *testing.T) {
	h := newHarness(t)
	trailing := h.view.last(t).Grid.Cells[calendar.GridCells-1] // April 6
	require.False(t, trailing.CurrentMonth)

	h.c.SelectCell(trailing)

	state := h.c.State()
	assert.Equal(t, models.YearMonth{Year: 2024, Month: time.April}, state.Displayed)
	assert.Equal(t, models.NewDate(2024, time.April, 6), *state.Selected)
}

func TestController_NavigationKeepsSelection(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(models.NewDate(2024, time.March, 31))

	h.c.NextMonth()
	state := h.c.State()
	assert.Equal(t, models.YearMonth{Year: 2024, Month: time.April}, state.Displayed)
	assert.Equal(t, models.NewDate(2024, time.March, 31), *state.Selected)

	frame := h.view.last(t)
	_, visible := frame.Grid.CellFor(*frame.Selected)
	assert.False(t, visible)
	assert.Equal(t, "Events for Sunday, March 31, 2024", frame.Detail.Heading)

	h.c.PrevMonth()
	h.c.PrevMonth()
	assert.Equal(t, models.YearMonth{Year: 2024, Month: time.February}, h.c.State().Displayed)

	h.c.GoToToday()
	assert.Equal(t, models.MonthOf(fixedToday), h.c.State().Displayed)
	assert.Equal(t, fixedToday, *h.c.State().Selected)
}

func TestController_BadgesInFrame(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(fixedToday)
	for i := 0; i < 6; i++ {
		h.c.AddEvent("event")
	}

	frame := h.view.last(t)
	assert.Equal(t, 5, frame.Badges[fixedToday.Key()].Dots)
	assert.Len(t, frame.Detail.Rows, 6)
}

func TestController_StateIsCopy(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(fixedToday)

	state := h.c.State()
	state.Selected.Day = 1
	assert.Equal(t, fixedToday, *h.c.State().Selected)
}

func TestController_ImportExport(t *testing.T) {
	h := newHarness(t)

	var empty bytes.Buffer
	assert.Error(t, h.c.ExportEvents(&empty))

	added := h.c.ImportEvents(map[models.DateKey][]string{"2024-03-15": {"Dentist", "Gym"}})
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, h.backend.writes)
	assert.Len(t, h.view.last(t).Badges["2024-03-15"].Lines, 2)

	var buf bytes.Buffer
	require.NoError(t, h.c.ExportEvents(&buf))
	imported, err := calendar.ImportICal(&buf)
	require.NoError(t, err)
	assert.Equal(t, h.store.Snapshot(), imported)

	assert.Equal(t, 0, h.c.ImportEvents(imported))
	assert.Equal(t, 1, h.backend.writes)
}

func TestController_ExportImportKeepsRepeatedEvents(t *testing.T) {
	h := newHarness(t)
	h.c.SelectDate(fixedToday)
	require.True(t, h.c.AddEvent("Gym"))
	require.True(t, h.c.AddEvent("Gym"))

	var buf bytes.Buffer
	require.NoError(t, h.c.ExportEvents(&buf))
	imported, err := calendar.ImportICal(&buf)
	require.NoError(t, err)

	fresh := store.NewEventStore(&fakeBackend{})
	assert.Equal(t, 2, fresh.Merge(imported))
	assert.Equal(t, h.store.Snapshot(), fresh.Snapshot())
}
