package calendar

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/borgmon/ycalendar/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const productID = "-//YCalendar//Desktop Calendar//EN"

// uidNamespace seeds the name-based UIDs so that exporting the same events
// twice produces the same VEVENT UIDs
var uidNamespace = uuid.MustParse("6f1f2d4e-8a57-4c1b-9d7e-3c2a0f5b9e11")

// ExportICal writes every event as an all-day VEVENT
func ExportICal(w io.Writer, events map[models.DateKey][]string) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := time.Now().UTC()

	keys := make([]models.DateKey, 0, len(events))
	for key := range events {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		day, err := models.ParseDateKey(string(key))
		if err != nil {
			log.Printf("Skipping events under malformed key %q", key)
			continue
		}

		start := time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, time.UTC)
		for i, text := range events[key] {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, eventUID(key, i, text))
			event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
			event.Props.SetDate(ical.PropDateTimeStart, start)
			event.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
			event.Props.SetText(ical.PropSummary, text)
			cal.Children = append(cal.Children, event.Component)
		}
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// ImportICal reads VEVENTs and groups their summaries by start day. Recurrence
// rules are ignored; only the first occurrence is imported.
func ImportICal(r io.Reader) (map[models.DateKey][]string, error) {
	decoder := ical.NewDecoder(r)
	result := make(map[models.DateKey][]string)

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		skipped := 0
		for _, event := range cal.Events() {
			summary, err := event.Props.Text(ical.PropSummary)
			if err != nil || strings.TrimSpace(summary) == "" {
				skipped++
				continue
			}

			startProp := event.Props.Get(ical.PropDateTimeStart)
			if startProp == nil {
				skipped++
				continue
			}
			start, err := startDay(startProp)
			if err != nil {
				skipped++
				continue
			}

			key := models.DateOf(start).Key()
			result[key] = append(result[key], strings.TrimSpace(summary))
		}

		if skipped > 0 {
			log.Printf("Skipped %d events without a summary or start date", skipped)
		}
	}

	return result, nil
}

func eventUID(key models.DateKey, index int, text string) string {
	name := fmt.Sprintf("%s/%d/%s", key, index, text)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@ycalendar"
}
