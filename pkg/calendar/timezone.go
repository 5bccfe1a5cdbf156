package calendar

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

// Outlook and Exchange exports name zones the Windows way
var windowsZones = map[string]string{
	"Pacific Standard Time":        "America/Los_Angeles",
	"Mountain Standard Time":       "America/Denver",
	"Central Standard Time":        "America/Chicago",
	"Eastern Standard Time":        "America/New_York",
	"Atlantic Standard Time":       "America/Halifax",
	"Alaskan Standard Time":        "America/Anchorage",
	"Hawaiian Standard Time":       "Pacific/Honolulu",
	"GMT Standard Time":            "Europe/London",
	"W. Europe Standard Time":      "Europe/Berlin",
	"Central Europe Standard Time": "Europe/Budapest",
	"China Standard Time":          "Asia/Shanghai",
	"Tokyo Standard Time":          "Asia/Tokyo",
	"India Standard Time":          "Asia/Kolkata",
	"AUS Eastern Standard Time":    "Australia/Sydney",
}

var fallbackLayouts = []string{
	"20060102T150405",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// startDay returns the local calendar day an event starts on. All-day values
// keep their date as written; timed values are converted to local time first.
func startDay(prop *ical.Prop) (time.Time, error) {
	if tzid := prop.Params.Get(ical.ParamTimezoneID); tzid != "" {
		if name, ok := windowsZones[tzid]; ok {
			prop.Params.Set(ical.ParamTimezoneID, name)
		}
	}

	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	if t, err := time.ParseInLocation("20060102T150405Z", prop.Value, time.UTC); err == nil {
		return t.In(time.Local), nil
	}

	// Unknown TZID or a value the decoder rejects: read it as wall clock
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, prop.Value, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse start date: %s", prop.Value)
}
