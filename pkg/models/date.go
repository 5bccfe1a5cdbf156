package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateKey is returned when a string is not a YYYY-MM-DD key
var ErrInvalidDateKey = errors.New("invalid date key")

const dateKeyLayout = "2006-01-02"

// DateKey identifies a calendar day, formatted as YYYY-MM-DD
type DateKey string

// Date is a local wall-clock calendar day with no time or zone component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar day for the given parts, normalizing overflow
// the same way time.Date does (e.g. April 31 becomes May 1)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day
func Today() Date {
	return DateOf(time.Now())
}

// ParseDateKey validates s and returns the day it names
func ParseDateKey(s string) (Date, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateOf(t), nil
}

// Key returns the canonical YYYY-MM-DD key for d
func (d Date) Key() DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day))
}

// Weekday returns the day of the week of d
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays returns the day n days after d
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Long formats d as "Friday, March 15, 2024"
func (d Date) Long() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("Monday, January 2, 2006")
}

func (d Date) String() string {
	return string(d.Key())
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
