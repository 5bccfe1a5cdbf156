package models

import (
	"fmt"
	"time"
)

// YearMonth is a displayed month. Navigation never carries a day, so moving
// from January 31 to "next month" always lands on February.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d
func MonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// ParseYearMonth parses "YYYY-MM"
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// AddMonths shifts the month by n, rolling the year as needed
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether d falls in this month
func (ym YearMonth) Contains(d Date) bool {
	return d.Year == ym.Year && d.Month == ym.Month
}

// Title formats the month as "March 2024"
func (ym YearMonth) Title() string {
	return fmt.Sprintf("%s %d", ym.Month, ym.Year)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
