package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		date Date
		want DateKey
	}{
		{NewDate(2024, time.March, 5), "2024-03-05"},
		{NewDate(2024, time.December, 31), "2024-12-31"},
		{NewDate(2024, time.February, 30), "2024-03-01"},
		{NewDate(2024, time.January, 0), "2023-12-31"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.date.Key())
	}
}

func TestParseDateKey(t *testing.T) {
	d, err := ParseDateKey("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 15}, d)

	for _, bad := range []string{"", "2024-3-15", "2024-02-30", "15/03/2024"} {
		_, err := ParseDateKey(bad)
		assert.ErrorIs(t, err, ErrInvalidDateKey, bad)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2024, time.March))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2024, time.April))
}

func TestDateLong(t *testing.T) {
	assert.Equal(t, "Friday, March 15, 2024", NewDate(2024, time.March, 15).Long())
	assert.Equal(t, time.Friday, NewDate(2024, time.March, 15).Weekday())
}

func TestYearMonthAddMonths(t *testing.T) {
	jan := YearMonth{Year: 2024, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2023, Month: time.December}, jan.AddMonths(-1))
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, jan.AddMonths(1))
	assert.Equal(t, YearMonth{Year: 2025, Month: time.January}, jan.AddMonths(12))
	assert.Equal(t, "March 2024", YearMonth{Year: 2024, Month: time.March}.Title())

	ym, err := ParseYearMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", ym.String())
	assert.True(t, ym.Contains(NewDate(2024, time.March, 31)))
	assert.False(t, ym.Contains(NewDate(2024, time.April, 1)))
}

func TestConfigNormalize(t *testing.T) {
	c := &Config{StorageBackend: "redis", StoragePath: "/tmp/x"}
	c.Normalize()
	assert.Equal(t, BackendPreferences, c.StorageBackend)
	assert.Empty(t, c.StoragePath)

	c = &Config{StorageBackend: BackendSQLite, StoragePath: "/tmp/x.db"}
	c.Normalize()
	assert.Equal(t, "/tmp/x.db", c.StoragePath)
}
