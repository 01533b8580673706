package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Septembre 2024", MonthLabel(2024, 9))
	assert.Equal(t, "Février 2025", MonthLabel(2025, 2))
	assert.Equal(t, "Août 2024", MonthLabel(2024, 8))
	// Out of range falls back to a numeric form instead of panicking.
	assert.Equal(t, "13/2024", MonthLabel(2024, 13))
}

func TestSchoolYearLabel_RollsOverInAugust(t *testing.T) {
	july := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	august := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-2025", SchoolYearLabel(july))
	assert.Equal(t, "2025-2026", SchoolYearLabel(august))
}

func TestSchoolMonths_SeptemberThroughJuly(t *testing.T) {
	assert.Len(t, SchoolMonths, 11)
	assert.Equal(t, 9, SchoolMonths[0])
	assert.Equal(t, 7, SchoolMonths[len(SchoolMonths)-1])
	assert.NotContains(t, SchoolMonths, 8)
}

func TestEndOfMonth(t *testing.T) {
	end := EndOfMonth(2024, 2) // leap year
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.February, end.Month())

	end = EndOfMonth(2024, 12)
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 2024, end.Year())
}

func TestPreviousMonth(t *testing.T) {
	y, m := PreviousMonth(2024, 1)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 12, m)

	y, m = PreviousMonth(2024, 10)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 9, m)
}
