package service

import (
	"fmt"
	"time"
)

// Months is indexed 1..12 with the French month names used on invoices and in
// the month selector.
var Months = [13]string{
	1: "Janvier", 2: "Février", 3: "Mars", 4: "Avril", 5: "Mai", 6: "Juin",
	7: "Juillet", 8: "Août", 9: "Septembre", 10: "Octobre", 11: "Novembre", 12: "Décembre",
}

// SchoolMonths is the school year, September through July.
var SchoolMonths = []int{9, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7}

// MonthLabel renders "Septembre 2024" for invoice lines.
func MonthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", Months[month], year)
}

// SchoolYearLabel returns the "2024-2025" label for the school year containing
// t. The year rolls over in August.
func SchoolYearLabel(t time.Time) string {
	year := t.Year()
	if t.Month() < time.August {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}

// EndOfMonth returns the last instant of the given calendar month.
func EndOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
}

// PreviousMonth steps one month back, handling the January rollover.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
