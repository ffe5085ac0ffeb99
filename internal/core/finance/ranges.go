package finance

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// MonthRangeFor returns the calendar month offset months before now, in now's location.
// Offset 0 is the current month, 1 the previous one.
func MonthRangeFor(now time.Time, offset int) domain.MonthRange {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, loc)
	return domain.MonthRange{
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Year:  start.Year(),
		Month: start.Month(),
	}
}

// CurrentMonth is MonthRangeFor(now, 0).
func CurrentMonth(now time.Time) domain.MonthRange {
	return MonthRangeFor(now, 0)
}

// PreviousMonth is MonthRangeFor(now, 1).
func PreviousMonth(now time.Time) domain.MonthRange {
	return MonthRangeFor(now, 1)
}

// DaysBetween counts calendar days from date to now in now's location.
// Positive means date is in the past (overdue), negative means it is still ahead.
func DaysBetween(now time.Time, date time.Time) int {
	loc := now.Location()
	d := date.In(loc)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// MonthLabel renders a bucket label such as "Mar 25".
func MonthLabel(r domain.MonthRange) string {
	return fmt.Sprintf("%s %02d", r.Month.String()[:3], r.Year%100)
}
