package finance_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRangeFor(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		wantYear  int
		wantMonth time.Month
		wantEnd   time.Time
	}{
		{name: "current month", offset: 0, wantYear: 2025, wantMonth: time.March, wantEnd: time.Date(2025, time.April, 1, 0, 0, 0, 0, zurich)},
		{name: "previous month", offset: 1, wantYear: 2025, wantMonth: time.February, wantEnd: time.Date(2025, time.March, 1, 0, 0, 0, 0, zurich)},
		{name: "crosses year boundary", offset: 3, wantYear: 2024, wantMonth: time.December, wantEnd: time.Date(2025, time.January, 1, 0, 0, 0, 0, zurich)},
		{name: "eleven months back", offset: 11, wantYear: 2024, wantMonth: time.April, wantEnd: time.Date(2024, time.May, 1, 0, 0, 0, 0, zurich)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := finance.MonthRangeFor(fixedNow, tt.offset)
			assert.Equal(t, tt.wantYear, r.Year)
			assert.Equal(t, tt.wantMonth, r.Month)
			assert.Equal(t, 1, r.Start.Day())
			assert.True(t, r.End.Equal(tt.wantEnd), "end %s != %s", r.End, tt.wantEnd)
		})
	}
}

func TestMonthRangeFor_IsDeterministic(t *testing.T) {
	assert.Equal(t, finance.MonthRangeFor(fixedNow, 5), finance.MonthRangeFor(fixedNow, 5))
	assert.Equal(t, finance.PreviousMonth(fixedNow), finance.MonthRangeFor(fixedNow, 1))
	assert.Equal(t, finance.CurrentMonth(fixedNow), finance.MonthRangeFor(fixedNow, 0))
}

func TestMonthRangeFor_TrailingWindowIsContiguous(t *testing.T) {
	var previousEnd time.Time
	for offset := finance.SeriesMonths - 1; offset >= 0; offset-- {
		r := finance.MonthRangeFor(fixedNow, offset)
		require.True(t, r.Start.Before(r.End))
		if !previousEnd.IsZero() {
			assert.True(t, previousEnd.Equal(r.Start), "gap or overlap before %s", r.Start)
		}
		previousEnd = r.End
	}

	first := finance.MonthRangeFor(fixedNow, finance.SeriesMonths-1)
	last := finance.CurrentMonth(fixedNow)
	assert.True(t, first.Start.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, zurich)))
	assert.True(t, last.Contains(&fixedNow))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "same day", date: time.Date(2025, time.March, 15, 23, 0, 0, 0, zurich), want: 0},
		{name: "yesterday", date: time.Date(2025, time.March, 14, 0, 0, 0, 0, zurich), want: 1},
		{name: "forty days ago", date: *daysAgo(40), want: 40},
		{name: "next week", date: time.Date(2025, time.March, 22, 0, 0, 0, 0, zurich), want: -7},
		{name: "across DST change", date: time.Date(2025, time.April, 1, 0, 0, 0, 0, zurich), want: -17},
		{name: "utc timestamp is read in reporting zone", date: time.Date(2025, time.March, 14, 23, 30, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finance.DaysBetween(fixedNow, tt.date))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Mar 25", finance.MonthLabel(finance.CurrentMonth(fixedNow)))
	assert.Equal(t, "Dec 24", finance.MonthLabel(finance.MonthRangeFor(fixedNow, 3)))
}
