package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	cases := []struct {
		name     string
		ref      Date
		from, to Date
	}{
		{"middle of month", NewDate(2022, 1, 12), NewDate(2022, 1, 1), NewDate(2022, 1, 31)},
		{"last day", NewDate(2022, 1, 31), NewDate(2022, 1, 1), NewDate(2022, 1, 31)},
		{"first day", NewDate(2022, 2, 1), NewDate(2022, 2, 1), NewDate(2022, 2, 28)},
		{"december", NewDate(2021, 12, 7), NewDate(2021, 12, 1), NewDate(2021, 12, 31)},
		{"leap february", NewDate(2024, 2, 10), NewDate(2024, 2, 1), NewDate(2024, 2, 29)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := MonthWindow(tc.ref)
			require.Equal(t, tc.from, w.From)
			require.Equal(t, tc.to, w.To)
		})
	}
}

func TestWeekWindow(t *testing.T) {
	cases := []struct {
		name string
		ref  Date
		from Date
	}{
		{"wednesday", NewDate(2022, 1, 12), NewDate(2022, 1, 10)},
		{"monday", NewDate(2022, 1, 10), NewDate(2022, 1, 10)},
		{"sunday", NewDate(2022, 1, 16), NewDate(2022, 1, 10)},
		{"across months", NewDate(2022, 2, 2), NewDate(2022, 1, 31)},
		{"across years", NewDate(2021, 1, 1), NewDate(2020, 12, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := WeekWindow(tc.ref)
			require.Equal(t, tc.from, w.From)
			require.Equal(t, tc.ref, w.To, "week runs through the reference date only")
		})
	}
}

func TestDayWindow(t *testing.T) {
	ref := NewDate(2022, 1, 12)
	w := DayWindow(ref)
	require.True(t, w.Contains(ref))
	require.False(t, w.Contains(ref.AddDays(1)))
	require.False(t, w.Contains(ref.AddDays(-1)))
	require.Len(t, w.Days(), 1)
}

func TestWindowDays(t *testing.T) {
	days := MonthWindow(NewDate(2022, 2, 14)).Days()
	require.Len(t, days, 28)
	require.Equal(t, NewDate(2022, 2, 1), days[0])
	require.Equal(t, NewDate(2022, 2, 28), days[27])
}

func TestDateOfUsesOwnLocation(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2022, 1, 12, 23, 30, 0, 0, time.UTC).In(zone)
	require.Equal(t, NewDate(2022, 1, 13), DateOf(ts))
	require.Equal(t, "2022-01-13", DateOf(ts).String())
}
