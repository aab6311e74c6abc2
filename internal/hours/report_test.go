package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixture() []Interval {
	beta := func(start time.Time, d time.Duration) Interval {
		i := interval("Beta", start, d)
		i.Client = "Acme"
		return i
	}
	return []Interval{
		beta(at(2022, 1, 12, 9, 0), 3*time.Hour+30*time.Minute),
		beta(at(2022, 1, 10, 9, 0), 8*time.Hour),
		beta(at(2022, 1, 3, 10, 0), time.Hour),
		interval("Alpha", at(2022, 1, 11, 13, 0), time.Hour),
		{Project: "Alpha", Span: Untimed()},
	}
}

func TestAssemble(t *testing.T) {
	targets := Targets{
		KeyOf("Beta"): {Daily: Hours(4), Weekly: Hours(10), Monthly: Hours(100)},
	}
	r := Assemble(fixture(), targets, NewDate(2022, 1, 12))

	require.Len(t, r.Rows, 3)
	require.Equal(t, 1, r.Untimed)
	require.Equal(t, []Pending{{Key: KeyOf("Alpha"), Title: "Alpha"}}, r.Pending)

	alpha := r.Rows[0]
	require.Equal(t, "Alpha", alpha.Title)
	require.Equal(t, "", alpha.DayCell())
	require.Equal(t, "1h 0m / 1h 0m", alpha.WeekCell())
	require.Equal(t, "1h 0m / 1h 0m", alpha.MonthCell())
	require.Equal(t, "", alpha.TargetCell())
	require.Equal(t, StatusNeutral, alpha.DayStatus)

	beta := r.Rows[1]
	require.Equal(t, "Acme / Beta", beta.Title)
	require.Equal(t, KeyOf("Beta"), beta.Key)
	require.Equal(t, "3h 30m", beta.DayCell())
	require.Equal(t, StatusApproaching, beta.DayStatus)
	require.Equal(t, "11h 30m / 5h 45m", beta.WeekCell())
	require.Equal(t, StatusMet, beta.WeekStatus)
	require.Equal(t, "12h 30m / 4h 10m", beta.MonthCell())
	require.Equal(t, StatusUnder, beta.MonthStatus)
	require.Equal(t, "4h / 10h / 100h", beta.TargetCell())

	total := r.Total()
	require.True(t, total.IsTotal())
	require.Equal(t, TotalTitle, total.Title)
	require.Equal(t, "3h 30m", total.DayCell())
	require.Equal(t, "12h 30m / 4h 10m", total.WeekCell())
	require.Equal(t, "13h 30m / 3h 22m", total.MonthCell())
	require.Equal(t, StatusNeutral, total.DayStatus)
	require.Equal(t, "", total.TargetCell())
}

func TestAssembleEmpty(t *testing.T) {
	r := Assemble(nil, Targets{}, NewDate(2022, 1, 12))
	require.Len(t, r.Rows, 1)
	require.Equal(t, TotalTitle, r.Total().Title)
	require.Equal(t, "", r.Total().DayCell())
	require.Equal(t, "", r.Total().WeekCell())
	require.Empty(t, r.Pending)
}

func TestAssembleDayNeverExceedsMonth(t *testing.T) {
	r := Assemble(fixture(), Targets{}, NewDate(2022, 1, 12))
	for _, row := range r.Rows {
		require.LessOrEqual(t, row.Day, row.Month, row.Title)
		require.LessOrEqual(t, row.Week, row.Month, row.Title)
	}
}

func TestAssembleIgnoresOtherMonths(t *testing.T) {
	is := []Interval{interval("Old", at(2021, 12, 31, 9, 0), time.Hour)}
	r := Assemble(is, Targets{}, NewDate(2022, 1, 12))
	require.Equal(t, "", r.Rows[0].MonthCell())
	require.Equal(t, "Old", r.Rows[0].Title)
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "", FormatDuration(0))
	require.Equal(t, "", FormatDuration(59*time.Second))
	require.Equal(t, "0h 1m", FormatDuration(time.Minute))
	require.Equal(t, "1h 30m", FormatDuration(90*time.Minute))
	require.Equal(t, "12h 0m", FormatDuration(12*time.Hour))
}

func TestFormatTotals(t *testing.T) {
	require.Equal(t, "1h 0m / 2h 0m", FormatTotals(time.Hour, 2*time.Hour))
	require.Equal(t, "", FormatTotals(0, 2*time.Hour))
	require.Equal(t, "1h 0m / ", FormatTotals(time.Hour, 0))
}
