package hours

import (
	"fmt"
	"time"
)

// Date is a calendar day without a clock or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate normalizes out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays steps n days forward (or back for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

func (d Date) Before(o Date) bool {
	return d.midnight().Before(o.midnight())
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Window is an inclusive range of calendar days.
type Window struct {
	From Date
	To   Date
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// Days lists every date of the window in order.
func (w Window) Days() []Date {
	var days []Date
	for d := w.From; !d.After(w.To); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (w Window) String() string {
	return w.From.String() + " .. " + w.To.String()
}

// DayWindow is the single day ref.
func DayWindow(ref Date) Window {
	return Window{From: ref, To: ref}
}

// WeekWindow runs from the ISO Monday of ref's week through ref itself.
func WeekWindow(ref Date) Window {
	weekday := int(ref.Weekday())
	if weekday == int(time.Sunday) {
		weekday = 7
	}
	return Window{From: ref.AddDays(1 - weekday), To: ref}
}

// MonthWindow covers the whole calendar month containing ref.
func MonthWindow(ref Date) Window {
	first := Date{Year: ref.Year, Month: ref.Month, Day: 1}
	nextFirst := NewDate(ref.Year, ref.Month+1, 1)
	return Window{From: first, To: nextFirst.AddDays(-1)}
}
