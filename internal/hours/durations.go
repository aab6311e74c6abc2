package hours

import "time"

// Entries is implemented by anything exposing a raw interval list. All
// aggregate computations are written once against it, so the whole
// collection and a single project share them.
type Entries interface {
	Entries() []Interval
}

// Sum folds durations starting from zero.
func Sum(durations ...time.Duration) time.Duration {
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total
}

// TotalIn sums intervals whose start date falls inside w.
func TotalIn(e Entries, w Window) time.Duration {
	var durations []time.Duration
	for _, i := range e.Entries() {
		if d, ok := i.Date(); ok && w.Contains(d) {
			durations = append(durations, i.Duration())
		}
	}
	return Sum(durations...)
}

// WorkDays returns the distinct dates in w that have at least one timed
// interval.
func WorkDays(e Entries, w Window) map[Date]struct{} {
	days := make(map[Date]struct{})
	for _, i := range e.Entries() {
		if d, ok := i.Date(); ok && w.Contains(d) {
			days[d] = struct{}{}
		}
	}
	return days
}

// DailyAverage divides the whole minutes tracked in w by the number of work
// days in w, truncating. No work days means a zero average.
func DailyAverage(e Entries, w Window) time.Duration {
	days := int64(len(WorkDays(e, w)))
	if days == 0 {
		return 0
	}
	minutes := int64(TotalIn(e, w) / time.Minute)
	return time.Duration(minutes/days) * time.Minute
}

// Untracked counts intervals missing an endpoint.
func Untracked(e Entries) int {
	n := 0
	for _, i := range e.Entries() {
		if !i.Span.IsTimed() {
			n++
		}
	}
	return n
}
