package hours

import "time"

// Span is either Timed, with both endpoints and end not before start, or
// Untimed. Untimed spans have zero duration and belong to no window.
type Span struct {
	start time.Time
	end   time.Time
	timed bool
}

// Timed returns a span over [start, end]. A reversed pair yields Untimed.
func Timed(start, end time.Time) Span {
	if end.Before(start) {
		return Untimed()
	}
	return Span{start: start, end: end, timed: true}
}

func Untimed() Span {
	return Span{}
}

// SpanOf builds a span from optional endpoints.
func SpanOf(start, end *time.Time) Span {
	if start == nil || end == nil {
		return Untimed()
	}
	return Timed(*start, *end)
}

func (s Span) IsTimed() bool {
	return s.timed
}

// Bounds reports the endpoints of a timed span.
func (s Span) Bounds() (start, end time.Time, ok bool) {
	return s.start, s.end, s.timed
}

func (s Span) Duration() time.Duration {
	if !s.timed {
		return 0
	}
	return s.end.Sub(s.start)
}

// Interval is one tracked span of work as delivered by an integration.
type Interval struct {
	Description   string
	Client        string // empty when the entry has no client
	Project       string
	Span          Span
	BillableCents int64
}

func (i Interval) Duration() time.Duration {
	return i.Span.Duration()
}

// Date is the calendar day the interval started on. Untimed intervals
// have no date.
func (i Interval) Date() (Date, bool) {
	start, _, ok := i.Span.Bounds()
	if !ok {
		return Date{}, false
	}
	return DateOf(start), true
}

// Intervals is a plain interval collection.
type Intervals []Interval

func (is Intervals) Entries() []Interval {
	return is
}
