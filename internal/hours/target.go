package hours

import (
	"fmt"
	"time"
)

// TargetConfig holds the optional hour goals of one project. Nil means no
// target for that window.
type TargetConfig struct {
	Daily   *int
	Weekly  *int
	Monthly *int
}

// Hours is a small helper for building targets.
func Hours(n int) *int {
	return &n
}

func (c TargetConfig) AnySet() bool {
	return c.Daily != nil || c.Weekly != nil || c.Monthly != nil
}

// String renders "8h / 40h / -" or "" when no target is set.
func (c TargetConfig) String() string {
	if !c.AnySet() {
		return ""
	}
	return fmt.Sprintf("%s / %s / %s", formatTarget(c.Daily), formatTarget(c.Weekly), formatTarget(c.Monthly))
}

func formatTarget(t *int) string {
	if t == nil {
		return "-"
	}
	return fmt.Sprintf("%dh", *t)
}

// TargetLookup resolves the target configuration of a project.
type TargetLookup interface {
	Target(key ProjectKey) (TargetConfig, bool)
}

// Targets is an in-memory TargetLookup.
type Targets map[ProjectKey]TargetConfig

func (t Targets) Target(key ProjectKey) (TargetConfig, bool) {
	c, ok := t[key]
	return c, ok
}

// Status is the progress of a duration against a target.
type Status int

const (
	StatusNeutral Status = iota
	StatusUnder
	StatusApproaching
	StatusMet
)

func (s Status) String() string {
	switch s {
	case StatusUnder:
		return "under"
	case StatusApproaching:
		return "approaching"
	case StatusMet:
		return "met"
	default:
		return "neutral"
	}
}

// Classify compares whole tracked hours against a target. Anything more than
// an hour short is Under, reaching the target is Met, the hour in between is
// Approaching.
func Classify(target *int, d time.Duration) Status {
	if target == nil {
		return StatusNeutral
	}
	hours := int64(d / time.Hour)
	t := int64(*target)
	switch {
	case t-1 > hours:
		return StatusUnder
	case t <= hours:
		return StatusMet
	default:
		return StatusApproaching
	}
}
