// Package hours turns tracked intervals into per-project progress against
// daily, weekly and monthly hour targets.
//
// Everything here is a pure function of its inputs: the interval set, the
// target lookup and the reference date. Callers own I/O, the clock and any
// prompting for missing targets (see Report.Pending).
package hours
