// internal/app/system/deadline/deadline.go

// Package deadline derives countdown views from a project deadline and the
// current time. Everything here is a pure function of (deadline, now);
// recurring re-evaluation lives in the workers package.
package deadline

import "time"

// Band classifies how urgent a deadline is for display purposes.
type Band int

const (
	BandNormal   Band = iota // 3 days or more remaining
	BandWarning              // less than 3 days remaining
	BandCritical             // less than 1 day remaining
	BandPassed               // deadline reached or passed
)

// String returns the display label for the band.
func (b Band) String() string {
	switch b {
	case BandWarning:
		return "warning"
	case BandCritical:
		return "critical"
	case BandPassed:
		return "passed"
	default:
		return "normal"
	}
}

// Remaining is the structured time-left breakdown shown next to a project.
// When Passed is true the component fields are zero.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Passed  bool
}

// Until breaks down the time left before due. The countdown treats the
// exact deadline instant as already passed, matching a display that shows
// "Deadline Passed" the moment the timer reaches zero.
func Until(due, now time.Time) Remaining {
	left := due.Sub(now)
	if left <= 0 {
		return Remaining{Passed: true}
	}
	return Remaining{
		Days:    int(left / (24 * time.Hour)),
		Hours:   int((left % (24 * time.Hour)) / time.Hour),
		Minutes: int((left % time.Hour) / time.Minute),
	}
}

// Urgency returns the display band for the time left before due.
func Urgency(due, now time.Time) Band {
	rem := Until(due, now)
	switch {
	case rem.Passed:
		return BandPassed
	case rem.Days < 1:
		return BandCritical
	case rem.Days < 3:
		return BandWarning
	default:
		return BandNormal
	}
}

// Overdue reports whether now is strictly after due. Unlike the countdown
// display, an instant equal to the deadline is not overdue.
func Overdue(due, now time.Time) bool {
	return now.After(due)
}
