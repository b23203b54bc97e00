package timeutil

import "time"

// Year returns the calendar year of c.Now() in loc.
// A nil clock means DefaultClock, a nil location means UTC.
func Year(c Clock, loc *time.Location) int {
	if c == nil {
		c = DefaultClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return c.Now().In(loc).Year()
}
