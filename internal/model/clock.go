package model

import "time"

// Clock abstracts the time source ; the session store takes one
// so tests can pin "now".
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
}

// ClockFunc implements Clock interface
type ClockFunc func() time.Time

func (fn ClockFunc) Now() time.Time {
	return fn()
}

// LocalTime is the wall-clock Clock.
var LocalTime Clock = ClockFunc(time.Now)
