// Package clock provides an injectable time source so handlers that depend
// on the current time (past-date checks, completion timestamps) stay testable.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock pinned to t. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}
