package service

import "time"

// Clock supplies the current time. Injected so that TTL and windowing
// behaviour is testable with a fixed instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// NewClock returns the wall clock used outside of tests.
func NewClock() Clock {
	return realClock{}
}
