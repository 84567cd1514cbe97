package queue

import "time"

// Timer is the handle returned when a batch timer is armed.
type Timer interface {
	// Stop cancels the timer. Returns false if it already fired.
	Stop() bool
}

// TimerFactory abstracts one-shot timer creation so tests can drive the
// scheduler with simulated time instead of sleeping.
type TimerFactory interface {
	// AfterFunc arms a one-shot timer that runs fn on its own goroutine
	// after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// realTimerFactory is the production TimerFactory backed by the runtime clock.
type realTimerFactory struct{}

// NewTimerFactory returns the production timer factory.
func NewTimerFactory() TimerFactory {
	return realTimerFactory{}
}

func (realTimerFactory) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
