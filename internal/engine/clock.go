package engine

import "time"

// Clock abstracts time for the engine's settle pauses so tests can drive
// timed sequences without wall-clock delays.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
