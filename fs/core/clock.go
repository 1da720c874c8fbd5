package core

import "time"

// Clock is the wall-clock source used to compute integrity markers.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

const markerYear = 365 * 24 * time.Hour

// Markers holds the two reference timestamps of the integrity scheme.
// Files are stamped with DistantFuture and checked against NearFuture, so
// precision loss on the stored mtime can never make a fresh stamp look
// tampered.
type Markers struct {
	NearFuture    time.Time
	DistantFuture time.Time
}

// NewMarkers computes markers 9 and 10 years past now.
func NewMarkers(now time.Time) Markers {
	return Markers{
		NearFuture:    now.Add(9 * markerYear),
		DistantFuture: now.Add(10 * markerYear),
	}
}

var processMarkers = NewMarkers(time.Now())

// ProcessMarkers returns the markers computed once at process start.
func ProcessMarkers() Markers {
	return processMarkers
}
