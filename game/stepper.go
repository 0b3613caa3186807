package game

import "time"

// Stepper gates a render loop to a fixed tick interval.
type Stepper struct {
	interval   time.Duration
	lastUpdate time.Time
}

func NewStepper(interval time.Duration, start time.Time) *Stepper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Stepper{interval: interval, lastUpdate: start}
}

// Ready reports whether a tick is due at now and, if so, restarts the
// interval from now. Missed intervals are dropped rather than replayed.
func (s *Stepper) Ready(now time.Time) bool {
	if now.Sub(s.lastUpdate) < s.interval {
		return false
	}
	s.lastUpdate = now
	return true
}

// Interval is the minimum time between two ticks.
func (s *Stepper) Interval() time.Duration {
	return s.interval
}
