package engine

import "time"

// FrameClock measures wall-clock time between ticks and caps it so a
// suspended process does not take one huge integration step on resume
type FrameClock struct {
	clock  Clock
	period time.Duration
	limit  time.Duration
	last   time.Time
}

// NewFrameClock starts measuring from clock.Now()
// Elapsed time above clampFactor*period is replaced by period
func NewFrameClock(clock Clock, period time.Duration, clampFactor float64) *FrameClock {
	return &FrameClock{
		clock:  clock,
		period: period,
		limit:  time.Duration(float64(period) * clampFactor),
		last:   clock.Now(),
	}
}

// Next returns the duration since the previous call and whether it was clamped
func (f *FrameClock) Next() (time.Duration, bool) {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now

	if dt > f.limit {
		return f.period, true
	}
	if dt < 0 {
		dt = 0
	}
	return dt, false
}

// Period returns the nominal tick period
func (f *FrameClock) Period() time.Duration {
	return f.period
}
