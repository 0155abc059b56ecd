package state

// IntervalTimer is a repeating timer driven by accumulated per-frame delta
// time, so the playback cadence is independent of frame rate. It never
// blocks; callers poll Tick every frame.
type IntervalTimer struct {
	period  float64
	elapsed float64
}

// NewIntervalTimer creates a repeating timer with the given period in seconds.
func NewIntervalTimer(period float64) IntervalTimer {
	return IntervalTimer{period: period}
}

// Tick advances the timer and reports whether the period elapsed this frame.
// The timer fires at most once per call; leftover time carries over.
func (t *IntervalTimer) Tick(dt float64) bool {
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed -= t.period
		return true
	}
	return false
}

// Reset restarts the timer from zero elapsed time.
func (t *IntervalTimer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time accumulated toward the next fire.
func (t *IntervalTimer) Elapsed() float64 {
	return t.elapsed
}
