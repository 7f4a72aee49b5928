package core

import "time"

// FixedDelay paces simulation updates by a fixed wall-clock delay per step.
type FixedDelay struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedDelay constructs a pacer that fires once per delay. A non-positive
// delay fires on every call.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	fd := &FixedDelay{}
	fd.SetDelay(delay)
	fd.accumulator = fd.step
	return fd
}

// SetDelay changes the per-step delay. It is safe to call from the main loop.
func (f *FixedDelay) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	f.step = delay
}

// Reset discards accumulated time so the next call fires immediately and the
// ones after it wait out a full delay. Call it when stepping resumes after a
// stretch of frames that never polled the pacer.
func (f *FixedDelay) Reset() {
	f.accumulator = f.step
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedDelay) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
