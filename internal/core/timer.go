package core

import "time"

// FixedStep turns a host's frame loop into a periodic tick. It satisfies
// life.Scheduler: Arm restarts the period so the first advance after a
// resume happens one full interval later.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep ticking every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick period without resetting accumulated time.
// Non-positive values fall back to one tick per 60 Hz frame.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Arm restarts the period at interval.
func (f *FixedStep) Arm(interval time.Duration) {
	f.SetInterval(interval)
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether a tick is due. Call it once per frame; at most
// one tick is reported per call and surplus time carries over.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// Drop backlog after a stall so the grid does not race to catch up.
			f.accumulator = f.step
		}
		return true
	}
	return false
}
