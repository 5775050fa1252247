package life

import (
	"sync"
	"time"

	"lifepad/pkg/core"
)

// Locked serializes access to a Controller for hosts that call it from more
// than one goroutine. Every method holds the same mutex.
type Locked struct {
	mu sync.Mutex
	c  *Controller
}

// NewLocked wraps c. The caller must not use c directly afterwards.
func NewLocked(c *Controller) *Locked { return &Locked{c: c} }

// Attach registers the host scheduler.
func (l *Locked) Attach(s Scheduler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Attach(s)
}

// Running reports whether autonomous advances are enabled.
func (l *Locked) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Running()
}

// ToggleRunning switches between idle and running.
func (l *Locked) ToggleRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.ToggleRunning()
}

// StepOnce advances exactly one generation.
func (l *Locked) StepOnce() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.StepOnce()
}

// Advance steps only while running.
func (l *Locked) Advance() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Advance()
}

// Randomize fills the grid with independent fair coin flips.
func (l *Locked) Randomize() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Randomize()
}

// Clear kills every cell.
func (l *Locked) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Clear()
}

// ToggleCell flips cell (r, c).
func (l *Locked) ToggleCell(r, c int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.ToggleCell(r, c)
}

// Snapshot returns a copy of the current generation.
func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Snapshot()
}

// Size returns the grid dimensions. Dimensions never change, so no lock is
// taken.
func (l *Locked) Size() core.Size { return l.c.Size() }

// Interval returns the advance period hint.
func (l *Locked) Interval() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Interval()
}

// Parameters reports the values shown on the HUD.
func (l *Locked) Parameters() core.ParameterSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Parameters()
}

// ParameterControls lists the parameters a host may adjust.
func (l *Locked) ParameterControls() []core.ParameterControl {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.ParameterControls()
}

// SetIntParameter updates an adjustable parameter.
func (l *Locked) SetIntParameter(key string, value int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.SetIntParameter(key, value)
}
