package life

import (
	"errors"
	"testing"
	"time"
)

type recordingScheduler struct {
	arms []time.Duration
}

func (s *recordingScheduler) Arm(d time.Duration) { s.arms = append(s.arms, d) }

func newTestController(t *testing.T) *Controller {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 8, 8
	c, err := NewController(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewControllerPropagatesInvalidDimensions(t *testing.T) {
	if _, err := NewController(Config{Rows: 0, Cols: 3}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err=%v, want ErrInvalidDimensions", err)
	}
	if _, err := NewControllerFrom([][]bool{{true}, {}}, DefaultConfig()); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err=%v, want ErrInvalidDimensions", err)
	}
}

func TestNewControllerDefaultsInterval(t *testing.T) {
	c, err := NewController(Config{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatal(err)
	}
	if c.Interval() != DefaultInterval {
		t.Fatalf("interval = %v, want %v", c.Interval(), DefaultInterval)
	}
}

func TestToggleRunningStateMachine(t *testing.T) {
	c := newTestController(t)
	sched := &recordingScheduler{}
	c.Attach(sched)

	if c.Running() {
		t.Fatal("controller must start idle")
	}
	if !c.ToggleRunning() || !c.Running() {
		t.Fatal("first toggle should start running")
	}
	if len(sched.arms) != 1 || sched.arms[0] != c.Interval() {
		t.Fatalf("arms = %v, want one arm at %v", sched.arms, c.Interval())
	}
	if c.ToggleRunning() || c.Running() {
		t.Fatal("second toggle should pause")
	}
	if len(sched.arms) != 1 {
		t.Fatal("pausing must not arm the scheduler")
	}
	c.ToggleRunning()
	if len(sched.arms) != 2 {
		t.Fatal("resuming must re-arm the scheduler")
	}
}

func TestAttachWhileRunningArms(t *testing.T) {
	c := newTestController(t)
	c.ToggleRunning()
	sched := &recordingScheduler{}
	c.Attach(sched)
	if len(sched.arms) != 1 {
		t.Fatalf("arms = %d, want 1", len(sched.arms))
	}
}

func TestAdvanceAfterPauseIsNoop(t *testing.T) {
	c := newTestController(t)
	if c.Advance() {
		t.Fatal("idle controller advanced")
	}
	c.ToggleRunning()
	if !c.Advance() {
		t.Fatal("running controller did not advance")
	}
	c.ToggleRunning()
	if c.Advance() {
		t.Fatal("tick after pause advanced the grid")
	}
	if c.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", c.Generation())
	}
}

func TestStepOnceIgnoresRunningState(t *testing.T) {
	c := newTestController(t)
	c.StepOnce()
	if c.Running() || c.Generation() != 1 {
		t.Fatalf("idle StepOnce: running=%v generation=%d", c.Running(), c.Generation())
	}
	c.ToggleRunning()
	c.StepOnce()
	if !c.Running() || c.Generation() != 2 {
		t.Fatalf("running StepOnce: running=%v generation=%d", c.Running(), c.Generation())
	}
}

func TestMutationsWhileRunning(t *testing.T) {
	c := newTestController(t)
	c.ToggleRunning()

	for _, p := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if err := c.ToggleCell(p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}
	c.Advance()
	snap := c.Snapshot()
	if !snap.Alive(2, 1) || !snap.Alive(2, 3) || snap.Alive(1, 2) {
		t.Fatal("edit made while running was not used by the next step")
	}

	c.Randomize()
	c.Clear()
	if c.Snapshot().Population() != 0 {
		t.Fatal("Clear while running left live cells")
	}
	if !c.Running() {
		t.Fatal("mutations must not change running state")
	}
	if err := c.ToggleCell(8, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err=%v, want ErrOutOfRange", err)
	}
}

func TestSetIntervalRearmsWhenRunning(t *testing.T) {
	c := newTestController(t)
	sched := &recordingScheduler{}
	c.Attach(sched)

	c.SetInterval(50 * time.Millisecond)
	if len(sched.arms) != 0 {
		t.Fatal("idle SetInterval armed the scheduler")
	}
	c.ToggleRunning()
	c.SetInterval(70 * time.Millisecond)
	if got := sched.arms[len(sched.arms)-1]; got != 70*time.Millisecond {
		t.Fatalf("last arm = %v, want 70ms", got)
	}
	c.SetInterval(-time.Second)
	if c.Interval() != 70*time.Millisecond {
		t.Fatal("non-positive interval was accepted")
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	c := newTestController(t)
	if !c.SetIntParameter(ParamInterval, 1) {
		t.Fatal("interval parameter rejected")
	}
	if c.Interval() != minIntervalMS*time.Millisecond {
		t.Fatalf("interval = %v, want clamp to %dms", c.Interval(), minIntervalMS)
	}
	c.SetIntParameter(ParamInterval, 1_000_000)
	if c.Interval() != maxIntervalMS*time.Millisecond {
		t.Fatalf("interval = %v, want clamp to %dms", c.Interval(), maxIntervalMS)
	}
	if c.SetIntParameter("rows", 3) {
		t.Fatal("unknown parameter accepted")
	}
}

func TestParametersReflectState(t *testing.T) {
	c := newTestController(t)
	c.ToggleCell(0, 0)
	c.ToggleRunning()

	params := c.Parameters()
	if p, ok := params.Lookup(ParamRunning); !ok || p.Value != "true" {
		t.Fatalf("running param = %+v", p)
	}
	if p, ok := params.Lookup(ParamPopulation); !ok || p.Value != "1" {
		t.Fatalf("population param = %+v", p)
	}
	if p, ok := params.Lookup(ParamInterval); !ok || p.Value != "180" {
		t.Fatalf("interval param = %+v", p)
	}
}
