package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(interval time.Duration) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(interval)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepTicksAtInterval(t *testing.T) {
	fs, clk := newTestStep(100 * time.Millisecond)
	fs.Arm(100 * time.Millisecond)

	clk.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("ticked before the interval elapsed")
	}
	clk.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not tick after the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("ticked twice for one interval")
	}
}

func TestFixedStepArmRestartsPeriod(t *testing.T) {
	fs, clk := newTestStep(100 * time.Millisecond)
	fs.Arm(100 * time.Millisecond)
	clk.advance(90 * time.Millisecond)
	fs.ShouldStep()

	fs.Arm(50 * time.Millisecond)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", fs.Interval())
	}
	clk.advance(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("time accumulated before Arm carried over")
	}
	clk.advance(10 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("no tick one interval after Arm")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs, clk := newTestStep(10 * time.Millisecond)
	fs.Arm(10 * time.Millisecond)
	clk.advance(time.Second)

	ticks := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks != 2 {
		t.Fatalf("ticks after stall = %d, want 2", ticks)
	}
}

func TestFixedStepDefaultsNonPositiveInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want one 60Hz frame", fs.Interval())
	}
}
