package app

import (
	"flag"
	"testing"
	"time"

	"lifepad/internal/ui"
	"lifepad/pkg/life"
)

func newEngine(t *testing.T) *life.Controller {
	t.Helper()
	c, err := life.NewController(life.Config{Rows: 6, Cols: 6, Interval: 100 * time.Millisecond, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestApplyDispatchesActions(t *testing.T) {
	c := newEngine(t)

	Apply(c, ui.ActionToggleRunning)
	if !c.Running() {
		t.Fatal("toggle action did not start the controller")
	}
	Apply(c, ui.ActionStep)
	if c.Generation() != 1 {
		t.Fatalf("generation = %d after step action", c.Generation())
	}
	Apply(c, ui.ActionRandomize)
	if c.Snapshot().Population() == 0 {
		t.Fatal("randomize action left the grid empty")
	}
	Apply(c, ui.ActionClear)
	if c.Snapshot().Population() != 0 {
		t.Fatal("clear action left live cells")
	}
	Apply(c, ui.ActionNone)
	if !c.Running() || c.Generation() != 1 {
		t.Fatal("no-op action changed state")
	}
}

func TestApplyAdjustsInterval(t *testing.T) {
	c := newEngine(t)
	Apply(c, ui.ActionSlower)
	if c.Interval() != 120*time.Millisecond {
		t.Fatalf("interval = %v after slower, want 120ms", c.Interval())
	}
	for i := 0; i < 20; i++ {
		Apply(c, ui.ActionFaster)
	}
	if c.Interval() != 10*time.Millisecond {
		t.Fatalf("interval = %v after repeated faster, want clamp at 10ms", c.Interval())
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rows", "10", "-cols", "12", "-interval", "50ms", "-random"}); err != nil {
		t.Fatal(err)
	}
	ctrl, err := cfg.NewController()
	if err != nil {
		t.Fatal(err)
	}
	size := ctrl.Size()
	if size.Rows != 10 || size.Cols != 12 || ctrl.Interval() != 50*time.Millisecond {
		t.Fatalf("controller %+v interval %v", size, ctrl.Interval())
	}
	if ctrl.Snapshot().Population() == 0 {
		t.Fatal("-random did not populate the grid")
	}

	cfg.Rows = 0
	if _, err := cfg.NewController(); err == nil {
		t.Fatal("zero rows accepted")
	}
}
