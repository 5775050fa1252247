package life

import (
	"strconv"
	"time"

	"lifepad/pkg/core"
)

// Scheduler is the host-owned handle a Controller re-arms when it starts
// running. Implementations call Controller.Advance roughly once per interval.
type Scheduler interface {
	Arm(interval time.Duration)
}

// Parameter keys exposed through Parameters and SetIntParameter.
const (
	ParamInterval   = "interval_ms"
	ParamRunning    = "running"
	ParamGeneration = "generation"
	ParamPopulation = "population"
)

const (
	minIntervalMS = 10
	maxIntervalMS = 5000
)

// Controller owns a Grid and tracks whether it is running or idle.
type Controller struct {
	grid     *Grid
	running  bool
	interval time.Duration
	sched    Scheduler
}

// NewController creates an idle controller over an all-dead grid.
func NewController(cfg Config) (*Controller, error) {
	g, err := NewGrid(cfg.Rows, cfg.Cols, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return newController(g, cfg), nil
}

// NewControllerFrom creates an idle controller over a copy of cells. The
// dimensions in cfg are ignored.
func NewControllerFrom(cells [][]bool, cfg Config) (*Controller, error) {
	g, err := NewGridFrom(cells, cfg.Seed)
	if err != nil {
		return nil, err
	}
	return newController(g, cfg), nil
}

func newController(g *Grid, cfg Config) *Controller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{grid: g, interval: interval}
}

// Attach registers the host scheduler. If the controller is already running
// the scheduler is armed immediately.
func (c *Controller) Attach(s Scheduler) {
	c.sched = s
	if c.running {
		c.arm()
	}
}

func (c *Controller) arm() {
	if c.sched != nil {
		c.sched.Arm(c.interval)
	}
}

// Running reports whether autonomous advances are enabled.
func (c *Controller) Running() bool { return c.running }

// ToggleRunning switches between idle and running and returns the new
// state. Starting re-arms the attached scheduler.
func (c *Controller) ToggleRunning() bool {
	c.running = !c.running
	if c.running {
		c.arm()
	}
	return c.running
}

// StepOnce advances exactly one generation whether or not the controller is
// running.
func (c *Controller) StepOnce() { c.grid.Step() }

// Advance is called by the host on every scheduled tick. It steps only while
// running, so a tick that fires after a pause does nothing. It reports
// whether a generation was produced.
func (c *Controller) Advance() bool {
	if !c.running {
		return false
	}
	c.grid.Step()
	return true
}

// Randomize fills the grid with independent fair coin flips.
func (c *Controller) Randomize() { c.grid.Randomize() }

// Clear kills every cell.
func (c *Controller) Clear() { c.grid.Clear() }

// ToggleCell flips cell (r, c).
func (c *Controller) ToggleCell(r, col int) error { return c.grid.Toggle(r, col) }

// Snapshot returns a copy of the current generation.
func (c *Controller) Snapshot() Snapshot { return c.grid.Snapshot() }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Generation returns the number of completed steps.
func (c *Controller) Generation() uint64 { return c.grid.Generation() }

// Interval returns the advance period hint for the host.
func (c *Controller) Interval() time.Duration { return c.interval }

// SetInterval changes the advance period. Non-positive values are ignored.
// A running controller re-arms its scheduler with the new period.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.interval = d
	if c.running {
		c.arm()
	}
}

// Reseed restarts the random stream used by Randomize.
func (c *Controller) Reseed(seed int64) {
	c.grid.Reseed(seed)
}

// Parameters reports the values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: ParamRunning, Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.running)},
		{Key: ParamGeneration, Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(c.grid.Generation(), 10)},
		{Key: ParamPopulation, Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.Population())},
		{Key: ParamInterval, Label: "Interval (ms)", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.interval.Milliseconds(), 10)},
	}}
}

// ParameterControls lists the parameters a host may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    ParamInterval,
		Label:  "Interval (ms)",
		Type:   core.ParamTypeInt,
		Step:   20,
		Min:    minIntervalMS,
		Max:    maxIntervalMS,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter updates an adjustable parameter, clamping to its bounds.
// It reports false for unknown keys.
func (c *Controller) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		switch key {
		case ParamInterval:
			c.SetInterval(time.Duration(ctrl.Clamp(value)) * time.Millisecond)
			return true
		}
	}
	return false
}
