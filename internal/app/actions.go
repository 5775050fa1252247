package app

import (
	"time"

	"lifepad/internal/ui"
	"lifepad/pkg/core"
	"lifepad/pkg/life"
)

// Engine is the subset of the controller API the hosts drive. Both
// *life.Controller and *life.Locked satisfy it.
type Engine interface {
	Running() bool
	ToggleRunning() bool
	StepOnce()
	Advance() bool
	Randomize()
	Clear()
	ToggleCell(r, c int) error
	Snapshot() life.Snapshot
	Size() core.Size
	Interval() time.Duration
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

var (
	_ Engine = (*life.Controller)(nil)
	_ Engine = (*life.Locked)(nil)
)

// Apply performs a HUD or keyboard action against e.
func Apply(e Engine, a ui.Action) {
	switch a {
	case ui.ActionRandomize:
		e.Randomize()
	case ui.ActionToggleRunning:
		e.ToggleRunning()
	case ui.ActionStep:
		e.StepOnce()
	case ui.ActionClear:
		e.Clear()
	case ui.ActionSlower:
		adjustInterval(e, 1)
	case ui.ActionFaster:
		adjustInterval(e, -1)
	}
}

func adjustInterval(e Engine, direction int) {
	for _, ctrl := range e.ParameterControls() {
		if ctrl.Key != life.ParamInterval {
			continue
		}
		step := ctrl.Step
		if step <= 0 {
			step = 1
		}
		current := int(e.Interval().Milliseconds())
		e.SetIntParameter(ctrl.Key, ctrl.Clamp(current+direction*step))
		return
	}
}
