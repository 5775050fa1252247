package ui

import "image"

// Action is a user command raised by a HUD button.
type Action int

const (
	ActionNone Action = iota
	ActionRandomize
	ActionToggleRunning
	ActionStep
	ActionClear
	ActionSlower
	ActionFaster
)

// HUDHeight is the height in pixels of the button strip below the grid.
const HUDHeight = 44

const (
	buttonHeight  = 20
	buttonPadding = 6
	charWidth     = 7
)

// Button is one clickable HUD control.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// Label returns the text drawn on the button. The run button reads "Stop"
// while running and "Start" otherwise.
func (b Button) Label(running bool) string {
	return actionLabel(b.Action, running)
}

func actionLabel(a Action, running bool) string {
	switch a {
	case ActionRandomize:
		return "Random"
	case ActionToggleRunning:
		if running {
			return "Stop"
		}
		return "Start"
	case ActionStep:
		return "Step"
	case ActionClear:
		return "Clear"
	case ActionSlower:
		return "-"
	case ActionFaster:
		return "+"
	}
	return ""
}

// LayoutButtons places the HUD buttons left to right in a strip starting at
// y = top. Widths fit the widest label of each button.
func LayoutButtons(top int) []Button {
	order := []Action{ActionRandomize, ActionToggleRunning, ActionStep, ActionClear, ActionSlower, ActionFaster}
	buttons := make([]Button, 0, len(order))
	x := buttonPadding
	for _, a := range order {
		chars := max(len(actionLabel(a, false)), len(actionLabel(a, true)))
		w := chars*charWidth + 2*buttonPadding
		r := image.Rect(x, top+buttonPadding, x+w, top+buttonPadding+buttonHeight)
		buttons = append(buttons, Button{Action: a, Rect: r})
		x += w + buttonPadding
	}
	return buttons
}

// HitTest returns the action of the button containing (x, y).
func HitTest(buttons []Button, x, y int) Action {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

// CellAt translates a pixel position into grid coordinates by integer
// division with the cell size. It reports false for positions left of or
// above the grid or when cell is not positive; the caller still has to
// bound-check against the grid size.
func CellAt(x, y, cell int) (r, c int, ok bool) {
	if cell <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	return y / cell, x / cell, true
}
