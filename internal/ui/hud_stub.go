//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(any, int, int) *HUD { return nil }

// Update never reports an action in the headless build.
func (h *HUD) Update() Action { return ActionNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
