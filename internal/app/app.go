//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifepad/internal/core"
	"lifepad/internal/render"
	"lifepad/internal/ui"
	"lifepad/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life controller to the ebiten.Game interface. It owns the
// frame loop and therefore the advance timer.
type Game struct {
	engine  Engine
	ticker  *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	cell int
}

// New constructs a Game for the provided controller.
func New(ctrl *life.Controller, cell int) *Game {
	size := ctrl.Size()
	ticker := core.NewFixedStep(ctrl.Interval())
	ctrl.Attach(ticker)

	gp := render.NewGridPainter(size.Rows, size.Cols, cell, color.RGBA{R: 211, G: 211, B: 211, A: 255})
	w, h := gp.Size()
	return &Game{
		engine:   ctrl,
		ticker:   ticker,
		painter:  gp,
		hud:      ui.NewHUD(ctrl, h, w),
		overlay:  ui.NewOverlay(size, cell),
		onColor:  color.Black,
		offColor: color.White,
		cell:     cell,
	}
}

// Update handles per-frame input and advances the simulation when a tick is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	Apply(g.engine, keyAction())
	Apply(g.engine, g.hud.Update())
	g.overlay.Update()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clickCell(ebiten.CursorPosition())
	}

	// The tick is consumed even while idle so that a resume does not fire a
	// burst of stale advances; Advance re-checks the running state.
	if g.ticker.ShouldStep() {
		g.engine.Advance()
	}
	return nil
}

func (g *Game) clickCell(x, y int) {
	r, c, ok := ui.CellAt(x, y, g.cell)
	size := g.engine.Size()
	if !ok || r >= size.Rows || c >= size.Cols {
		return
	}
	if err := g.engine.ToggleCell(r, c); err != nil {
		log.Printf("ignoring click: %v", err)
	}
}

func keyAction() ui.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return ui.ActionToggleRunning
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		return ui.ActionStep
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return ui.ActionRandomize
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		return ui.ActionClear
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		return ui.ActionSlower
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		return ui.ActionFaster
	}
	return ui.ActionNone
}

// Draw renders the current generation, the pointer highlight and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Snapshot(), g.onColor, g.offColor)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w, h + ui.HUDHeight
}
