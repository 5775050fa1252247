//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifepad/pkg/core"
	"lifepad/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the button strip and status line below the grid view.
type HUD struct {
	src      parameterProvider
	top      int
	width    int
	buttons  []Button
	snapshot core.ParameterSnapshot
	running  bool

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD drawn at y = top across width pixels.
func NewHUD(src parameterProvider, top, width int) *HUD {
	h := &HUD{src: src, top: top, width: width, buttons: LayoutButtons(0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached parameters and returns the action of a button
// clicked this frame.
func (h *HUD) Update() Action {
	if h == nil {
		return ActionNone
	}
	h.snapshot = h.src.Parameters()
	if p, ok := h.snapshot.Lookup(life.ParamRunning); ok {
		h.running = p.Value == "true"
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	return HitTest(h.buttons, mx, my-h.top)
}

// Draw paints the HUD strip.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, b := range h.buttons {
		h.drawButton(b.Rect, b.Label(h.running))
	}
	h.drawStatus()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h.top))
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	value := func(key string) string {
		if p, ok := h.snapshot.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	status := fmt.Sprintf("gen %s  pop %s  %sms", value(life.ParamGeneration), value(life.ParamPopulation), value(life.ParamInterval))
	last := h.buttons[len(h.buttons)-1].Rect
	face := basicfont.Face7x13
	y := last.Min.Y + (last.Dy()+text.BoundString(face, status).Dy())/2
	text.Draw(h.panel, status, face, last.Max.X+buttonPadding*2, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
