//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifepad/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay highlights the cell under the pointer. H toggles it.
type Overlay struct {
	size  core.Size
	cell  int
	show  bool
	hover bool
	r, c  int
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at cell pixels per cell.
func NewOverlay(size core.Size, cell int) *Overlay {
	o := &Overlay{size: size, cell: cell, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the pointer and the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	mx, my := ebiten.CursorPosition()
	r, c, ok := CellAt(mx, my, o.cell)
	o.hover = ok && o.size.Contains(r, c)
	o.r, o.c = r, c
}

// Draw renders the highlight and the hovered coordinate.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hover {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cell), float64(o.cell))
	op.GeoM.Translate(float64(o.c*o.cell), float64(o.r*o.cell))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 90, G: 140, B: 255, A: 110})
	screen.DrawImage(o.pixel, op)

	label := fmt.Sprintf("%d,%d", o.r, o.c)
	text.Draw(screen, label, basicfont.Face7x13, 4, 14, color.RGBA{R: 90, G: 140, B: 255, A: 255})
}
