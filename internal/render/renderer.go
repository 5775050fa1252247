//go:build ebiten

package render

import (
	"image/color"

	"lifepad/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws snapshots as one scaled pixel per cell with an optional
// outline overlay.
type GridPainter struct {
	rows, cols int
	cell       int
	img        *ebiten.Image
	buf        []byte
	lines      *ebiten.Image
}

// NewGridPainter allocates a painter for a rows x cols grid drawn at cell
// pixels per cell. A zero line colour disables outlines.
func NewGridPainter(rows, cols, cell int, line color.RGBA) *GridPainter {
	if cell <= 0 {
		cell = 1
	}
	gp := &GridPainter{rows: rows, cols: cols, cell: cell, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	if line.A != 0 && cell > 2 {
		w, h := cols*cell, rows*cell
		lineBuf := make([]byte, 4*w*h)
		fillGridLinesRGBA(lineBuf, w, h, cell, line)
		gp.lines = ebiten.NewImage(w, h)
		gp.lines.WritePixels(lineBuf)
	}
	return gp
}

// Blit uploads the snapshot into the painter image and draws it to dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, snap life.Snapshot, on, off color.Color) {
	size := snap.Size()
	if size.Rows != gp.rows || size.Cols != gp.cols {
		return
	}
	fillCellsRGBA(gp.buf, snap.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cell), float64(gp.cell))
	dst.DrawImage(gp.img, op)
	if gp.lines != nil {
		dst.DrawImage(gp.lines, nil)
	}
}

// Size returns the drawn size in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.cols * gp.cell, gp.rows * gp.cell }
