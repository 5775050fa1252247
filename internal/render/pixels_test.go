package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	buf := make([]byte, 3*4)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 200, G: 210, B: 220, A: 255}
	fillCellsRGBA(buf, []bool{true, false, true}, on, off)

	want := []byte{10, 20, 30, 255, 200, 210, 220, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillGridLinesRGBA(t *testing.T) {
	const w, h, cell = 8, 4, 4
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 7
	}
	line := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	fillGridLinesRGBA(buf, w, h, cell, line)

	px := func(x, y int) []byte {
		base := (y*w + x) * 4
		return buf[base : base+4]
	}
	onLine := []byte{1, 2, 3, 4}
	empty := []byte{0, 0, 0, 0}
	if !slices.Equal(px(0, 2), onLine) || !slices.Equal(px(4, 3), onLine) || !slices.Equal(px(2, 0), onLine) {
		t.Fatal("cell border pixel not drawn")
	}
	if !slices.Equal(px(1, 1), empty) || !slices.Equal(px(6, 3), empty) {
		t.Fatal("cell interior pixel not transparent")
	}

	fillGridLinesRGBA(buf, w, h, 1, line)
	if !slices.Equal(px(0, 0), empty) {
		t.Fatal("cell size 1 should draw no lines")
	}
}
