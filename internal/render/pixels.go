package render

import "image/color"

// fillCellsRGBA converts cell states into one RGBA pixel per cell in buf.
func fillCellsRGBA(buf []byte, cells []bool, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, alive := range cells {
		base := i * 4
		if alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillGridLinesRGBA draws one-pixel cell outlines every cell pixels into a
// w*h RGBA buffer and leaves everything else transparent.
func fillGridLinesRGBA(buf []byte, w, h, cell int, line color.RGBA) {
	clear(buf)
	if cell <= 1 {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%cell != 0 && y%cell != 0 {
				continue
			}
			base := (y*w + x) * 4
			buf[base+0] = line.R
			buf[base+1] = line.G
			buf[base+2] = line.B
			buf[base+3] = line.A
		}
	}
}
