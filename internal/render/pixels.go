package render

import "image/color"

// FillRGBA copies cell colors into buf as packed RGBA bytes. Cells beyond
// the buffer are ignored.
func FillRGBA(buf []byte, colors []color.RGBA) {
	n := min(len(colors), len(buf)/4)
	for i := 0; i < n; i++ {
		c := colors[i]
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// CellAt maps a screen position to the cell under it for a view drawn at
// scale. ok is false outside the w*h grid.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
