package core

import "image"

// Grid describes the extent of a 2D lattice addressed in row-major order.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamping to at least 1x1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Len reports the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coord converts a linear index back to (x, y).
func (g Grid) Coord(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clamp pulls (x, y) onto the nearest in-bounds cell.
func (g Grid) Clamp(x, y int) (int, int) {
	x = min(max(x, 0), g.W-1)
	y = min(max(y, 0), g.H-1)
	return x, y
}

// Points enumerates every coordinate in raster order, x outer and y inner.
func (g Grid) Points() []image.Point {
	pts := make([]image.Point, 0, g.Len())
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			pts = append(pts, image.Point{X: x, Y: y})
		}
	}
	return pts
}

// Shuffled returns every coordinate in a random order drawn from src.
func (g Grid) Shuffled(src Source) []image.Point {
	pts := g.Points()
	src.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })
	return pts
}
