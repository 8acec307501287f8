// Package geometry rasterises inclusion shapes into integer pixel offsets.
package geometry

import (
	"fmt"
	"image"
	"strings"
)

// Shape enumerates the supported inclusion outlines.
type Shape uint8

const (
	Square Shape = iota
	Circle
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	default:
		return "square"
	}
}

// ParseShape accepts "square" or "circle" (case-insensitive).
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "rectangle":
		return Square, nil
	case "circle":
		return Circle, nil
	}
	return Square, fmt.Errorf("geometry: unknown shape %q", s)
}

// Rectangle returns every pixel of a w*h rectangle whose top left corner is (x, y).
func Rectangle(x, y, w, h int) []image.Point {
	if w <= 0 || h <= 0 {
		return nil
	}
	pts := make([]image.Point, 0, w*h)
	for xx := 0; xx < w; xx++ {
		for yy := 0; yy < h; yy++ {
			pts = append(pts, image.Point{X: x + xx, Y: y + yy})
		}
	}
	return pts
}

// FilledCircle returns every pixel within radius r of (cx, cy).
func FilledCircle(cx, cy, r int) []image.Point {
	if r < 0 {
		return nil
	}
	r2 := r * r
	var pts []image.Point
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			pts = append(pts, image.Point{X: cx + dx, Y: cy + dy})
		}
	}
	return pts
}

// Pixels returns the offsets of a shape of the given size centred on (x, y).
// For squares size is the side length, for circles it is the diameter.
func Pixels(shape Shape, x, y, size int) []image.Point {
	if size <= 0 {
		return nil
	}
	switch shape {
	case Circle:
		return FilledCircle(x, y, size/2)
	default:
		half := size / 2
		return Rectangle(x-half, y-half, size, size)
	}
}
