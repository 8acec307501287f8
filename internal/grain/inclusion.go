package grain

import (
	"image"

	"grain-ca/internal/core"
	"grain-ca/internal/geometry"
)

// SetInclusions turns every in-bounds point into an inclusion and returns how
// many cells were placed. Out-of-bounds points are dropped.
func (f *Field) SetInclusions(pts []image.Point) int {
	n := 0
	for _, p := range pts {
		c := f.Cell(p.X, p.Y)
		if c == nil || c.state == Inclusion {
			continue
		}
		c.SetState(Inclusion)
		c.commit()
		n++
	}
	return n
}

// AddInclusion places one shape of the given size centred on at.
func (f *Field) AddInclusion(at image.Point, size int, shape geometry.Shape) int {
	return f.SetInclusions(geometry.Pixels(shape, at.X, at.Y, size))
}

// RandomInclusions places count inclusions. On an empty field they land
// anywhere; otherwise each one is centred near a random boundary point,
// jittered by up to size/2 on both axes.
func (f *Field) RandomInclusions(src core.Source, count, size int, shape geometry.Shape) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	placed := 0
	if f.IsEmpty() {
		for i := 0; i < count; i++ {
			at := image.Point{X: src.IntN(f.W), Y: src.IntN(f.H)}
			placed += f.AddInclusion(at, size, shape)
		}
		return placed
	}
	points := f.BoundaryPoints()
	if len(points) == 0 {
		return 0
	}
	half := size / 2
	for i := 0; i < count; i++ {
		at := points[src.IntN(len(points))]
		if half > 0 {
			at.X += src.IntN(2*half+1) - half
			at.Y += src.IntN(2*half+1) - half
		}
		at.X, at.Y = f.Clamp(at.X, at.Y)
		placed += f.AddInclusion(at, size, shape)
	}
	return placed
}

// AddBoundaryInclusions turns boundary points into inclusions. With no states
// given every boundary point is used, otherwise only those of the listed
// grains. Selected cells of the listed grains are released back to Alive.
func (f *Field) AddBoundaryInclusions(states ...int) int {
	if len(states) == 0 {
		return f.SetInclusions(f.BoundaryPoints())
	}
	var pts []image.Point
	for _, s := range states {
		f.DeselectState(s)
		pts = append(pts, f.CellsOfStateBoundaryPoints(s)...)
	}
	return f.SetInclusions(pts)
}
