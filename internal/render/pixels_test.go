package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}, {R: 9}})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py, scale int
		x, y          int
		ok            bool
	}{
		{0, 0, 3, 0, 0, true},
		{8, 5, 3, 2, 1, true},
		{29, 29, 3, 9, 9, true},
		{30, 0, 3, 0, 0, false},
		{-1, 4, 3, 0, 0, false},
		{4, 4, 0, 4, 4, true},
	}
	for _, tc := range cases {
		x, y, ok := CellAt(tc.px, tc.py, tc.scale, 10, 10)
		if !assert.Equal(t, tc.ok, ok, "CellAt(%d, %d, %d)", tc.px, tc.py, tc.scale) || !ok {
			continue
		}
		assert.Equal(t, [2]int{tc.x, tc.y}, [2]int{x, y}, "CellAt(%d, %d, %d)", tc.px, tc.py, tc.scale)
	}
}
