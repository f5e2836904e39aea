package tty

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestViewport_NorthUp(t *testing.T) {
	vp := NewViewport(80, 24, mgl64.Vec3{100, 0, 50}, mgl64.Vec3{0, 0, 1}, false)

	col, row, ok := vp.Cell(mgl64.Vec3{100, 0, 50})
	assert.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 12, row)

	col, row, ok = vp.Cell(mgl64.Vec3{110, 0, 70})
	assert.True(t, ok)
	assert.Equal(t, 45, col, "east is right")
	assert.Equal(t, 7, row, "north is up, rows cover twice the distance")

	_, _, ok = vp.Cell(mgl64.Vec3{300, 0, 50})
	assert.False(t, ok)
}

func TestViewport_HeadingUp(t *testing.T) {
	vp := NewViewport(80, 24, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, true)
	assert.Equal(t, BowScale, vp.Scale)

	col, row, ok := vp.Cell(mgl64.Vec3{10, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 7, row, "the bow points up the screen")

	col, _, _ = vp.Cell(mgl64.Vec3{0, 0, -10})
	assert.Equal(t, 50, col, "starboard is right")
}

func TestViewport_WorldInvertsCell(t *testing.T) {
	for _, headingUp := range []bool{false, true} {
		vp := NewViewport(80, 24, mgl64.Vec3{5, 0, -3}, mgl64.Vec3{0.6, 0, 0.8}, headingUp)
		for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 5}} {
			col, row, ok := vp.Cell(vp.World(c[0], c[1]))
			assert.True(t, ok)
			assert.Equal(t, c[0], col)
			assert.Equal(t, c[1], row)
		}
	}
}

func TestViewport_Arrow(t *testing.T) {
	north := NewViewport(80, 24, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, false)
	assert.Equal(t, '↑', north.Arrow(0))
	assert.Equal(t, '→', north.Arrow(math.Pi/2))
	assert.Equal(t, '↓', north.Arrow(-math.Pi))
	assert.Equal(t, '↙', north.Arrow(-3*math.Pi/4))

	bow := NewViewport(80, 24, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, true)
	assert.Equal(t, '↑', bow.Arrow(math.Pi/2))
	assert.Equal(t, '←', bow.Arrow(0))
}
