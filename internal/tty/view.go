package tty

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Zoom levels in columns per world unit. Terminal cells are about twice as
// tall as they are wide, so rows cover twice the distance of columns.
const (
	ChaseScale = 0.5
	BowScale   = 1.0
)

// arrows are indexed by screen direction in 45 degree steps, clockwise from up.
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Viewport projects the sea plane onto a grid of terminal cells centred on Origin.
type Viewport struct {
	W, H      int
	Scale     float64
	Origin    mgl64.Vec3
	Yaw       float64 // radians, used when HeadingUp
	HeadingUp bool
}

// NewViewport centres a w×h grid on the player. front picks the yaw in the
// same convention as headings: atan2(x, z), zero facing +Z.
func NewViewport(w, h int, origin, front mgl64.Vec3, headingUp bool) Viewport {
	scale := ChaseScale
	if headingUp {
		scale = BowScale
	}
	return Viewport{
		W: w, H: h,
		Scale:     scale,
		Origin:    origin,
		Yaw:       math.Atan2(front.X(), front.Z()),
		HeadingUp: headingUp,
	}
}

// local returns p relative to the origin with +Z up the screen.
func (vp Viewport) local(p mgl64.Vec3) (x, z float64) {
	x, z = p.X()-vp.Origin.X(), p.Z()-vp.Origin.Z()
	if vp.HeadingUp {
		s, c := math.Sincos(vp.Yaw)
		x, z = x*c-z*s, x*s+z*c
	}
	return x, z
}

// Cell maps a world position to a cell; ok is false off screen.
func (vp Viewport) Cell(p mgl64.Vec3) (col, row int, ok bool) {
	x, z := vp.local(p)
	col = vp.W/2 + int(math.Round(x*vp.Scale))
	row = vp.H/2 - int(math.Round(z*vp.Scale/2))
	return col, row, col >= 0 && col < vp.W && row >= 0 && row < vp.H
}

// Radii returns a world radius as half-extents in columns and rows.
func (vp Viewport) Radii(r float64) (cols, rows float64) {
	return r * vp.Scale, r * vp.Scale / 2
}

// World returns the world position at the centre of a cell.
func (vp Viewport) World(col, row int) mgl64.Vec3 {
	x := float64(col-vp.W/2) / vp.Scale
	z := float64(vp.H/2-row) * 2 / vp.Scale
	if vp.HeadingUp {
		s, c := math.Sincos(-vp.Yaw)
		x, z = x*c-z*s, x*s+z*c
	}
	return mgl64.Vec3{vp.Origin.X() + x, vp.Origin.Y(), vp.Origin.Z() + z}
}

// Arrow picks the glyph pointing along a world yaw as it appears on screen.
func (vp Viewport) Arrow(yaw float64) rune {
	if vp.HeadingUp {
		yaw -= vp.Yaw
	}
	sector := int(math.Round(yaw/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return arrows[sector]
}
