package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Band is a closed radius range around a centre point.
type Band struct {
	Min, Max float64
}

// TryPlace rejection-samples a point on the ring band around center.
// Each attempt draws an angle and then a radius; the point's height is pinned
// to y. The first point for which blocked returns false is returned. When all
// maxAttempts are rejected the second result is false and the caller keeps
// whatever it had.
func TryPlace(src Source, center mgl64.Vec3, band Band, y float64, maxAttempts int, blocked func(mgl64.Vec3) bool) (mgl64.Vec3, bool) {
	for range maxAttempts {
		ang := rangeF(src, 0, 2*math.Pi)
		r := rangeF(src, band.Min, band.Max)
		p := mgl64.Vec3{
			center.X() + math.Cos(ang)*r,
			y,
			center.Z() + math.Sin(ang)*r,
		}
		if blocked == nil || !blocked(p) {
			return p, true
		}
	}
	return mgl64.Vec3{}, false
}
