package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Source is the random stream placement draws from.
// *Rand satisfies it; tests substitute scripted sources.
type Source interface {
	Float64() float64
}

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: splitmix64(seed)}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns an int in [min, max].
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	return rangeF(r, min, max)
}

// rangeF draws uniformly from [min, max) of any Source.
func rangeF(src Source, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*src.Float64()
}

// pickVariant maps a uniform draw onto [0, n), clamping the top edge.
func pickVariant(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return min(n-1, int(src.Float64()*float64(n)))
}

// planarDist2 is the squared X/Z distance between two points.
func planarDist2(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return dx*dx + dz*dz
}

// PlanarDist is the X/Z distance between two points, ignoring height.
func PlanarDist(a, b mgl64.Vec3) float64 {
	return math.Sqrt(planarDist2(a, b))
}

// planar drops the height component.
func planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// headingVec returns the unit forward vector for a yaw in degrees,
// measured from +Z toward +X.
func headingVec(deg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
