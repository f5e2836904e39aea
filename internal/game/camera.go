package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"boatescape/internal/sim"
)

type Camera struct {
	X, Y float64 // view space, camera centre
	Zoom float64 // screen pixels per world unit

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := sim.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Follow eases the camera centre toward (tx, ty) and the zoom toward zoom.
func (c *Camera) Follow(tx, ty, zoom, dt float64) {
	k := 1 - math.Exp(-CameraFollow*dt)
	c.X += (tx - c.X) * k
	c.Y += (ty - c.Y) * k
	c.Zoom += (zoom - c.Zoom) * k
	c.Clamp()
}

func (c *Camera) Clamp() {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

// View maps the world's X/Z plane onto the sprite plane, centred on the
// player. Sprite y grows downward, so +Z is up on screen.
type View struct {
	Origin    mgl64.Vec3
	Yaw       float64 // radians from +Z toward +X
	HeadingUp bool
}

// NewView builds a view around the boat at origin facing front.
func NewView(origin, front mgl64.Vec3, headingUp bool) View {
	return View{Origin: origin, Yaw: math.Atan2(front.X(), front.Z()), HeadingUp: headingUp}
}

// Project returns the sprite-plane position of world point (x, z).
func (v View) Project(x, z float64) (float32, float32) {
	rx := x - v.Origin.X()
	rz := z - v.Origin.Z()
	if v.HeadingUp {
		s, c := math.Sincos(v.Yaw)
		rx, rz = rx*c-rz*s, rx*s+rz*c
	}
	return float32(rx), float32(-rz)
}

// ProjectVec is Project for a world position.
func (v View) ProjectVec(p mgl64.Vec3) (float32, float32) {
	return v.Project(p.X(), p.Z())
}

// SpriteRotation converts a world yaw (radians from +Z toward +X) into the
// rotation the hull shader expects.
func (v View) SpriteRotation(yaw float64) float32 {
	if v.HeadingUp {
		yaw -= v.Yaw
	}
	return float32(-wrapAngle(yaw))
}
