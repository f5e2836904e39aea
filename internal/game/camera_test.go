package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestView_NorthUp(t *testing.T) {
	v := NewView(mgl64.Vec3{10, -1, 20}, mgl64.Vec3{1, 0, 0}, false)

	x, y := v.Project(10, 20)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = v.Project(13, 24)
	assert.InDelta(t, 3, x, 1e-6)
	assert.InDelta(t, -4, y, 1e-6, "+Z is up the screen")
}

func TestView_HeadingUpPutsBowUp(t *testing.T) {
	for _, front := range []mgl64.Vec3{{1, 0, 0}, {0, 0, -1}, {-0.6, 0, 0.8}} {
		v := NewView(mgl64.Vec3{}, front, true)
		x, y := v.ProjectVec(front.Mul(5))
		assert.InDelta(t, 0, x, 1e-6, "front %v", front)
		assert.InDelta(t, -5, y, 1e-6, "front %v", front)
		assert.InDelta(t, 0, v.SpriteRotation(v.Yaw), 1e-6)
	}
}

func TestView_SpriteRotation(t *testing.T) {
	v := NewView(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, false)
	assert.InDelta(t, -math.Pi/2, v.SpriteRotation(math.Pi/2), 1e-6)
	assert.InDelta(t, math.Pi/2, v.SpriteRotation(-math.Pi/2+4*math.Pi), 1e-6)
}

func TestCamera_FollowAndClamp(t *testing.T) {
	c := Camera{Zoom: DefaultZoom}
	for range 200 {
		c.Follow(10, -5, 100, 1.0/60)
	}
	assert.InDelta(t, 10, c.X, 1e-3)
	assert.InDelta(t, -5, c.Y, 1e-3)
	assert.Equal(t, MaxZoom, c.Zoom)
}

func TestCamera_ShakeDecays(t *testing.T) {
	c := Camera{Zoom: DefaultZoom}
	c.AddShake(2, 0.2)
	c.AddShake(1, 0.1)
	assert.Equal(t, 2.0, c.ShakeIntensity)
	assert.Equal(t, 0.2, c.ShakeTimer)

	c.UpdateShake(0.05, 7)
	assert.LessOrEqual(t, math.Abs(c.ShakeX), 2.0)

	for range 10 {
		c.UpdateShake(0.05, 7)
	}
	x, y := c.EffectivePos()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, c.ShakeIntensity)
}
