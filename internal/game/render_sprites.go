//go:build !android

package game

import "github.com/go-gl/gl/v4.1-core/gl"

// drawPoints streams buf through program p.
// buf format: [x, y, size, r, g, b, a, rotation] * N (8 floats per sprite).
func (r *Renderer) drawPoints(p pointProgram, buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(p.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(p.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawSprites renders square point sprites.
// additive: true = glow blend, false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int, additive bool) {
	r.drawPoints(r.sprite, buf, cam, fbW, fbH, additive)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.glow, buf, cam, fbW, fbH, true)
}

// DrawHulls renders rotated boat hulls.
func (r *Renderer) DrawHulls(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.hull, buf, cam, fbW, fbH, false)
}

// DrawDiscs renders shaded circles; a positive rotation slot draws a ring.
func (r *Renderer) DrawDiscs(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPoints(r.disc, buf, cam, fbW, fbH, false)
}
