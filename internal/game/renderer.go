//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// pointProgram is a point-sprite program sharing particleVertSrc.
type pointProgram struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uTint       int32 // -1 when the fragment shader has no tint
}

func newPointProgram(fragSrc string) (pointProgram, error) {
	id, err := linkProgram(particleVertSrc, fragSrc)
	if err != nil {
		return pointProgram{}, err
	}
	p := pointProgram{id: id}
	gl.UseProgram(id)
	p.uCamera = gl.GetUniformLocation(id, gl.Str("uCamera\x00"))
	p.uZoom = gl.GetUniformLocation(id, gl.Str("uZoom\x00"))
	p.uResolution = gl.GetUniformLocation(id, gl.Str("uResolution\x00"))
	p.uTint = gl.GetUniformLocation(id, gl.Str("uTint\x00"))
	if p.uTint >= 0 {
		gl.Uniform3f(p.uTint, 1.0, 1.0, 1.0)
	}
	return p, nil
}

type Renderer struct {
	// Point-sprite programs, all drawn from spriteVAO.
	sprite pointProgram // square particles
	glow   pointProgram // additive radial light
	hull   pointProgram // rotated boat hulls
	disc   pointProgram // mountains, cannonballs, collision rings

	spriteVAO uint32
	spriteVBO uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	progs := []struct {
		dst  *pointProgram
		src  string
		name string
	}{
		{&r.sprite, particleFragSrc, "sprite"},
		{&r.glow, glowFragSrc, "glow"},
		{&r.hull, hullFragSrc, "hull"},
		{&r.disc, discFragSrc, "disc"},
	}
	for _, p := range progs {
		prog, err := newPointProgram(p.src)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", p.name, err)
		}
		*p.dst = prog
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sprite.id, r.glow.id, r.hull.id, r.disc.id, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to the sea colour.
func (r *Renderer) BeginFrame(sea RGB, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := sea.floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.ActiveTexture(gl.TEXTURE0)
}

// SetTint multiplies every non-glow sprite by the given colour (party mode).
func (r *Renderer) SetTint(tintR, tintG, tintB float32) {
	for _, p := range []pointProgram{r.sprite, r.hull, r.disc} {
		gl.UseProgram(p.id)
		gl.Uniform3f(p.uTint, tintR, tintG, tintB)
	}
}
