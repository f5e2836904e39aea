package game

import "math"

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleFire
	ParticleGlow
	ParticleSmoke
	ParticleSpray
	ParticleFoam
)

// Particle lives on the world's X/Z plane: X, Y here are world X and Z,
// and Z is the height above the water.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Z, VZ  float64

	Size   float64
	Bounce float64 // short-lived pulse on impact [0..1]

	Life    float64 // negative = delayed start
	MaxLife float64

	Col      RGB
	Kind     ParticleKind
	Floating bool // debris resting on the water
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32, v View) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := clampF(p.Life/p.MaxLife, 0, 1)

		col := p.Col
		a := 1.0 - t

		switch p.Kind {
		case ParticleDebris:
			a = 1.0
			if p.Floating {
				a = 1.0 - t*t
			}
		case ParticleSmoke:
			a = (1.0 - t) * min(t/0.18, 1) * 0.85
		case ParticleGlow:
			a = (1.0 - t) * 1.15
		case ParticleFire:
			a = (1.0 - t) * min(t/0.08, 1) * 1.25
			if t < 0.5 {
				col = lerpRGB(Palette.FireHot, Palette.FireMid, t*2.0)
			} else {
				col = lerpRGB(Palette.FireMid, Palette.FireCool, (t-0.5)*2.0)
			}
		case ParticleSpray:
			a = (1.0 - t) * 0.9
		case ParticleFoam:
			a = (1.0 - t) * 0.6
		}
		if a <= 0 {
			continue
		}

		// Airborne bits read larger; smoke and foam spread as they age.
		visSize := p.Size + clampF(p.Z*0.05, 0, 2) + 0.75*max(p.Bounce, 0)
		switch p.Kind {
		case ParticleSmoke:
			visSize *= 1.0 + t*1.6
		case ParticleFoam:
			visSize *= 1.0 + t*2.5
		}

		rc, gc, bc := col.floats()
		ac := float32(clampF(a, 0, 1))

		// Additive: pre-multiply color by alpha.
		glow := p.Kind == ParticleGlow || p.Kind == ParticleFire
		if glow {
			rc *= ac
			gc *= ac
			bc *= ac
		}

		sx, sy := v.Project(p.X, p.Y)
		sx = float32(math.Round(float64(sx)*4) / 4)
		sy = float32(math.Round(float64(sy)*4) / 4)
		sz := float32(visSize)

		if glow {
			glowBuf = append(glowBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		} else {
			normBuf = append(normBuf, sx, sy, sz, rc, gc, bc, ac, 0)
		}
	}
	return glowBuf, normBuf
}
