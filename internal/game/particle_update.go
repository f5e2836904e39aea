package game

import "math"

const (
	particleGravity   = 30.0
	particleAirDrag   = 1.65
	particleWaterDrag = 2.8
)

// particleDecays holds exponential drag factors precomputed once per frame.
// Avoids calling math.Exp() inside the per-particle hot loop.
type particleDecays struct {
	foamXY   float64 // exp(-2.4 * dt)
	smokeXY  float64 // exp(-1.2 * dt)
	smokeZ   float64 // exp(-0.8 * dt)
	fireXY   float64 // exp(-2.2 * dt)
	fireZ    float64 // exp(-1.0 * dt)
	debrisXY float64 // exp(-particleAirDrag * dt)
	floatXY  float64 // exp(-particleWaterDrag * dt)
}

func computeDecays(dt float64) particleDecays {
	return particleDecays{
		foamXY:   math.Exp(-2.4 * dt),
		smokeXY:  math.Exp(-1.2 * dt),
		smokeZ:   math.Exp(-0.8 * dt),
		fireXY:   math.Exp(-2.2 * dt),
		fireZ:    math.Exp(-1.0 * dt),
		debrisXY: math.Exp(-particleAirDrag * dt),
		floatXY:  math.Exp(-particleWaterDrag * dt),
	}
}

// Update advances particles and drops those further than
// ParticleCullDistance from (cx, cy).
func (ps *ParticleSystem) Update(dt, cx, cy float64) {
	if dt <= 0 {
		return
	}

	d := computeDecays(dt)
	cull2 := ParticleCullDistance * ParticleCullDistance

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		// Decay bounce pulse.
		if p.Bounce > 0 {
			p.Bounce -= 8.0 * dt
			if p.Bounce < 0 {
				p.Bounce = 0
			}
		}

		p.Life += dt
		dx, dy := p.X-cx, p.Y-cy
		if p.Life >= p.MaxLife || dx*dx+dy*dy > cull2 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleFoam:
			p.VX *= d.foamXY
			p.VY *= d.foamXY
			p.X += p.VX * dt
			p.Y += p.VY * dt
		case ParticleSmoke:
			ps.updateSmoke(p, dt, d.smokeXY, d.smokeZ)
		case ParticleFire:
			ps.updateFire(p, dt, d.fireXY, d.fireZ)
		default: // Debris, Spray, Glow
			if ps.updateBallistic(p, i, dt, d) {
				continue // removed
			}
		}

		i++
	}
}

func (ps *ParticleSystem) updateSmoke(p *Particle, dt, decayXY, decayZ float64) {
	p.VX *= decayXY
	p.VY *= decayXY
	p.VZ *= decayZ
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Z += p.VZ * dt
}

func (ps *ParticleSystem) updateFire(p *Particle, dt, decayXY, decayZ float64) {
	p.VX *= decayXY
	p.VY *= decayXY
	p.VZ *= decayZ
	p.VZ += 12.0 * dt

	// Sideways jitter.
	j := float64(int(hash2D(ps.seed^0xF17E, int(p.X*4), int(p.Y*4))>>56)-128) / 128.0
	p.VX += j * 3.0 * dt
	p.VY -= j * 2.0 * dt

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Z += p.VZ * dt
}

// updateBallistic handles Debris, Spray and Glow. Spray and glow vanish when
// they reach the water; debris floats and drifts to a stop.
// Returns true if the particle was removed (caller should not increment i).
func (ps *ParticleSystem) updateBallistic(p *Particle, idx int, dt float64, d particleDecays) bool {
	if p.Floating {
		p.VX *= d.floatXY
		p.VY *= d.floatXY
		p.X += p.VX * dt
		p.Y += p.VY * dt
		return false
	}

	p.VZ -= particleGravity * dt
	p.VX *= d.debrisXY
	p.VY *= d.debrisXY
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Z += p.VZ * dt

	if p.Z > 0 {
		return false
	}

	if p.Kind != ParticleDebris {
		ps.P[idx] = ps.P[len(ps.P)-1]
		ps.P = ps.P[:len(ps.P)-1]
		return true
	}
	p.Z = 0
	p.VZ = 0
	p.Floating = true
	p.Bounce = 1.0
	return false
}
