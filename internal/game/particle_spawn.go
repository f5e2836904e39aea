package game

import (
	"math"

	"boatescape/internal/sim"
)

// spawnRand derives a deterministic stream for an effect at (x, y).
func (ps *ParticleSystem) spawnRand(salt uint64, x, y float64) *sim.Rand {
	return sim.NewRand(hash2D(ps.seed^salt, int(x*8), int(y*8)) ^ uint64(len(ps.P)))
}

// SpawnExplosion throws wreckage, fire and smoke from a sinking hull.
func (ps *ParticleSystem) SpawnExplosion(x, y float64, baseCol RGB, intensity float64) {
	if intensity <= 0 {
		return
	}

	r := ps.spawnRand(0xA5A5A5A5, x, y)

	// Debris.
	for range int(45 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(6, 22) * intensity
		col := baseCol.Add(r.Range(-14, 14), r.Range(-14, 14), r.Range(-14, 14))
		ps.Add(Particle{
			X: x + r.RangeF(-1, 1), Y: y + r.RangeF(-1, 1),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0, 2), VZ: r.RangeF(8, 24) * intensity,
			Size: r.RangeF(0.35, 0.8), MaxLife: r.RangeF(2.0, 4.0),
			Col: col, Kind: ParticleDebris,
		})
	}

	// Fire.
	for range int(60 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(2, 8)
		ps.Add(Particle{
			X: x + r.RangeF(-1, 1), Y: y + r.RangeF(-1, 1),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0, 2), VZ: r.RangeF(3, 10),
			Size: 0.5 + r.RangeF(0, 0.6), MaxLife: r.RangeF(0.2, 0.5),
			Col: Palette.FireHot, Kind: ParticleFire,
		})
	}

	// Glow.
	for range int(10 * intensity) {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(10, 30) * intensity
		ps.Add(Particle{
			X: x + r.RangeF(-0.5, 0.5), Y: y + r.RangeF(-0.5, 0.5),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0, 3), VZ: r.RangeF(5, 15) * intensity,
			Size: 2.0, MaxLife: r.RangeF(0.12, 0.32),
			Col: Palette.Glow, Kind: ParticleGlow,
		})
	}

	// Smoke.
	for range int(36*intensity) + 12 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(1, 5)
		ps.Add(Particle{
			X: x + r.RangeF(-1.5, 1.5), Y: y + r.RangeF(-1.5, 1.5),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0, 3), VZ: r.RangeF(2, 6),
			Size: 1.2, MaxLife: r.RangeF(0.8, 1.8),
			Col: Palette.Smoke, Kind: ParticleSmoke,
		})
	}

	ps.SpawnSplash(x, y, intensity)
}

// SpawnSplash raises a column of spray and a foam ring on the water.
func (ps *ParticleSystem) SpawnSplash(x, y, intensity float64) {
	if intensity <= 0 {
		return
	}
	r := ps.spawnRand(0x5B1A54, x, y)

	for range int(24*intensity) + 4 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(1, 6) * intensity
		ps.Add(Particle{
			X: x + r.RangeF(-0.3, 0.3), Y: y + r.RangeF(-0.3, 0.3),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: 0, VZ: r.RangeF(6, 16) * intensity,
			Size: r.RangeF(0.3, 0.6), MaxLife: r.RangeF(0.6, 1.2),
			Col: Palette.Foam, Kind: ParticleSpray,
		})
	}
	for i := range 10 {
		ang := float64(i) / 10 * math.Pi * 2
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * 3 * intensity, VY: math.Sin(ang) * 3 * intensity,
			Size: 0.8, MaxLife: 1.2,
			Col: Palette.Foam, Kind: ParticleFoam,
		})
	}
}

// SpawnMuzzle puffs cannon smoke and a flash at a gun port firing along (dirX, dirY).
func (ps *ParticleSystem) SpawnMuzzle(x, y, dirX, dirY float64) {
	r := ps.spawnRand(0xC4770, x, y)
	ang0 := math.Atan2(dirY, dirX)

	ps.Add(Particle{
		X: x, Y: y, Z: 1,
		Size: 2.2, MaxLife: 0.08,
		Col: Palette.Glow, Kind: ParticleGlow,
	})
	for range 8 {
		ang := ang0 + r.RangeF(-0.5, 0.5)
		spd := r.RangeF(2, 7)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Z: r.RangeF(0.5, 1.5), VZ: r.RangeF(0.5, 2),
			Size: 0.7, MaxLife: r.RangeF(0.4, 0.9),
			Col: Palette.Smoke.Add(40, 40, 40), Kind: ParticleSmoke,
		})
	}
}
