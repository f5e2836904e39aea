package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleSystem_OverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(3, 1)
	for i := range 5 {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	require.Len(t, ps.P, 3)
	assert.Equal(t, 3.0, ps.P[0].X)
	assert.Equal(t, 4.0, ps.P[1].X)
	assert.Equal(t, 2.0, ps.P[2].X)
}

func TestParticleSystem_ExpiryAndCull(t *testing.T) {
	ps := NewParticleSystem(0, 1)
	ps.Add(Particle{MaxLife: 0.5, Kind: ParticleFoam})
	ps.Add(Particle{X: ParticleCullDistance + 1, MaxLife: 10, Kind: ParticleFoam})
	ps.Add(Particle{MaxLife: 10, Kind: ParticleFoam})

	ps.Update(0.6, 0, 0)
	assert.Len(t, ps.P, 1)
}

func TestParticleSystem_SprayLandsAndDebrisFloats(t *testing.T) {
	ps := NewParticleSystem(0, 1)
	ps.Add(Particle{VZ: 1, MaxLife: 10, Kind: ParticleSpray})
	ps.Add(Particle{VZ: 1, MaxLife: 10, Kind: ParticleDebris})

	for range 60 {
		ps.Update(1.0/30, 0, 0)
	}
	require.Len(t, ps.P, 1)
	assert.Equal(t, ParticleDebris, ps.P[0].Kind)
	assert.True(t, ps.P[0].Floating)
	assert.Zero(t, ps.P[0].Z)
}

func TestParticleSystem_RenderSplitsGlow(t *testing.T) {
	ps := NewParticleSystem(0, 1)
	ps.SpawnExplosion(5, 5, Palette.EnemyHull, 1)
	require.NotEmpty(t, ps.P)

	ps.Update(0.01, 0, 0)
	glow, norm := ps.ParticleRenderData(nil, nil, NewView(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, false))
	assert.NotEmpty(t, glow)
	assert.NotEmpty(t, norm)
	assert.Zero(t, len(glow)%8)
	assert.Zero(t, len(norm)%8)
}

func TestParticleSystem_SpawnIsDeterministic(t *testing.T) {
	a := NewParticleSystem(0, 9)
	b := NewParticleSystem(0, 9)
	a.SpawnSplash(1, 2, 1)
	b.SpawnSplash(1, 2, 1)
	assert.Equal(t, a.P, b.P)
}
