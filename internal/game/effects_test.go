package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boatescape/internal/sim"
)

func TestEffects_EventsDriveParticlesAndShake(t *testing.T) {
	s := sim.NewSession(sim.DefaultConfig(), 5)
	ps := NewParticleSystem(0, 5)
	cam := &Camera{Zoom: DefaultZoom, X: 4, Y: 4}
	NewEffects(s, ps, cam, zerolog.Nop()).Attach(s.Events)

	ps.Add(Particle{MaxLife: 1})
	s.StartNewGame()
	assert.Empty(t, ps.P, "new game clears leftovers")
	assert.Zero(t, cam.X)

	s.Events.Emit(sim.Event{Type: sim.EventShotImpact, Pos: s.Player.Position})
	require.NotEmpty(t, ps.P)
	assert.Zero(t, cam.ShakeIntensity)

	n := len(ps.P)
	s.Events.Emit(sim.Event{Type: sim.EventEnemyDestroyed, Pos: s.Player.Position, Value: 100})
	assert.Greater(t, len(ps.P), n)
	assert.Equal(t, 0.8, cam.ShakeIntensity)

	s.Events.Emit(sim.Event{Type: sim.EventPlayerHit, Pos: s.Player.Position})
	assert.Equal(t, 1.5, cam.ShakeIntensity)
}

func TestEffects_DistanceGain(t *testing.T) {
	s := sim.NewSession(sim.DefaultConfig(), 5)
	s.StartNewGame()
	fx := NewEffects(s, NewParticleSystem(0, 1), &Camera{}, zerolog.Nop())

	assert.Equal(t, 1.0, fx.distanceGain(s.Player.Position))
	far := s.Player.Position
	far[0] += 10 * AudibleRange
	assert.Equal(t, 0.15, fx.distanceGain(far))
}
