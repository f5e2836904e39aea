package telemetry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"boatescape/internal/sim"
)

func TestRecorder_CountsSessionEvents(t *testing.T) {
	r, err := NewWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	s := sim.NewSession(sim.DefaultConfig(), 9)
	r.Attach(s.Events)
	s.StartNewGame()

	s.Tick(sim.Intents{Fire: true}, 0.016)

	s.Events.Emit(sim.Event{Type: sim.EventShotFired})
	s.Events.Emit(sim.Event{Type: sim.EventEnemyDestroyed, PlayerOwned: true})
	s.Events.Emit(sim.Event{Type: sim.EventPlayerHit})
	s.Events.Emit(sim.Event{Type: sim.EventPlayerHit})

	got := r.Totals()
	assert.Equal(t, int64(1), got.PlayerShots)
	assert.Equal(t, int64(1), got.EnemyShots)
	assert.Equal(t, int64(1), got.Kills)
	assert.Equal(t, int64(2), got.PlayerHits)
}

func TestRecorder_Sample(t *testing.T) {
	r, err := NewWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	s := sim.NewSession(sim.DefaultConfig(), 9)
	s.StartNewGame()
	s.Projectiles.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, true, false)
	s.Projectiles.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, false, false)
	s.Mountains.Advance(10, s.Player.Position)

	r.Sample(s)

	got := r.Totals()
	assert.Equal(t, int64(2), got.Projectiles)
	assert.Equal(t, int64(s.Mountains.Len()), got.Mountains)
	assert.Zero(t, got.Enemies)
}

func TestNew_GlobalMeter(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.NotNil(t, r)
}
