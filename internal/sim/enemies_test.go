package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shot struct {
	origin, velocity mgl64.Vec3
	playerOwned      bool
	clamp            bool
}

// recordingSink captures enqueued projectiles.
type recordingSink struct {
	shots []shot
}

func (s *recordingSink) Enqueue(origin, velocity mgl64.Vec3, playerOwned, clampToWater bool) {
	s.shots = append(s.shots, shot{origin, velocity, playerOwned, clampToWater})
}

// wallTerrain collides with everything when solid is set.
type wallTerrain struct {
	solid bool
}

func (w wallTerrain) CollisionTest(mgl64.Vec3, float64) bool { return w.solid }

func stillFleet() EnemyConfig {
	cfg := DefaultConfig().Enemies
	cfg.InitialSpawnDelay = 0
	cfg.Speed = 0
	return cfg
}

func TestEnemyFleet_FirstBatchEasy(t *testing.T) {
	ef := NewEnemyFleet(stillFleet(), NewRand(2024))
	field := NewMountainField(DefaultConfig().Mountains, NewRand(1))
	ef.Initialize(Easy)

	ef.Advance(1.1, mgl64.Vec3{0, -1, 0}, nil, field)

	enemies := ef.Enemies()
	require.Len(t, enemies, 10)
	for i, e := range enemies {
		d := PlanarDist(e.Position, mgl64.Vec3{})
		assert.GreaterOrEqual(t, d, 60.0, "enemy %d", i)
		assert.LessOrEqual(t, d, 100.0, "enemy %d", i)
		assert.True(t, e.Active)
		assert.Zero(t, e.ShootCooldown)
		assert.Equal(t, -2.0, e.Position.Y())
		for j := i + 1; j < len(enemies); j++ {
			assert.GreaterOrEqual(t, e.Position.Sub(enemies[j].Position).Len(), 5.0, "pair %d/%d", i, j)
		}
	}
}

func TestEnemyFleet_InitialDelay(t *testing.T) {
	cfg := DefaultConfig().Enemies
	cfg.Speed = 0
	ef := NewEnemyFleet(cfg, NewRand(3))
	ef.Initialize(Easy)
	player := mgl64.Vec3{0, -1, 0}

	ef.Advance(1.1, player, nil, nil)
	for range 2 {
		ef.Advance(1.0, player, nil, nil)
		require.Zero(t, ef.Len())
	}
	ef.Advance(1.0, player, nil, nil)
	assert.Equal(t, 10, ef.Len())
}

func TestEnemyFleet_DifficultyCaps(t *testing.T) {
	ef := NewEnemyFleet(stillFleet(), NewRand(4))
	ef.Initialize(Hard)
	assert.Equal(t, 200, ef.MaxEnemies())
	ef.Advance(1, mgl64.Vec3{}, nil, nil)
	assert.Equal(t, 20, ef.Len())

	ef.Initialize(Easy)
	assert.Equal(t, 100, ef.MaxEnemies())
	assert.Zero(t, ef.Len())
}

func TestEnemyFleet_PopulationBound(t *testing.T) {
	cfg := stillFleet()
	cfg.EasyCap = 15
	ef := NewEnemyFleet(cfg, NewRand(5))
	ef.Initialize(Easy)

	for i := range 10 {
		ef.Advance(1, mgl64.Vec3{}, nil, nil)
		require.LessOrEqual(t, ef.Len(), 15, "frame %d", i)
	}
	assert.Equal(t, 15, ef.Len())
}

func TestEnemyFleet_SpawnRespectsTerrain(t *testing.T) {
	ef := NewEnemyFleet(stillFleet(), NewRand(6))
	ef.Initialize(Easy)
	ef.Advance(1, mgl64.Vec3{}, nil, wallTerrain{solid: true})
	assert.Zero(t, ef.Len(), "every slot is skipped when the terrain blocks all attempts")
}

func TestEnemyFleet_Cull(t *testing.T) {
	ef := NewEnemyFleet(stillFleet(), NewRand(7))
	ef.Initialize(Easy)
	ef.spawnTimer = -100
	ef.enemies = append(ef.enemies,
		EnemyBoat{Position: mgl64.Vec3{119, -2, 0}, Active: true},
		EnemyBoat{Position: mgl64.Vec3{121, -2, 0}, Active: true},
		EnemyBoat{Position: mgl64.Vec3{0, -2, -130}, Active: false},
		EnemyBoat{Position: mgl64.Vec3{0, 40, 110}, Active: true},
	)

	player := mgl64.Vec3{0, -1, 0}
	ef.Advance(0, player, nil, nil)
	require.Equal(t, 2, ef.Len())
	assert.Equal(t, 119.0, ef.Enemies()[0].Position.X())
	assert.Equal(t, 110.0, ef.Enemies()[1].Position.Z(), "cull distance ignores height")

	ef.Advance(0, player, nil, nil)
	assert.Equal(t, 2, ef.Len())
}

func TestEnemyFleet_ApproachAndFire(t *testing.T) {
	ef := NewEnemyFleet(DefaultConfig().Enemies, NewRand(8))
	ef.Initialize(Easy)
	ef.enemies = append(ef.enemies, EnemyBoat{
		Position:         mgl64.Vec3{20, -2, 0},
		Speed:            2,
		Active:           true,
		MaxShootCooldown: 2,
	})
	sink := &recordingSink{}

	ef.Advance(1, mgl64.Vec3{0, -1, 0}, sink, nil)

	e := ef.Enemies()[0]
	assert.InDelta(t, 18, e.Position.X(), 1e-9)
	assert.InDelta(t, -90, e.Heading, 1e-9)
	assert.Equal(t, 2.0, e.ShootCooldown)

	require.Len(t, sink.shots, 1)
	s := sink.shots[0]
	assert.InDelta(t, 16, s.origin.X(), 1e-9)
	assert.InDelta(t, 0, s.origin.Z(), 1e-9)
	assert.InDelta(t, -8, s.velocity.X(), 1e-9)
	assert.InDelta(t, 0, s.velocity.Z(), 1e-9)
	assert.False(t, s.playerOwned)
	assert.True(t, s.clamp)

	ef.Advance(1, mgl64.Vec3{0, -1, 0}, sink, nil)
	assert.Len(t, sink.shots, 1, "cooldown holds the second shot")
}

func TestEnemyFleet_RetreatAndHold(t *testing.T) {
	ef := NewEnemyFleet(DefaultConfig().Enemies, NewRand(9))
	ef.Initialize(Easy)
	ef.enemies = append(ef.enemies,
		EnemyBoat{Position: mgl64.Vec3{3, -2, 0}, Speed: 2, Active: true, MaxShootCooldown: 2},
		EnemyBoat{Position: mgl64.Vec3{0, -2, 6}, Speed: 2, Active: true, MaxShootCooldown: 2},
	)
	sink := &recordingSink{}

	ef.Advance(1, mgl64.Vec3{0, -1, 0}, sink, nil)

	assert.InDelta(t, 4, ef.Enemies()[0].Position.X(), 1e-9, "too close backs off at half speed")
	assert.InDelta(t, 6, ef.Enemies()[1].Position.Z(), 1e-9, "inside the buffer it holds")
	assert.Len(t, sink.shots, 1, "only the holding boat is outside the desired distance")
}

func TestEnemyFleet_TerrainRevertsMove(t *testing.T) {
	ef := NewEnemyFleet(DefaultConfig().Enemies, NewRand(10))
	ef.Initialize(Easy)
	ef.enemies = append(ef.enemies, EnemyBoat{Position: mgl64.Vec3{50, -2, 0}, Speed: 2, Active: true})

	ef.Advance(1, mgl64.Vec3{}, nil, wallTerrain{solid: true})
	assert.Equal(t, mgl64.Vec3{50, -2, 0}, ef.Enemies()[0].Position)
}

func TestEnemyFleet_SunkEnemiesStayIdle(t *testing.T) {
	ef := NewEnemyFleet(DefaultConfig().Enemies, NewRand(11))
	ef.Initialize(Easy)
	ef.enemies = append(ef.enemies, EnemyBoat{Position: mgl64.Vec3{20, -2, 0}, Speed: 2})
	sink := &recordingSink{}

	ef.Advance(1, mgl64.Vec3{}, sink, nil)
	assert.Equal(t, mgl64.Vec3{20, -2, 0}, ef.Enemies()[0].Position)
	assert.Empty(t, sink.shots)
	assert.Zero(t, ef.ActiveCount())
}
