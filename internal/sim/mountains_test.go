package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyMountains() MountainConfig {
	cfg := DefaultConfig().Mountains
	cfg.ScaleMin = 0.1
	cfg.ScaleMax = 0.1
	return cfg
}

func TestMountainField_PopulationBound(t *testing.T) {
	mf := NewMountainField(DefaultConfig().Mountains, NewRand(42))
	mf.Initialize()

	player := mgl64.Vec3{0, -1, 0}
	for i := range 200 {
		mf.Advance(0.37, player)
		require.LessOrEqual(t, mf.Len(), 6, "frame %d", i)
	}
	mf.Advance(100, player)
	assert.LessOrEqual(t, mf.Len(), 6)
	assert.Positive(t, mf.Len())
}

func TestMountainField_SpawnShape(t *testing.T) {
	cfg := DefaultConfig().Mountains
	mf := NewMountainField(cfg, NewRand(5))
	mf.Initialize()
	player := mgl64.Vec3{12, -1, -8}
	mf.Advance(10, player)

	for _, m := range mf.Mountains() {
		assert.True(t, m.Active)
		assert.Equal(t, cfg.WaterLevel, m.Position.Y())
		assert.GreaterOrEqual(t, m.Scale, cfg.ScaleMin)
		assert.LessOrEqual(t, m.Scale, cfg.ScaleMax)
		assert.InDelta(t, cfg.BaseRadius*m.Scale, m.Radius, 1e-9)
		assert.GreaterOrEqual(t, m.Variant, 0)
		assert.Less(t, m.Variant, cfg.Variants)

		d := PlanarDist(m.Position, player)
		assert.GreaterOrEqual(t, d, cfg.SpawnRadiusMin)
		assert.LessOrEqual(t, d, cfg.SpawnRadiusMax)
	}
}

func TestMountainField_NoOverlapOnPlacement(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4, 5, 6, 7, 8} {
		mf := NewMountainField(DefaultConfig().Mountains, NewRand(seed))
		mf.Initialize()
		mf.Advance(10, mgl64.Vec3{})

		ms := mf.Mountains()
		for i := range ms {
			for j := i + 1; j < len(ms); j++ {
				d := PlanarDist(ms[i].Position, ms[j].Position)
				assert.GreaterOrEqual(t, d, ms[i].Radius+0.9*ms[j].Radius, "seed %d pair %d/%d", seed, i, j)
			}
		}
	}
}

func TestMountainField_DrainLoop(t *testing.T) {
	mf := NewMountainField(tinyMountains(), NewRand(11))
	mf.Initialize()

	// Timer goes to -1 and re-arms by 0.5 until it is positive: three spawns.
	mf.Advance(1.0, mgl64.Vec3{})
	assert.Equal(t, 3, mf.Len())

	mf.Advance(0.25, mgl64.Vec3{})
	assert.Equal(t, 3, mf.Len())
	mf.Advance(0.25, mgl64.Vec3{})
	assert.Equal(t, 4, mf.Len())
}

func TestMountainField_ZeroDtIsIdempotent(t *testing.T) {
	mf := NewMountainField(tinyMountains(), NewRand(3))
	mf.Initialize()
	player := mgl64.Vec3{0, -1, 0}
	mf.Advance(10, player)
	require.Equal(t, 6, mf.Len())

	before := append([]Mountain(nil), mf.Mountains()...)
	mf.Advance(0, player)
	mf.Advance(0, player)
	assert.Equal(t, before, mf.Mountains())
}

func TestMountainField_RepositionAhead(t *testing.T) {
	cfg := tinyMountains()
	mf := NewMountainField(cfg, NewRand(8))
	mf.Initialize()
	mf.Advance(10, mgl64.Vec3{})
	require.Equal(t, 6, mf.Len())

	far := mgl64.Vec3{1000, -1, 1000}
	mf.Advance(0, far)
	require.Equal(t, 6, mf.Len(), "mountains are moved, never removed")
	for _, m := range mf.Mountains() {
		d := PlanarDist(m.Position, far)
		assert.GreaterOrEqual(t, d, cfg.RespawnAheadMin)
		assert.LessOrEqual(t, d, cfg.RespawnAheadMax)
	}
}

func TestMountainField_RepositionExhaustionKeepsPosition(t *testing.T) {
	cfg := tinyMountains()
	cfg.PlaceTries = 0
	mf := NewMountainField(cfg, NewRand(8))
	mf.mountains = append(mf.mountains, Mountain{Position: mgl64.Vec3{0, -1, 0}, Scale: 1, Radius: 3, Active: true})

	mf.Advance(0, mgl64.Vec3{1000, -1, 0})
	require.Equal(t, 1, mf.Len())
	assert.Equal(t, mgl64.Vec3{0, -1, 0}, mf.Mountains()[0].Position)
	assert.InDelta(t, 0.3, mf.Mountains()[0].Radius, 1e-9, "scale is re-rolled even when placement fails")
}

func TestMountainField_CollisionTest(t *testing.T) {
	mf := NewMountainField(DefaultConfig().Mountains, NewRand(1))
	mf.mountains = append(mf.mountains,
		Mountain{Position: mgl64.Vec3{0, -1, 0}, Radius: 10, Active: true},
		Mountain{Position: mgl64.Vec3{100, -1, 0}, Radius: 10, Active: false},
	)

	assert.True(t, mf.CollisionTest(mgl64.Vec3{10.5, 50, 0}, 1), "height is ignored")
	assert.False(t, mf.CollisionTest(mgl64.Vec3{11, 0, 0}, 1), "touching is not overlapping")
	assert.False(t, mf.CollisionTest(mgl64.Vec3{100, -1, 0}, 1), "inactive mountains never collide")
}

func TestMountainField_InitializeClears(t *testing.T) {
	mf := NewMountainField(tinyMountains(), NewRand(2))
	mf.Advance(10, mgl64.Vec3{})
	require.Positive(t, mf.Len())
	mf.Initialize()
	assert.Zero(t, mf.Len())
}
