package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileSet_Lifetime(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, true, false)

	ps.Advance(4.9, nil)
	require.Equal(t, 1, ps.Len())
	assert.InDelta(t, 4.9, ps.Projectiles()[0].Position.X(), 1e-9)

	ps.Advance(0.2, nil)
	assert.Zero(t, ps.Len())
}

func TestProjectileSet_ClampToWater(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{1, 7, 2}, mgl64.Vec3{}, false, true)
	ps.Enqueue(mgl64.Vec3{1, 7, 2}, mgl64.Vec3{}, true, false)

	p := ps.Projectiles()
	require.Len(t, p, 2)
	assert.InDelta(t, -0.45, p[0].Position.Y(), 1e-9)
	assert.Equal(t, 1.0, p[0].Position.X())
	assert.Equal(t, 7.0, p[1].Position.Y())
	assert.True(t, p[0].Active)
	assert.Equal(t, 5.0, p[0].Lifetime)
}

func TestProjectileSet_EnemyTrail(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{0, 0, 10}, false, false)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{0, 0, 10}, true, false)

	for range 12 {
		ps.Advance(0.1, nil)
	}

	enemy, player := ps.Projectiles()[0], ps.Projectiles()[1]
	require.Len(t, enemy.Trail, 8)
	assert.Equal(t, enemy.Position, enemy.Trail[7], "newest snapshot last")
	assert.InDelta(t, 5, enemy.Trail[0].Z(), 1e-6, "oldest snapshots dropped")
	assert.Empty(t, player.Trail)
}

func TestProjectileSet_TerrainHit(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, true, false)

	ps.Advance(0.016, wallTerrain{})
	require.Equal(t, 1, ps.Len())
	ps.Advance(0.016, wallTerrain{solid: true})
	assert.Zero(t, ps.Len())

	var impacts []mgl64.Vec3
	ps.DrainImpacts(func(p mgl64.Vec3) { impacts = append(impacts, p) })
	require.Len(t, impacts, 1)
	assert.InDelta(t, 0.032, impacts[0].X(), 1e-9)

	ps.DrainImpacts(func(mgl64.Vec3) { t.Fatal("impacts not drained") })
}

func TestProjectileSet_ExpiryIsNotAnImpact(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, false, false)
	ps.Advance(6, wallTerrain{})
	require.Zero(t, ps.Len())

	n := 0
	ps.DrainImpacts(func(mgl64.Vec3) { n++ })
	assert.Zero(t, n)
}

func TestProjectileSet_RemoveInactiveKeepsOrder(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	for i := range 5 {
		ps.Enqueue(mgl64.Vec3{float64(i), 0, 0}, mgl64.Vec3{}, true, false)
	}
	p := ps.Projectiles()
	p[1].Active = false
	p[2].Active = false
	p[4].Active = false

	ps.RemoveInactive()

	got := ps.Projectiles()
	require.Len(t, got, 2)
	assert.Equal(t, 0.0, got[0].Position.X())
	assert.Equal(t, 3.0, got[1].Position.X())
}

func TestProjectileSet_Clear(t *testing.T) {
	ps := NewProjectileSet(DefaultConfig().Projectiles)
	ps.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, true, false)
	ps.Clear()
	assert.Zero(t, ps.Len())
}
