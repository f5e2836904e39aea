package sim

import "github.com/go-gl/mathgl/mgl64"

// ProjectileSink accepts newly fired projectiles.
type ProjectileSink interface {
	Enqueue(origin, velocity mgl64.Vec3, playerOwned, clampToWater bool)
}

// Projectile is a cannonball in flight.
type Projectile struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Active      bool
	Lifetime    float64
	PlayerOwned bool
	Trail       []mgl64.Vec3 // recent positions of enemy shots, oldest first

	trailTimer float64
}

// ProjectileSet owns every projectile in flight.
type ProjectileSet struct {
	cfg         ProjectileConfig
	projectiles []Projectile
	impacts     []mgl64.Vec3 // terrain hits since the last DrainImpacts
}

func NewProjectileSet(cfg ProjectileConfig) *ProjectileSet {
	return &ProjectileSet{cfg: cfg}
}

// Enqueue adds a projectile. With clampToWater the origin height is replaced by
// a fixed clearance above the water plane.
func (ps *ProjectileSet) Enqueue(origin, velocity mgl64.Vec3, playerOwned, clampToWater bool) {
	if clampToWater {
		origin[1] = ps.cfg.WaterPlane + ps.cfg.WaterClearance
	}
	ps.projectiles = append(ps.projectiles, Projectile{
		Position:    origin,
		Velocity:    velocity,
		Active:      true,
		Lifetime:    ps.cfg.Lifetime,
		PlayerOwned: playerOwned,
	})
}

// Advance moves every projectile and drops the expired ones and the ones that
// ran into terrain.
func (ps *ProjectileSet) Advance(dt float64, terrain Terrain) {
	for i := range ps.projectiles {
		p := &ps.projectiles[i]
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Lifetime -= dt

		if !p.PlayerOwned {
			p.trailTimer += dt
			if p.trailTimer >= ps.cfg.TrailInterval {
				p.Trail = append(p.Trail, p.Position)
				p.trailTimer = 0
				if len(p.Trail) > ps.cfg.TrailLength {
					n := copy(p.Trail, p.Trail[1:])
					p.Trail = p.Trail[:n]
				}
			}
		}

		if terrain != nil && terrain.CollisionTest(p.Position, ps.cfg.TerrainRadius) {
			p.Active = false
			ps.impacts = append(ps.impacts, p.Position)
		} else if p.Lifetime <= 0 {
			p.Active = false
		}
	}
	ps.RemoveInactive()
}

// RemoveInactive compacts the set in place, keeping order.
func (ps *ProjectileSet) RemoveInactive() {
	kept := ps.projectiles[:0]
	for _, p := range ps.projectiles {
		if p.Active {
			kept = append(kept, p)
		}
	}
	clear(ps.projectiles[len(kept):])
	ps.projectiles = kept
}

// Clear empties the set.
func (ps *ProjectileSet) Clear() {
	clear(ps.projectiles)
	ps.projectiles = ps.projectiles[:0]
	ps.impacts = ps.impacts[:0]
}

// DrainImpacts calls fn for every terrain hit recorded by Advance and forgets them.
func (ps *ProjectileSet) DrainImpacts(fn func(pos mgl64.Vec3)) {
	for _, p := range ps.impacts {
		fn(p)
	}
	ps.impacts = ps.impacts[:0]
}

// Projectiles returns the live set. The collision pass may flip Active on
// entries and then call RemoveInactive; nothing else should write to it.
func (ps *ProjectileSet) Projectiles() []Projectile { return ps.projectiles }

func (ps *ProjectileSet) Len() int { return len(ps.projectiles) }
