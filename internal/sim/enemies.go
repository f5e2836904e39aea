package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// EnemyBoat is a hostile gunboat that closes in on the player and fires.
type EnemyBoat struct {
	Position         mgl64.Vec3
	Heading          float64 // degrees, same convention as the player
	Speed            float64
	Active           bool
	ShootCooldown    float64
	MaxShootCooldown float64
}

// EnemyFleet spawns enemies in a band around the player, steers them, lets
// them shoot and culls the ones left far behind.
type EnemyFleet struct {
	cfg        EnemyConfig
	rng        Source
	log        zerolog.Logger
	enemies    []EnemyBoat
	spawnTimer float64
	difficulty Difficulty
	maxEnemies int
	batch      int
}

func NewEnemyFleet(cfg EnemyConfig, rng Source) *EnemyFleet {
	ef := &EnemyFleet{cfg: cfg, rng: rng, log: zerolog.Nop()}
	ef.maxEnemies, ef.batch = cfg.ForDifficulty(Easy)
	return ef
}

func (ef *EnemyFleet) SetLogger(l zerolog.Logger) { ef.log = l }

// Initialize clears the fleet and arms the first batch InitialSpawnDelay
// seconds out.
func (ef *EnemyFleet) Initialize(d Difficulty) {
	ef.difficulty = d
	clear(ef.enemies)
	ef.enemies = ef.enemies[:0]
	ef.maxEnemies, ef.batch = ef.cfg.ForDifficulty(d)
	ef.spawnTimer = -ef.cfg.InitialSpawnDelay
}

// Enemies returns the live fleet. Rendering reads it; the collision pass may
// clear Active on entries.
func (ef *EnemyFleet) Enemies() []EnemyBoat { return ef.enemies }

func (ef *EnemyFleet) Len() int { return len(ef.enemies) }

// MaxEnemies is the population cap for the current difficulty.
func (ef *EnemyFleet) MaxEnemies() int { return ef.maxEnemies }

// ActiveCount counts enemies that have not been sunk.
func (ef *EnemyFleet) ActiveCount() int {
	n := 0
	for i := range ef.enemies {
		if ef.enemies[i].Active {
			n++
		}
	}
	return n
}

// Advance culls, spawns and then runs every enemy for one frame.
func (ef *EnemyFleet) Advance(dt float64, player mgl64.Vec3, shots ProjectileSink, terrain Terrain) {
	ef.cull(player)

	ef.spawnTimer += dt
	if ef.spawnTimer >= ef.cfg.SpawnInterval && len(ef.enemies) < ef.maxEnemies {
		for i := 0; i < ef.batch && len(ef.enemies) < ef.maxEnemies; i++ {
			ef.spawn(player, terrain)
		}
		ef.spawnTimer = 0
	}

	for i := range ef.enemies {
		e := &ef.enemies[i]
		if !e.Active {
			continue
		}
		ef.think(e, dt, player, shots, terrain)
	}
}

func (ef *EnemyFleet) think(e *EnemyBoat, dt float64, player mgl64.Vec3, shots ProjectileSink, terrain Terrain) {
	if e.ShootCooldown > 0 {
		e.ShootCooldown -= dt
	}

	dir := planar(player.Sub(e.Position))
	dist := dir.Len()
	var toward mgl64.Vec3
	if dist > 0 {
		toward = dir.Mul(1 / dist)
	}

	old := e.Position
	switch {
	case dist > ef.cfg.DesiredDistance+ef.cfg.DistanceBuffer:
		e.Position = e.Position.Add(toward.Mul(e.Speed * dt))
	case dist < ef.cfg.DesiredDistance:
		e.Position = e.Position.Sub(toward.Mul(e.Speed * ef.cfg.RetreatFactor * dt))
	}
	if terrain != nil && terrain.CollisionTest(e.Position, ef.cfg.HullRadius) {
		e.Position = old
	}

	if dist > 0.1 {
		e.Heading = mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
	}

	if dist <= ef.cfg.FireRange && dist > ef.cfg.DesiredDistance && e.ShootCooldown <= 0 && shots != nil {
		muzzle := e.Position.Add(headingVec(e.Heading).Mul(ef.cfg.MuzzleOffset))
		shots.Enqueue(muzzle, toward.Mul(ef.cfg.ShotSpeed), false, true)
		e.ShootCooldown = e.MaxShootCooldown
	}
}

// cull drops enemies that drifted beyond the play area around the player.
func (ef *EnemyFleet) cull(player mgl64.Vec3) {
	limit := ef.cfg.SpawnRadiusMax + ef.cfg.CullMargin
	limit2 := limit * limit
	kept := ef.enemies[:0]
	for _, e := range ef.enemies {
		if planarDist2(e.Position, player) <= limit2 {
			kept = append(kept, e)
		}
	}
	clear(ef.enemies[len(kept):])
	ef.enemies = kept
}

// spawn tries to add one enemy; it gives up silently when every attempt lands
// on a mountain or too close to another enemy.
func (ef *EnemyFleet) spawn(player mgl64.Vec3, terrain Terrain) {
	spacing2 := ef.cfg.MinSpacing * ef.cfg.MinSpacing
	band := Band{Min: ef.cfg.SpawnRadiusMin, Max: ef.cfg.SpawnRadiusMax}
	pos, ok := TryPlace(ef.rng, player, band, player.Y()+ef.cfg.SpawnDepth, ef.cfg.SpawnTries, func(p mgl64.Vec3) bool {
		if terrain != nil && terrain.CollisionTest(p, ef.cfg.HullRadius) {
			return true
		}
		for i := range ef.enemies {
			o := &ef.enemies[i]
			if o.Active && o.Position.Sub(p).LenSqr() < spacing2 {
				return true
			}
		}
		return false
	})
	if !ok {
		ef.log.Trace().Int("enemies", len(ef.enemies)).Msg("enemy spawn slot skipped")
		return
	}
	ef.enemies = append(ef.enemies, EnemyBoat{
		Position:         pos,
		Speed:            ef.cfg.Speed,
		Active:           true,
		MaxShootCooldown: ef.cfg.ShootCooldown,
	})
}
