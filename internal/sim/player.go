package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Intents are the per-frame player commands sampled by a frontend.
type Intents struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Boost     bool
	Fire      bool

	FirstPerson bool // camera toggles, edge or level triggered
	ThirdPerson bool
	ToggleDebug bool // edge triggered
	Pause       bool

	// LookYaw is a mouse-look heading change in degrees, applied only in first person.
	LookYaw float64
}

// Player is the player's boat.
type Player struct {
	cfg PlayerConfig
	log zerolog.Logger

	Position mgl64.Vec3
	Heading  float64 // degrees
	Front    mgl64.Vec3
	HP       Health

	speed         float64
	boostSpeed    float64
	shootCooldown float64
	gracePeriod   float64
	boatSkin      int
}

func NewPlayer(cfg PlayerConfig) *Player {
	p := &Player{cfg: cfg, log: zerolog.Nop()}
	p.Reset()
	return p
}

func (p *Player) SetLogger(l zerolog.Logger) { p.log = l }

// Reset restores session-start defaults, including the initial grace period.
func (p *Player) Reset() {
	p.Position = p.cfg.Start
	p.Heading = 0
	p.Front = mgl64.Vec3{0, 0, 1}
	p.HP = NewHealth(p.cfg.MaxHealth)
	p.speed = p.cfg.Speed
	p.boostSpeed = p.cfg.BoostSpeed
	p.shootCooldown = 0
	p.gracePeriod = p.cfg.InitialGrace
	p.boatSkin = BoatThousandSunny
}

func (p *Player) BoatSkin() int { return p.boatSkin }
func (p *Player) SetBoatSkin(idx int) { p.boatSkin = idx }
func (p *Player) GracePeriod() float64 { return p.gracePeriod }
func (p *Player) ShootCooldown() float64 { return p.shootCooldown }
func (p *Player) Invulnerable() bool { return p.gracePeriod > 0 }

// SetPhysicsMode switches between normal and crazy speed.
func (p *Player) SetPhysicsMode(crazy bool) {
	if crazy {
		p.speed = p.cfg.Speed * p.cfg.CrazyFactor
		p.boostSpeed = p.cfg.BoostSpeed * p.cfg.CrazyFactor
		return
	}
	p.speed = p.cfg.Speed
	p.boostSpeed = p.cfg.BoostSpeed
}

// AlignToWater floats the Going Merry hull on the given water height.
func (p *Player) AlignToWater(waterY float64) {
	if p.boatSkin == BoatGoingMerry {
		p.Position[1] = waterY + p.cfg.MerryWaterOffset
	}
}

// AdjustRotation turns the boat by offset degrees, keeping the heading in [-180, 180].
func (p *Player) AdjustRotation(offset float64) {
	p.Heading += offset
	if p.Heading > 180 {
		p.Heading -= 360
	}
	if p.Heading < -180 {
		p.Heading += 360
	}
}

// forward returns the boat's travel direction. The Going Merry model is
// authored along +X, so its forward is the default one turned by 90 degrees.
func (p *Player) forward() mgl64.Vec3 {
	if p.boatSkin == BoatGoingMerry {
		rad := mgl64.DegToRad(p.Heading)
		return mgl64.Vec3{math.Cos(rad), 0, -math.Sin(rad)}
	}
	return headingVec(p.Heading)
}

// Update ticks the weapon cooldown and grace period.
func (p *Player) Update(dt float64) {
	if p.shootCooldown > 0 {
		p.shootCooldown -= dt
	}
	if p.gracePeriod > 0 {
		p.gracePeriod -= dt
	}
}

// ProcessIntents moves, turns and fires the boat for one frame. Movement into a
// mountain is dropped entirely; there is no sliding along the shore.
func (p *Player) ProcessIntents(in Intents, dt float64, shots ProjectileSink, terrain Terrain) {
	cur := p.speed
	if in.Boost {
		cur = p.boostSpeed
	}

	fwd := p.forward()
	proposed := p.Position
	if in.Forward {
		proposed = proposed.Add(fwd.Mul(cur * dt))
	}
	if in.Backward {
		proposed = proposed.Sub(fwd.Mul(cur * p.cfg.ReverseFactor * dt))
	}
	if terrain == nil || !terrain.CollisionTest(proposed, p.cfg.HullRadius) {
		p.Position = proposed
	}

	if in.TurnLeft {
		p.Heading += p.cfg.TurnRate * dt
	}
	if in.TurnRight {
		p.Heading -= p.cfg.TurnRate * dt
	}
	p.Front = p.forward()

	if in.Fire && p.shootCooldown <= 0 && shots != nil {
		p.fire(shots)
	}
}

func (p *Player) fire(shots ProjectileSink) {
	if p.boatSkin == BoatGoingMerry {
		yaw := mgl64.DegToRad(p.Heading)
		s := p.cfg.MerryScale
		ship := mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
			Mul4(mgl64.HomogRotate3DY(yaw)).
			Mul4(mgl64.Scale3D(s, s, s))
		center := ship.Mul4x1(mgl64.Vec4{1, 0, -0.875, 1}).Vec3()
		spawn := center.Add(p.Front.Mul(p.cfg.MuzzleOffset)).Add(mgl64.Vec3{0, p.cfg.MerryMuzzleLift, 0})
		shots.Enqueue(spawn, p.Front.Mul(p.cfg.ShotSpeed), true, false)
		p.shootCooldown = p.cfg.MerryShotCooldown
		return
	}

	drop := 0.0
	if p.boatSkin == BoatBigMom {
		drop = p.cfg.BigMomMuzzleDrop
	}
	dir := headingVec(p.Heading)
	muzzle := p.Position.Add(dir.Mul(p.cfg.MuzzleOffset)).Add(mgl64.Vec3{0, drop, 0})
	shots.Enqueue(muzzle, dir.Mul(p.cfg.ShotSpeed), true, true)
	p.shootCooldown = p.cfg.ShotCooldown
}

// TakeDamage applies a hit unless the grace period is running. It reports
// whether health changed.
func (p *Player) TakeDamage(amount float64) bool {
	if p.gracePeriod > 0 {
		p.log.Debug().Float64("grace", p.gracePeriod).Msg("player is invincible, no damage taken")
		return false
	}
	p.HP.Damage(amount)
	p.gracePeriod = p.cfg.HitGrace
	p.log.Info().Float64("damage", amount).Float64("health", p.HP.Current).Msg("player took damage")
	return true
}
