package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"boatescape/internal/sim"
)

// AudibleRange is the distance at which an enemy gun fades to its quietest.
const AudibleRange = 80.0

// Effects turns session events into sound, particles and camera shake.
type Effects struct {
	session   *sim.Session
	particles *ParticleSystem
	cam       *Camera
	log       zerolog.Logger
}

func NewEffects(s *sim.Session, ps *ParticleSystem, cam *Camera, log zerolog.Logger) *Effects {
	return &Effects{session: s, particles: ps, cam: cam, log: log}
}

// Attach subscribes the effects to the session's event bus.
func (fx *Effects) Attach(bus *sim.EventBus) {
	bus.Subscribe(sim.EventShotFired, fx.onShot)
	bus.Subscribe(sim.EventEnemyDestroyed, fx.onSunk)
	bus.Subscribe(sim.EventPlayerHit, fx.onHit)
	bus.Subscribe(sim.EventShotImpact, fx.onImpact)
	bus.Subscribe(sim.EventGameStarted, fx.onStart)
	bus.Subscribe(sim.EventGameOver, fx.onGameOver)
	bus.Subscribe(sim.EventMenuSelect, func(sim.Event) { PlaySound(SoundMenuSelect) })
	bus.Subscribe(sim.EventPaused, func(sim.Event) { PlaySound(SoundPause) })
}

// distanceGain falls off linearly with distance from the player.
func (fx *Effects) distanceGain(pos mgl64.Vec3) float64 {
	d := sim.PlanarDist(pos, fx.session.Player.Position)
	return clampF(1-d/AudibleRange, 0.15, 1)
}

func (fx *Effects) onShot(e sim.Event) {
	var dir mgl64.Vec3
	if e.PlayerOwned {
		dir = fx.session.Player.Front
		PlaySound(SoundCannon)
		fx.cam.AddShake(0.15, 0.08)
	} else {
		dir = fx.session.Player.Position.Sub(e.Pos)
		PlaySoundWithGain(SoundEnemyCannon, fx.distanceGain(e.Pos))
	}
	fx.particles.SpawnMuzzle(e.Pos.X(), e.Pos.Z(), dir.X(), dir.Z())
}

func (fx *Effects) onSunk(e sim.Event) {
	fx.particles.SpawnExplosion(e.Pos.X(), e.Pos.Z(), Palette.EnemyHull, 1)
	PlayExplosionSound(ExplosionRadius * fx.distanceGain(e.Pos))
	fx.cam.AddShake(0.8, 0.3)
	fx.log.Debug().Int("score", e.Value).Float64("x", e.Pos.X()).Float64("z", e.Pos.Z()).Msg("enemy sunk")
}

func (fx *Effects) onHit(e sim.Event) {
	hull := BoatColors[clampSkin(fx.session.Player.BoatSkin())][0]
	fx.particles.SpawnExplosion(e.Pos.X(), e.Pos.Z(), hull, HitExplosionRadius/ExplosionRadius)
	PlaySound(SoundHurt)
	fx.cam.AddShake(1.5, 0.35)
	fx.log.Debug().Int("hp", e.Value).Msg("player hit")
}

func (fx *Effects) onImpact(e sim.Event) {
	fx.particles.SpawnSplash(e.Pos.X(), e.Pos.Z(), 0.6)
	PlaySoundWithGain(SoundSplash, fx.distanceGain(e.Pos))
}

func (fx *Effects) onStart(sim.Event) {
	fx.particles.Clear()
	fx.cam.X, fx.cam.Y = 0, 0
	StartGameMusic(fx.session.Difficulty)
}

func (fx *Effects) onGameOver(e sim.Event) {
	fx.particles.SpawnExplosion(e.Pos.X(), e.Pos.Z(), Palette.FireMid, 1.6)
	PlayExplosionSound(ExplosionRadius * 3)
	PlaySound(SoundGameOver)
	fx.cam.AddShake(2.5, 0.6)
	StartMenuMusic()
}
