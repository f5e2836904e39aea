package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Terrain answers circle-overlap queries against static obstacles.
type Terrain interface {
	CollisionTest(p mgl64.Vec3, radius float64) bool
}

// Mountain is a static circular obstacle standing in the water.
type Mountain struct {
	Position mgl64.Vec3
	Scale    float64
	Radius   float64 // BaseRadius * Scale
	Variant  int     // texture index, cosmetic
	Active   bool
}

// MountainField keeps a small set of mountains around the player. Mountains are
// never destroyed: once they fall far behind they are moved somewhere ahead.
type MountainField struct {
	cfg        MountainConfig
	rng        Source
	log        zerolog.Logger
	mountains  []Mountain
	spawnTimer float64
}

func NewMountainField(cfg MountainConfig, rng Source) *MountainField {
	return &MountainField{
		cfg:       cfg,
		rng:       rng,
		log:       zerolog.Nop(),
		mountains: make([]Mountain, 0, cfg.MaxMountains),
	}
}

func (mf *MountainField) SetLogger(l zerolog.Logger) { mf.log = l }

// Initialize removes every mountain and resets the spawn timer.
func (mf *MountainField) Initialize() {
	mf.mountains = mf.mountains[:0]
	mf.spawnTimer = 0
}

// Mountains returns the live set. Callers must not modify it.
func (mf *MountainField) Mountains() []Mountain { return mf.mountains }

func (mf *MountainField) Len() int { return len(mf.mountains) }

// Advance fills the field up to its cap and recycles far-away mountains.
func (mf *MountainField) Advance(dt float64, player mgl64.Vec3) {
	mf.spawnTimer -= dt
	for len(mf.mountains) < mf.cfg.MaxMountains && mf.spawnTimer <= 0 {
		mf.spawn(player)
		mf.spawnTimer += mf.cfg.SpawnInterval
		if mf.cfg.SpawnInterval <= 0 {
			// A zero interval would never re-arm; stop after one spawn per tick.
			break
		}
	}

	limit := mf.cfg.RespawnDistance * mf.cfg.RespawnDistance
	for i := range mf.mountains {
		m := &mf.mountains[i]
		if !m.Active {
			continue
		}
		if planarDist2(m.Position, player) > limit {
			mf.reposition(m, player)
		}
	}
}

// CollisionTest reports whether a circle at p overlaps any active mountain.
func (mf *MountainField) CollisionTest(p mgl64.Vec3, radius float64) bool {
	for i := range mf.mountains {
		m := &mf.mountains[i]
		if !m.Active {
			continue
		}
		rr := radius + m.Radius
		if planarDist2(p, m.Position) < rr*rr {
			return true
		}
	}
	return false
}

// reroll picks a fresh variant and scale for m.
func (mf *MountainField) reroll(m *Mountain) {
	m.Variant = pickVariant(mf.rng, mf.cfg.Variants)
	m.Scale = rangeF(mf.rng, mf.cfg.ScaleMin, mf.cfg.ScaleMax)
	m.Radius = mf.cfg.BaseRadius * m.Scale
}

func (mf *MountainField) place(center mgl64.Vec3, band Band, radius float64) (mgl64.Vec3, bool) {
	probe := radius * mf.cfg.OverlapTolerance
	return TryPlace(mf.rng, center, band, mf.cfg.WaterLevel, mf.cfg.PlaceTries, func(p mgl64.Vec3) bool {
		return mf.CollisionTest(p, probe)
	})
}

func (mf *MountainField) spawn(player mgl64.Vec3) {
	m := Mountain{Active: true}
	mf.reroll(&m)
	pos, ok := mf.place(player, Band{Min: mf.cfg.SpawnRadiusMin, Max: mf.cfg.SpawnRadiusMax}, m.Radius)
	if !ok {
		mf.log.Trace().Float64("radius", m.Radius).Msg("mountain spawn found no free spot")
		return
	}
	m.Position = pos
	mf.mountains = append(mf.mountains, m)
}

func (mf *MountainField) reposition(m *Mountain, player mgl64.Vec3) {
	mf.reroll(m)
	// The mountain being moved is still active at its old spot; it is far from
	// the respawn band so it never blocks its own placement.
	pos, ok := mf.place(player, Band{Min: mf.cfg.RespawnAheadMin, Max: mf.cfg.RespawnAheadMax}, m.Radius)
	if !ok {
		mf.log.Trace().Msg("mountain reposition deferred")
		return
	}
	m.Position = pos
}
