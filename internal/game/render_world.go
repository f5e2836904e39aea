package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"boatescape/internal/sim"
)

// DebugRingWidth is the on-water thickness of collision overlay rings.
const DebugRingWidth = 0.6

// WorldSprites holds the per-frame sprite buffers for the sea, in draw order.
// Buffers are reused between frames.
type WorldSprites struct {
	Water   []float32 // disc rings
	Terrain []float32 // discs
	Trails  []float32 // discs
	Hulls   []float32 // hull sprites
	Decks   []float32 // discs drawn over hulls: sails and cannonballs
	Glow    []float32 // additive
	Debug   []float32 // disc rings
}

// SeaStyle holds the cosmetic settings that change how the sea is drawn.
type SeaStyle struct {
	RainbowWater bool
	PartyMode    bool
	Debug        bool
}

func (ws *WorldSprites) reset() {
	ws.Water = ws.Water[:0]
	ws.Terrain = ws.Terrain[:0]
	ws.Trails = ws.Trails[:0]
	ws.Hulls = ws.Hulls[:0]
	ws.Decks = ws.Decks[:0]
	ws.Glow = ws.Glow[:0]
	ws.Debug = ws.Debug[:0]
}

func appendSprite(buf []float32, x, y, size float32, col RGB, a, rot float32) []float32 {
	r, g, b := col.floats()
	return append(buf, x, y, size, r, g, b, a, rot)
}

// ringWidth converts a world thickness into the disc shader's ring fraction.
func ringWidth(radius float64) float32 {
	if radius <= 0 {
		return 1
	}
	return float32(clampF(DebugRingWidth/radius, 0.02, 1))
}

// SeaColor returns the clear colour for the water at time now.
func SeaColor(now float64, opt SeaStyle) RGB {
	if opt.RainbowWater {
		return lerpRGB(Palette.SeaDeep, Hue(now*0.05), 0.45)
	}
	return Palette.Sea
}

// Build fills the buffers from the session. viewRadius bounds the water
// lattice in world units.
func (ws *WorldSprites) Build(s *sim.Session, v View, viewRadius, now float64, opt SeaStyle) {
	ws.reset()
	ws.buildWater(v, viewRadius, now, opt)

	for _, m := range s.Mountains.Mountains() {
		if !m.Active {
			continue
		}
		ws.addMountain(m, v, opt)
	}

	for i, e := range s.Enemies.Enemies() {
		ws.addEnemy(i, e, v, now, opt)
	}

	for _, p := range s.Projectiles.Projectiles() {
		ws.addProjectile(p, v)
	}

	ws.addPlayer(s.Player, v, now, opt)

	if opt.Debug {
		ws.buildDebug(s, v)
	}
}

// buildWater lays a world-fixed lattice of ripples so motion reads on open sea.
func (ws *WorldSprites) buildWater(v View, viewRadius, now float64, opt SeaStyle) {
	ci := int(math.Floor(v.Origin.X() / RippleSpacing))
	cj := int(math.Floor(v.Origin.Z() / RippleSpacing))
	n := int(viewRadius/RippleSpacing) + 1
	for j := cj - n; j <= cj+n; j++ {
		for i := ci - n; i <= ci+n; i++ {
			h := hash2D(0x5EA, i, j)
			jx := hashUnit(h)
			jz := hashUnit(splitmix64(h))
			x := (float64(i) + jx) * RippleSpacing
			z := (float64(j) + jz) * RippleSpacing
			phase := jx * 2 * math.Pi
			a := 0.18 + 0.12*math.Sin(now*1.3+phase)
			col := Palette.Ripple
			if opt.RainbowWater {
				col = Hue(now*0.1 + (x+z)*0.004)
			}
			sx, sy := v.Project(x, z)
			size := RippleSize * (1 + 0.3*math.Sin(now*0.9+phase*1.7))
			ws.Water = appendSprite(ws.Water, sx, sy, float32(size), col, float32(a), 0.35)
		}
	}
}

func (ws *WorldSprites) addMountain(m sim.Mountain, v View, opt SeaStyle) {
	sx, sy := v.ProjectVec(m.Position)
	d := float32(m.Radius * 2)
	rock := Palette.Rock.Add(m.Variant*6-12, m.Variant*4-8, m.Variant*2)
	grass := Palette.Grass.Add(-m.Variant*5, m.Variant*3, 0)
	ws.Terrain = appendSprite(ws.Terrain, sx, sy, d*1.06, Palette.Foam, 0.35, 0)
	ws.Terrain = appendSprite(ws.Terrain, sx, sy, d, Palette.Sand, 1, 0)
	ws.Terrain = appendSprite(ws.Terrain, sx, sy, d*0.82, grass, 1, 0)
	ws.Terrain = appendSprite(ws.Terrain, sx, sy, d*0.5, rock, 1, 0)
	if m.Variant >= 3 || opt.PartyMode {
		ws.Terrain = appendSprite(ws.Terrain, sx, sy, d*0.18, Palette.Snow, 1, 0)
	}
}

func (ws *WorldSprites) addEnemy(i int, e sim.EnemyBoat, v View, now float64, opt SeaStyle) {
	sx, sy := v.ProjectVec(e.Position)
	rot := v.SpriteRotation(mgl64.DegToRad(e.Heading))
	if !e.Active {
		ws.Hulls = appendSprite(ws.Hulls, sx, sy, EnemyHullSize, Palette.EnemyHull.Mul(120), 0.35, rot)
		return
	}
	hull := Palette.EnemyHull
	deck := Palette.EnemyDeck
	if opt.PartyMode {
		deck = Hue(now*0.5 + float64(i)*0.13)
	}
	ws.Hulls = appendSprite(ws.Hulls, sx, sy, EnemyHullSize, hull, 1, rot)
	ws.Decks = appendSprite(ws.Decks, sx, sy, EnemyHullSize*0.28, deck, 1, 0)
}

func (ws *WorldSprites) addProjectile(p sim.Projectile, v View) {
	if !p.Active {
		return
	}
	sx, sy := v.ProjectVec(p.Position)
	if p.PlayerOwned {
		ws.Decks = appendSprite(ws.Decks, sx, sy, CannonballSize, Palette.Cannonball, 1, 0)
		return
	}
	n := len(p.Trail)
	for k, t := range p.Trail {
		tx, ty := v.ProjectVec(t)
		age := float32(k+1) / float32(n+1)
		ws.Trails = appendSprite(ws.Trails, tx, ty, TrailPuffSize*(0.6+0.6*age), Palette.Smoke, 0.15+0.45*age, 0)
	}
	ws.Decks = appendSprite(ws.Decks, sx, sy, EnemyShotSize, Palette.EnemyShot, 1, 0)
	gr, gg, gb := Palette.EnemyShot.floats()
	ws.Glow = append(ws.Glow, sx, sy, EnemyShotSize*3.5, gr*0.6, gg*0.6, gb*0.6, 1, 0)
}

func (ws *WorldSprites) addPlayer(p *sim.Player, v View, now float64, opt SeaStyle) {
	sx, sy := v.ProjectVec(p.Position)
	yaw := math.Atan2(p.Front.X(), p.Front.Z())
	colors := BoatColors[clampSkin(p.BoatSkin())]
	hull, deck := colors[0], colors[1]
	if opt.PartyMode {
		deck = Hue(now * 0.8)
	}

	a := float32(1)
	if p.Invulnerable() && math.Sin(now*20) > 0 {
		a = 0.45
	}
	ws.Hulls = appendSprite(ws.Hulls, sx, sy, PlayerHullSize, hull, a, v.SpriteRotation(yaw))
	ws.Decks = appendSprite(ws.Decks, sx, sy, PlayerHullSize*0.3, deck, a, 0)
	if p.Invulnerable() {
		ws.Glow = append(ws.Glow, sx, sy, PlayerHullSize*1.6, 0.12, 0.2, 0.3, 1, 0)
	}
}

func clampSkin(skin int) int {
	if skin < 0 || skin >= len(BoatColors) {
		return 0
	}
	return skin
}

// buildDebug rings every collision circle: mountain footprints, hull
// radii and the projectile hit radii.
func (ws *WorldSprites) buildDebug(s *sim.Session, v View) {
	cfg := s.Config()
	for _, m := range s.Mountains.Mountains() {
		if !m.Active {
			continue
		}
		sx, sy := v.ProjectVec(m.Position)
		ws.Debug = appendSprite(ws.Debug, sx, sy, float32(m.Radius*2), Palette.Debug, 0.9, ringWidth(m.Radius))
	}
	for _, e := range s.Enemies.Enemies() {
		if !e.Active {
			continue
		}
		sx, sy := v.ProjectVec(e.Position)
		r := cfg.Session.EnemyHitRadius
		ws.Debug = appendSprite(ws.Debug, sx, sy, float32(r*2), Palette.Debug, 0.7, ringWidth(r))
	}
	sx, sy := v.ProjectVec(s.Player.Position)
	r := cfg.Session.PlayerHitRadius
	ws.Debug = appendSprite(ws.Debug, sx, sy, float32(r*2), Palette.Debug, 0.7, ringWidth(r))
	r = cfg.Player.HullRadius
	ws.Debug = appendSprite(ws.Debug, sx, sy, float32(r*2), Palette.Foam, 0.7, ringWidth(r))
}
