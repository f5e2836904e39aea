package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	DefaultZoom  = 3.0 // screen pixels per world unit, overview camera
	BowZoom      = 5.0 // heading-up camera
	MinZoom      = 1.5
	MaxZoom      = 12.0
)

// Camera follow.
const (
	CameraLookAhead = 12.0 // world units in front of the boat
	CameraFollow    = 4.0  // exponential catch-up rate per second
	MouseLookScale  = 0.15 // degrees of yaw per cursor pixel
)

// Explosion defaults.
const (
	ExplosionRadius    = 10.0 // world units
	HitExplosionRadius = 5.0
)

// Particles.
const (
	MaxParticles         = 15000
	MaxParticleRender    = 20000
	ParticleCullDistance = 220.0
)

// Water lattice drawn under the boats so movement reads on an empty sea.
const (
	RippleSpacing = 9.0
	RippleSize    = 1.4
)

// Font atlas layout: 32 cols x 4 rows, ASCII 0-127, rasterised from basicfont.Face7x13.
const (
	FontCellW   = 7
	FontCellH   = 13
	FontAscent  = 11
	FontCols    = 32
	FontRows    = 4
	FontAtlasW  = FontCellW * FontCols // 224
	FontAtlasH  = FontCellH * FontRows // 52
	HUDTextSize = 2.0
)

// Hull sprite sizes in world units.
const (
	PlayerHullSize = 7.0
	EnemyHullSize  = 5.5
	CannonballSize = 0.9
	EnemyShotSize  = 0.7
	TrailPuffSize  = 0.8
)
