package sim

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Difficulty selects the enemy population tier.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	if d == Hard {
		return "HARD"
	}
	return "EASY"
}

// ParseDifficulty accepts "easy"/"hard" in any case; anything else is Easy.
func ParseDifficulty(s string) Difficulty {
	if strings.EqualFold(strings.TrimSpace(s), "hard") {
		return Hard
	}
	return Easy
}

// Player boat variants. GoingMerry is authored facing +X instead of +Z.
const (
	BoatThousandSunny = iota
	BoatBlackBeard
	BoatGolDRoger
	BoatBuggyClown
	BoatBigMom
	BoatGoingMerry
	BoatSkinCount
)

// BoatSkinNames is indexed by boat variant.
var BoatSkinNames = [BoatSkinCount]string{
	"Thousand Sunny",
	"Black Beard",
	"Gol D. Roger",
	"Buggy Clown",
	"Big Mom",
	"Going Merry",
}

// MountainConfig tunes the obstacle field.
type MountainConfig struct {
	MaxMountains     int
	SpawnInterval    float64 // seconds between drain-loop spawns
	SpawnRadiusMin   float64
	SpawnRadiusMax   float64
	RespawnDistance  float64 // planar distance that triggers a reposition
	RespawnAheadMin  float64
	RespawnAheadMax  float64
	ScaleMin         float64
	ScaleMax         float64
	BaseRadius       float64 // mesh radius at scale 1
	OverlapTolerance float64 // fraction of the new radius tested for overlap
	PlaceTries       int
	Variants         int
	WaterLevel       float64
}

// EnemyConfig tunes the enemy fleet.
type EnemyConfig struct {
	EasyCap           int
	HardCap           int
	EasyBatch         int
	HardBatch         int
	SpawnRadiusMin    float64
	SpawnRadiusMax    float64
	CullMargin        float64 // added to SpawnRadiusMax for culling
	SpawnInterval     float64
	InitialSpawnDelay float64 // first batch waits this long after Initialize
	SpawnTries        int
	MinSpacing        float64
	SpawnDepth        float64 // height offset from the player at spawn
	HullRadius        float64
	Speed             float64
	RetreatFactor     float64
	ShootCooldown     float64
	DesiredDistance   float64
	DistanceBuffer    float64
	FireRange         float64
	ShotSpeed         float64
	MuzzleOffset      float64
}

// ForDifficulty returns the population cap and batch size for d.
func (c EnemyConfig) ForDifficulty(d Difficulty) (maxEnemies, batch int) {
	if d == Hard {
		return c.HardCap, c.HardBatch
	}
	return c.EasyCap, c.EasyBatch
}

// ProjectileConfig tunes cannonballs.
type ProjectileConfig struct {
	Lifetime       float64
	WaterPlane     float64
	WaterClearance float64
	TrailInterval  float64
	TrailLength    int
	TerrainRadius  float64
}

// PlayerConfig tunes the player boat.
type PlayerConfig struct {
	Start             mgl64.Vec3
	Speed             float64
	BoostSpeed        float64
	CrazyFactor       float64
	ReverseFactor     float64
	TurnRate          float64 // degrees per second
	MaxHealth         float64
	InitialGrace      float64
	HitGrace          float64
	HullRadius        float64
	MuzzleOffset      float64
	BigMomMuzzleDrop  float64
	ShotSpeed         float64
	ShotCooldown      float64
	MerryShotCooldown float64
	MerryScale        float64
	MerryMuzzleLift   float64
	MerryWaterOffset  float64
}

// SessionConfig tunes the cross-collision pass and scoring.
type SessionConfig struct {
	EnemyHitRadius  float64
	PlayerHitRadius float64
	Damage          float64
	ScorePerKill    int
	WaterLevel      float64
}

// Config groups every tunable of the simulation.
type Config struct {
	Mountains   MountainConfig
	Enemies     EnemyConfig
	Projectiles ProjectileConfig
	Player      PlayerConfig
	Session     SessionConfig
}

// DefaultConfig returns the shipped tuning.
func DefaultConfig() Config {
	return Config{
		Mountains: MountainConfig{
			MaxMountains:     6,
			SpawnInterval:    0.5,
			SpawnRadiusMin:   90,
			SpawnRadiusMax:   180,
			RespawnDistance:  380,
			RespawnAheadMin:  120,
			RespawnAheadMax:  200,
			ScaleMin:         10,
			ScaleMax:         20,
			BaseRadius:       3,
			OverlapTolerance: 0.9,
			PlaceTries:       64,
			Variants:         5,
			WaterLevel:       -1,
		},
		Enemies: EnemyConfig{
			EasyCap:           100,
			HardCap:           200,
			EasyBatch:         10,
			HardBatch:         20,
			SpawnRadiusMin:    60,
			SpawnRadiusMax:    100,
			CullMargin:        20,
			SpawnInterval:     1,
			InitialSpawnDelay: 3,
			SpawnTries:        50,
			MinSpacing:        5,
			SpawnDepth:        -1,
			HullRadius:        1,
			Speed:             2,
			RetreatFactor:     0.5,
			ShootCooldown:     2,
			DesiredDistance:   5,
			DistanceBuffer:    3,
			FireRange:         25,
			ShotSpeed:         8,
			MuzzleOffset:      2,
		},
		Projectiles: ProjectileConfig{
			Lifetime:       5,
			WaterPlane:     -0.5,
			WaterClearance: 0.05,
			TrailInterval:  0.1,
			TrailLength:    8,
			TerrainRadius:  0.1,
		},
		Player: PlayerConfig{
			Start:             mgl64.Vec3{30, -1, 30},
			Speed:             8,
			BoostSpeed:        16,
			CrazyFactor:       1.75,
			ReverseFactor:     0.7,
			TurnRate:          90,
			MaxHealth:         300,
			InitialGrace:      3,
			HitGrace:          1.5,
			HullRadius:        1,
			MuzzleOffset:      2,
			BigMomMuzzleDrop:  -0.5,
			ShotSpeed:         20,
			ShotCooldown:      0.1,
			MerryShotCooldown: 0.5,
			MerryScale:        0.4,
			MerryMuzzleLift:   0.2,
			MerryWaterOffset:  0.25,
		},
		Session: SessionConfig{
			EnemyHitRadius:  2,
			PlayerHitRadius: 1.5,
			Damage:          20,
			ScorePerKill:    100,
			WaterLevel:      -1,
		},
	}
}
