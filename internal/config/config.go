package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"boatescape/internal/sim"
)

// ConfigName is the settings file base name; any viper-supported extension works.
const ConfigName = "boatescape"

// Audio holds mixer levels in [0, 1].
type Audio struct {
	MusicVolume float64
	SfxVolume   float64
}

// Config is everything a frontend needs to start a game.
type Config struct {
	LogLevel   string
	LogsDir    string
	Seed       uint64
	Difficulty sim.Difficulty
	Audio      Audio
	Settings   sim.Settings
	Sim        sim.Config
}

// tunables maps config keys onto the fields of a sim.Config.
type tunables struct {
	floats map[string]*float64
	ints   map[string]*int
}

func bind(c *sim.Config) tunables {
	m, e, p, pl, s := &c.Mountains, &c.Enemies, &c.Projectiles, &c.Player, &c.Session
	return tunables{
		floats: map[string]*float64{
			"mountains.spawnInterval":    &m.SpawnInterval,
			"mountains.spawnRadiusMin":   &m.SpawnRadiusMin,
			"mountains.spawnRadiusMax":   &m.SpawnRadiusMax,
			"mountains.respawnDistance":  &m.RespawnDistance,
			"mountains.respawnAheadMin":  &m.RespawnAheadMin,
			"mountains.respawnAheadMax":  &m.RespawnAheadMax,
			"mountains.scaleMin":         &m.ScaleMin,
			"mountains.scaleMax":         &m.ScaleMax,
			"mountains.baseRadius":       &m.BaseRadius,
			"mountains.overlapTolerance": &m.OverlapTolerance,
			"mountains.waterLevel":       &m.WaterLevel,

			"enemies.spawnRadiusMin":    &e.SpawnRadiusMin,
			"enemies.spawnRadiusMax":    &e.SpawnRadiusMax,
			"enemies.cullMargin":        &e.CullMargin,
			"enemies.spawnInterval":     &e.SpawnInterval,
			"enemies.initialSpawnDelay": &e.InitialSpawnDelay,
			"enemies.minSpacing":        &e.MinSpacing,
			"enemies.spawnDepth":        &e.SpawnDepth,
			"enemies.hullRadius":        &e.HullRadius,
			"enemies.speed":             &e.Speed,
			"enemies.retreatFactor":     &e.RetreatFactor,
			"enemies.shootCooldown":     &e.ShootCooldown,
			"enemies.desiredDistance":   &e.DesiredDistance,
			"enemies.distanceBuffer":    &e.DistanceBuffer,
			"enemies.fireRange":         &e.FireRange,
			"enemies.shotSpeed":         &e.ShotSpeed,
			"enemies.muzzleOffset":      &e.MuzzleOffset,

			"projectiles.lifetime":       &p.Lifetime,
			"projectiles.waterPlane":     &p.WaterPlane,
			"projectiles.waterClearance": &p.WaterClearance,
			"projectiles.trailInterval":  &p.TrailInterval,
			"projectiles.terrainRadius":  &p.TerrainRadius,

			"player.startX":            &pl.Start[0],
			"player.startY":            &pl.Start[1],
			"player.startZ":            &pl.Start[2],
			"player.speed":             &pl.Speed,
			"player.boostSpeed":        &pl.BoostSpeed,
			"player.crazyFactor":       &pl.CrazyFactor,
			"player.reverseFactor":     &pl.ReverseFactor,
			"player.turnRate":          &pl.TurnRate,
			"player.maxHealth":         &pl.MaxHealth,
			"player.initialGrace":      &pl.InitialGrace,
			"player.hitGrace":          &pl.HitGrace,
			"player.hullRadius":        &pl.HullRadius,
			"player.muzzleOffset":      &pl.MuzzleOffset,
			"player.bigMomMuzzleDrop":  &pl.BigMomMuzzleDrop,
			"player.shotSpeed":         &pl.ShotSpeed,
			"player.shotCooldown":      &pl.ShotCooldown,
			"player.merryShotCooldown": &pl.MerryShotCooldown,
			"player.merryScale":        &pl.MerryScale,
			"player.merryMuzzleLift":   &pl.MerryMuzzleLift,
			"player.merryWaterOffset":  &pl.MerryWaterOffset,

			"session.enemyHitRadius":  &s.EnemyHitRadius,
			"session.playerHitRadius": &s.PlayerHitRadius,
			"session.damage":          &s.Damage,
			"session.waterLevel":      &s.WaterLevel,
		},
		ints: map[string]*int{
			"mountains.maxMountains": &m.MaxMountains,
			"mountains.placeTries":   &m.PlaceTries,
			"mountains.variants":     &m.Variants,

			"enemies.easyCap":    &e.EasyCap,
			"enemies.hardCap":    &e.HardCap,
			"enemies.easyBatch":  &e.EasyBatch,
			"enemies.hardBatch":  &e.HardBatch,
			"enemies.spawnTries": &e.SpawnTries,

			"projectiles.trailLength": &p.TrailLength,

			"session.scorePerKill": &s.ScorePerKill,
		},
	}
}

// SetDefaults registers a default for every key Load understands.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")
	viper.SetDefault("seed", 0)
	viper.SetDefault("difficulty", "easy")

	viper.SetDefault("audio.musicVolume", 0.5)
	viper.SetDefault("audio.sfxVolume", 0.8)

	viper.SetDefault("settings.rainbowWater", false)
	viper.SetDefault("settings.crazyPhysics", false)
	viper.SetDefault("settings.partyMode", false)
	viper.SetDefault("settings.boatSkin", sim.BoatThousandSunny)

	def := sim.DefaultConfig()
	t := bind(&def)
	for k, v := range t.floats {
		viper.SetDefault(k, *v)
	}
	for k, v := range t.ints {
		viper.SetDefault(k, *v)
	}
}

// Load reads the optional settings file from configDir. A missing file is not
// an error; the defaults and BOATESCAPE_* environment overrides still apply.
func Load(configDir string) (Config, error) {
	SetDefaults()

	viper.SetConfigName(ConfigName)
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("BOATESCAPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return current(), nil
}

// current snapshots the viper state into a Config.
func current() Config {
	cfg := Config{
		LogLevel:   viper.GetString("logLevel"),
		LogsDir:    viper.GetString("logsDir"),
		Seed:       viper.GetUint64("seed"),
		Difficulty: sim.ParseDifficulty(viper.GetString("difficulty")),
		Audio: Audio{
			MusicVolume: clamp01(viper.GetFloat64("audio.musicVolume")),
			SfxVolume:   clamp01(viper.GetFloat64("audio.sfxVolume")),
		},
		Settings: sim.Settings{
			RainbowWater: viper.GetBool("settings.rainbowWater"),
			CrazyPhysics: viper.GetBool("settings.crazyPhysics"),
			PartyMode:    viper.GetBool("settings.partyMode"),
			BoatSkin:     viper.GetInt("settings.boatSkin"),
		},
		Sim: sim.DefaultConfig(),
	}
	if cfg.Settings.BoatSkin < 0 || cfg.Settings.BoatSkin >= sim.BoatSkinCount {
		cfg.Settings.BoatSkin = sim.BoatThousandSunny
	}

	t := bind(&cfg.Sim)
	for k, v := range t.floats {
		*v = viper.GetFloat64(k)
	}
	for k, v := range t.ints {
		*v = viper.GetInt(k)
	}
	return cfg
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
