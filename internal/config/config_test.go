package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boatescape/internal/sim"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, sim.Easy, cfg.Difficulty)
	assert.Equal(t, 0.5, cfg.Audio.MusicVolume)
	assert.Equal(t, 0.8, cfg.Audio.SfxVolume)
	assert.Equal(t, sim.Settings{}, cfg.Settings)
	assert.Equal(t, sim.DefaultConfig(), cfg.Sim)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	body := `{
		"logLevel": "debug",
		"seed": 1234,
		"difficulty": "HARD",
		"audio": { "musicVolume": 0.2, "sfxVolume": 3 },
		"settings": { "rainbowWater": true, "partyMode": true, "boatSkin": 5 },
		"mountains": { "maxMountains": 9, "spawnRadiusMax": 250.5 },
		"enemies": { "hardCap": 50, "speed": 3.5 },
		"player": { "startX": 1, "startZ": -2, "maxHealth": 100 },
		"session": { "scorePerKill": 250 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boatescape.json"), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, sim.Hard, cfg.Difficulty)
	assert.Equal(t, 0.2, cfg.Audio.MusicVolume)
	assert.Equal(t, 1.0, cfg.Audio.SfxVolume, "volumes are clamped")
	assert.True(t, cfg.Settings.RainbowWater)
	assert.False(t, cfg.Settings.CrazyPhysics)
	assert.True(t, cfg.Settings.PartyMode)
	assert.Equal(t, sim.BoatGoingMerry, cfg.Settings.BoatSkin)

	assert.Equal(t, 9, cfg.Sim.Mountains.MaxMountains)
	assert.Equal(t, 250.5, cfg.Sim.Mountains.SpawnRadiusMax)
	assert.Equal(t, 90.0, cfg.Sim.Mountains.SpawnRadiusMin, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Sim.Enemies.HardCap)
	assert.Equal(t, 3.5, cfg.Sim.Enemies.Speed)
	assert.Equal(t, 1.0, cfg.Sim.Player.Start.X())
	assert.Equal(t, -1.0, cfg.Sim.Player.Start.Y())
	assert.Equal(t, -2.0, cfg.Sim.Player.Start.Z())
	assert.Equal(t, 100.0, cfg.Sim.Player.MaxHealth)
	assert.Equal(t, 250, cfg.Sim.Session.ScorePerKill)
}

func TestLoad_BadBoatSkinFallsBack(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boatescape.json"), []byte(`{"settings":{"boatSkin":17}}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, sim.BoatThousandSunny, cfg.Settings.BoatSkin)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("BOATESCAPE_DIFFICULTY", "hard")
	t.Setenv("BOATESCAPE_ENEMIES_EASYCAP", "7")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, sim.Hard, cfg.Difficulty)
	assert.Equal(t, 7, cfg.Sim.Enemies.EasyCap)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boatescape.json"), []byte(`{"seed": `), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
