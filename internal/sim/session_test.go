package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playingSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultConfig(), 77)
	s.StartNewGame()
	require.Equal(t, StatePlaying, s.State)
	return s
}

func countEvents(s *Session, types ...EventType) map[EventType]int {
	got := map[EventType]int{}
	s.Events.SubscribeAll(func(e Event) { got[e.Type]++ }, types...)
	return got
}

func TestSession_PlayerShotSinksEnemy(t *testing.T) {
	s := playingSession(t)
	events := countEvents(s, EventEnemyDestroyed)
	s.Enemies.enemies = append(s.Enemies.enemies, EnemyBoat{Position: mgl64.Vec3{0, -2, 0}, Active: true})
	s.Projectiles.Enqueue(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, true, true)

	s.ResolveCollisions()

	assert.False(t, s.Enemies.Enemies()[0].Active)
	assert.Zero(t, s.Projectiles.Len())
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 1, s.Kills)
	assert.Equal(t, 1, events[EventEnemyDestroyed])
}

func TestSession_FirstMatchNotClosest(t *testing.T) {
	s := playingSession(t)
	s.Enemies.enemies = append(s.Enemies.enemies,
		EnemyBoat{Position: mgl64.Vec3{1.9, -2, 0}, Active: true},
		EnemyBoat{Position: mgl64.Vec3{0.1, -2, 0}, Active: true},
	)
	s.Projectiles.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, true, true)

	s.ResolveCollisions()

	enemies := s.Enemies.Enemies()
	assert.False(t, enemies[0].Active)
	assert.True(t, enemies[1].Active)
	assert.Equal(t, 1, s.Kills)
}

func TestSession_MissesAndSunkTargets(t *testing.T) {
	s := playingSession(t)
	s.Enemies.enemies = append(s.Enemies.enemies,
		EnemyBoat{Position: mgl64.Vec3{0, -2, 0}, Active: false},
		EnemyBoat{Position: mgl64.Vec3{2, -2, 0}, Active: true},
	)
	s.Projectiles.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, true, true)

	s.ResolveCollisions()

	assert.Equal(t, 1, s.Projectiles.Len(), "sunk boats and boats at the hit radius are not hits")
	assert.Zero(t, s.Score)
}

func TestSession_EnemyShotHitsPlayer(t *testing.T) {
	s := playingSession(t)
	events := countEvents(s, EventPlayerHit)
	s.Player.gracePeriod = 0
	pos := s.Player.Position

	s.Projectiles.Enqueue(pos.Add(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{}, false, true)
	s.Projectiles.Enqueue(pos.Add(mgl64.Vec3{0, 0, 1.4}), mgl64.Vec3{}, false, true)
	s.Projectiles.Enqueue(pos.Add(mgl64.Vec3{1.5, 0, 0}), mgl64.Vec3{}, false, true)
	s.Projectiles.Enqueue(pos.Add(mgl64.Vec3{0.5, 0, 0}), mgl64.Vec3{}, true, true)

	s.ResolveCollisions()

	assert.Equal(t, 280.0, s.Player.HP.Current, "the second hit lands inside the grace period")
	assert.Equal(t, 1, events[EventPlayerHit])
	require.Equal(t, 2, s.Projectiles.Len())
	p := s.Projectiles.Projectiles()
	assert.False(t, p[0].PlayerOwned)
	assert.InDelta(t, pos.X()+1.5, p[0].Position.X(), 1e-9)
	assert.True(t, p[1].PlayerOwned, "player shots never hit the player")
}

func TestSession_GameOver(t *testing.T) {
	s := playingSession(t)
	events := countEvents(s, EventGameOver)
	s.Score = 700
	s.Player.HP.Current = 0

	s.Update(0.016)

	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, 700, s.FinalScore)
	assert.Equal(t, 1, events[EventGameOver])

	s.Update(0.016)
	assert.Equal(t, 1, events[EventGameOver], "no updates after game over")

	s.HandleMenu(MenuIntents{Confirm: true})
	assert.Equal(t, StateMainMenu, s.State)
}

func TestSession_TickOrder(t *testing.T) {
	s := playingSession(t)
	events := countEvents(s, EventShotFired)

	s.Tick(Intents{Fire: true}, 0.5)

	assert.Equal(t, 1, events[EventShotFired])
	require.Equal(t, 1, s.Projectiles.Len())
	// Fired during input, then advanced by the same frame's projectile step.
	start := s.Player.Position.Add(mgl64.Vec3{0, 0, 2})
	assert.InDelta(t, start.Z()+10, s.Projectiles.Projectiles()[0].Position.Z(), 1e-9)
	assert.InDelta(t, 0.5, s.GameTime, 1e-9)
	assert.Positive(t, s.Mountains.Len())
}

func TestSession_PauseFreezesWorld(t *testing.T) {
	s := playingSession(t)
	s.Tick(Intents{Pause: true}, 0.1)
	require.Equal(t, StatePaused, s.State)
	t0 := s.GameTime

	s.Tick(Intents{Forward: true}, 1)
	assert.Equal(t, t0, s.GameTime)

	s.HandleMenu(MenuIntents{Back: true})
	assert.Equal(t, StatePlaying, s.State)
}

func TestSession_DebugAndCameraToggles(t *testing.T) {
	s := playingSession(t)
	s.ProcessInput(Intents{ToggleDebug: true, FirstPerson: true}, 0)
	assert.True(t, s.DebugMountains)
	assert.True(t, s.FirstPerson)

	s.ProcessInput(Intents{LookYaw: 30}, 0)
	assert.InDelta(t, 30, s.Player.Heading, 1e-9)

	s.ProcessInput(Intents{ToggleDebug: true, ThirdPerson: true, LookYaw: 30}, 0)
	assert.False(t, s.DebugMountains)
	assert.False(t, s.FirstPerson)
	assert.InDelta(t, 30, s.Player.Heading, 1e-9, "mouse look only steers in first person")
}

func TestSession_MainMenuFlow(t *testing.T) {
	s := NewSession(DefaultConfig(), 1)
	events := countEvents(s, EventMenuSelect, EventGameStarted)
	require.Equal(t, StateMainMenu, s.State)

	s.HandleMenu(MenuIntents{Up: true})
	assert.Equal(t, 2, s.MenuItem, "cursor wraps")
	s.HandleMenu(MenuIntents{Confirm: true})
	assert.True(t, s.QuitRequested)

	s.HandleMenu(MenuIntents{Down: true})
	s.HandleMenu(MenuIntents{Confirm: true})
	require.Equal(t, StateDifficultyMenu, s.State)

	s.HandleMenu(MenuIntents{Back: true})
	require.Equal(t, StateMainMenu, s.State)
	s.HandleMenu(MenuIntents{Confirm: true})

	s.HandleMenu(MenuIntents{Down: true})
	s.HandleMenu(MenuIntents{Confirm: true})
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, Hard, s.Difficulty)
	assert.Equal(t, 200, s.Enemies.MaxEnemies())
	assert.Equal(t, 4, events[EventMenuSelect])
	assert.Equal(t, 1, events[EventGameStarted])
}

func TestSession_SettingsMenu(t *testing.T) {
	s := NewSession(DefaultConfig(), 1)
	s.MenuItem = 1
	s.HandleMenu(MenuIntents{Confirm: true})
	require.Equal(t, StateSettingsMenu, s.State)

	s.HandleMenu(MenuIntents{Right: true})
	assert.True(t, s.Settings.RainbowWater)
	s.HandleMenu(MenuIntents{Down: true, Left: true})
	assert.True(t, s.Settings.CrazyPhysics)
	s.HandleMenu(MenuIntents{Down: true, Right: true})
	assert.True(t, s.Settings.PartyMode)

	s.HandleMenu(MenuIntents{Down: true, Left: true})
	assert.Equal(t, BoatGoingMerry, s.Settings.BoatSkin, "skin cycles backwards through zero")
	s.HandleMenu(MenuIntents{Right: true})
	assert.Equal(t, BoatThousandSunny, s.Settings.BoatSkin)

	s.HandleMenu(MenuIntents{Back: true})
	assert.Equal(t, StateMainMenu, s.State)
}

func TestSession_SettingsFromPauseReturnsToPause(t *testing.T) {
	s := playingSession(t)
	s.Settings.BoatSkin = BoatGoingMerry
	s.ProcessInput(Intents{Pause: true}, 0)
	require.Equal(t, StatePaused, s.State)

	s.HandleMenu(MenuIntents{Down: true})
	s.HandleMenu(MenuIntents{Confirm: true})
	require.Equal(t, StateSettingsMenu, s.State)
	s.HandleMenu(MenuIntents{Back: true})
	assert.Equal(t, StatePaused, s.State)

	s.HandleMenu(MenuIntents{Up: true})
	s.HandleMenu(MenuIntents{Up: true})
	s.HandleMenu(MenuIntents{Confirm: true})
	assert.Equal(t, StateMainMenu, s.State)
	assert.Equal(t, BoatGoingMerry, s.Player.BoatSkin())
}

func TestSession_StartNewGameResets(t *testing.T) {
	s := playingSession(t)
	s.Score, s.Kills, s.GameTime = 500, 5, 42
	s.Player.HP.Current = 10
	s.Projectiles.Enqueue(mgl64.Vec3{}, mgl64.Vec3{}, true, false)
	s.Tick(Intents{}, 1)

	s.StartNewGame()

	assert.Zero(t, s.Score)
	assert.Zero(t, s.Kills)
	assert.Zero(t, s.GameTime)
	assert.Zero(t, s.WaveTime)
	assert.Zero(t, s.Projectiles.Len())
	assert.Zero(t, s.Mountains.Len())
	assert.Zero(t, s.Enemies.Len())
	assert.Equal(t, 300.0, s.Player.HP.Current)
}
