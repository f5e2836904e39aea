package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boatescape/internal/config"
	"boatescape/internal/sim"
)

func newApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{
		Config: config.Config{Sim: sim.DefaultConfig()},
		Logger: zerolog.Nop(),
		Seed:   7,
		Screen: screen,
		Mute:   true,
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	screen.SetSize(80, 24)
	return a, screen
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func TestApp_MenuToPlay(t *testing.T) {
	a, _ := newApp(t)
	now := time.Unix(100, 0)

	assert.True(t, a.HandleEvent(key(tcell.KeyEnter), now))
	assert.Equal(t, sim.StateDifficultyMenu, a.Session().State)
	assert.True(t, a.HandleEvent(key(tcell.KeyDown), now))
	assert.True(t, a.HandleEvent(key(tcell.KeyEnter), now))
	assert.Equal(t, sim.StatePlaying, a.Session().State)
	assert.Equal(t, sim.Hard, a.Session().Difficulty)
}

func TestApp_StepSailsWhileKeyHeld(t *testing.T) {
	a, screen := newApp(t)
	a.Session().StartNewGame()
	start := a.Session().Player.Position
	now := time.Unix(100, 0)

	a.HandleEvent(runeKey('w'), now)
	for i := 0; i < 5; i++ {
		now = now.Add(FrameInterval)
		require.True(t, a.Step(now, FrameInterval.Seconds()))
	}

	assert.Greater(t, a.Session().Player.Position.Z(), start.Z())
	assert.Contains(t, rowText(screen, 0), "Score")
}

func TestApp_EscapePausesAndResumes(t *testing.T) {
	a, _ := newApp(t)
	a.Session().StartNewGame()
	now := time.Unix(100, 0)

	a.HandleEvent(key(tcell.KeyEscape), now)
	a.Step(now, 0.016)
	require.Equal(t, sim.StatePaused, a.Session().State)

	a.HandleEvent(key(tcell.KeyEscape), now)
	assert.Equal(t, sim.StatePlaying, a.Session().State)
}

func TestApp_QuitPaths(t *testing.T) {
	a, _ := newApp(t)
	now := time.Unix(100, 0)

	assert.False(t, a.HandleEvent(key(tcell.KeyCtrlC), now))

	a.HandleEvent(key(tcell.KeyUp), now)
	require.Equal(t, 2, a.Session().MenuItem, "the cursor wraps to Quit")
	assert.False(t, a.HandleEvent(key(tcell.KeyEnter), now))
}

func TestApp_ResizeKeepsRunning(t *testing.T) {
	a, screen := newApp(t)
	screen.SetSize(100, 30)
	assert.True(t, a.HandleEvent(tcell.NewEventResize(100, 30), time.Unix(100, 0)))
	assert.True(t, a.Step(time.Unix(100, 0), 0.016))
	assert.Contains(t, screenText(screen), "BOAT ESCAPE")
}
