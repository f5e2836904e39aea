package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Value(t *testing.T) {
	st := Settings{RainbowWater: true, BoatSkin: -1}
	assert.Equal(t, "ON", st.Value(0))
	assert.Equal(t, "OFF", st.Value(1))
	assert.Equal(t, "OFF", st.Value(2))
	assert.Equal(t, "Going Merry", st.Value(3))
	assert.Empty(t, st.Value(9))
}

func TestSession_Menu(t *testing.T) {
	s := NewSession(DefaultConfig(), 1)

	mv, ok := s.Menu()
	require.True(t, ok)
	assert.Equal(t, "BOAT ESCAPE", mv.Title)
	assert.Len(t, mv.Labels, MainMenuItems)
	assert.Zero(t, mv.Selected)

	s.HandleMenu(MenuIntents{Down: true})
	s.HandleMenu(MenuIntents{Confirm: true})
	require.Equal(t, StateSettingsMenu, s.State)

	s.HandleMenu(MenuIntents{Down: true})
	s.HandleMenu(MenuIntents{Right: true})
	mv, ok = s.Menu()
	require.True(t, ok)
	assert.Equal(t, 1, mv.Selected)
	require.Len(t, mv.Values, SettingsMenuItems)
	assert.Equal(t, "ON", mv.Values[1])

	s.StartNewGame()
	_, ok = s.Menu()
	assert.False(t, ok)
}
