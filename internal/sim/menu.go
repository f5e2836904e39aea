package sim

// Menu item labels, indexed by cursor position.
var (
	MainMenuLabels       = [MainMenuItems]string{"Start Game", "Settings", "Quit"}
	DifficultyMenuLabels = [DifficultyMenuItems]string{"Easy", "Hard"}
	PauseMenuLabels      = [PauseMenuItems]string{"Resume", "Settings", "Main Menu"}
	SettingsMenuLabels   = [SettingsMenuItems]string{"Rainbow Water", "Crazy Physics", "Party Mode", "Boat"}
)

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Value returns the display value of settings menu item i.
func (st Settings) Value(i int) string {
	switch i {
	case 0:
		return onOff(st.RainbowWater)
	case 1:
		return onOff(st.CrazyPhysics)
	case 2:
		return onOff(st.PartyMode)
	case 3:
		return BoatSkinNames[((st.BoatSkin%BoatSkinCount)+BoatSkinCount)%BoatSkinCount]
	}
	return ""
}

// MenuView is what a frontend needs to draw the current menu.
type MenuView struct {
	Title    string
	Labels   []string
	Values   []string // parallel to Labels; empty entries have no value
	Selected int
	Hint     string
}

// Menu describes the menu for the current state. ok is false while playing
// or on the game over screen.
func (s *Session) Menu() (mv MenuView, ok bool) {
	switch s.State {
	case StateMainMenu:
		return MenuView{Title: "BOAT ESCAPE", Labels: MainMenuLabels[:], Selected: s.MenuItem,
			Hint: "Up/Down to choose, Enter to select"}, true
	case StateDifficultyMenu:
		return MenuView{Title: "DIFFICULTY", Labels: DifficultyMenuLabels[:], Selected: s.DifficultyItem,
			Hint: "Enter to set sail, Esc to go back"}, true
	case StateSettingsMenu:
		values := make([]string, SettingsMenuItems)
		for i := range values {
			values[i] = s.Settings.Value(i)
		}
		return MenuView{Title: "SETTINGS", Labels: SettingsMenuLabels[:], Values: values, Selected: s.SettingsItem,
			Hint: "Left/Right to change, Esc to go back"}, true
	case StatePaused:
		return MenuView{Title: "PAUSED", Labels: PauseMenuLabels[:], Selected: s.PauseItem,
			Hint: "Esc to resume"}, true
	}
	return MenuView{}, false
}
