package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"boatescape/internal/sim"
)

// Terminals report presses and auto-repeats but never releases, so a held
// action is one pressed recently. The first press must outlast the
// terminal's repeat delay; after that repeats arrive quickly.
const (
	FirstHold  = 550 * time.Millisecond
	RepeatHold = 120 * time.Millisecond
	LookStep   = 5.0 // degrees of yaw per look key press
)

type action int

const (
	actForward action = iota
	actBackward
	actLeft
	actRight
	actBoost
	actFire
	actCount
)

type hold struct {
	first, last time.Time
}

func (h *hold) press(now time.Time) {
	if h.last.IsZero() || now.Sub(h.last) > FirstHold {
		h.first = now
	}
	h.last = now
}

func (h *hold) held(now time.Time) bool {
	if h.last.IsZero() {
		return false
	}
	window := RepeatHold
	if h.first.Equal(h.last) {
		window = FirstHold
	}
	return now.Sub(h.last) < window
}

// Keys turns key events into the per-frame intents of a running game.
type Keys struct {
	holds [actCount]hold

	// Edge commands latched until the next Intents call.
	pause, debug   bool
	firstP, thirdP bool
	lookYaw        float64
}

func NewKeys() *Keys { return &Keys{} }

// Press records one key event.
func (k *Keys) Press(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.holds[actForward].press(now)
		return
	case tcell.KeyDown:
		k.holds[actBackward].press(now)
		return
	case tcell.KeyLeft:
		k.holds[actLeft].press(now)
		return
	case tcell.KeyRight:
		k.holds[actRight].press(now)
		return
	case tcell.KeyEscape:
		k.pause = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	// Shifted movement keys sail at boost speed.
	if r >= 'A' && r <= 'Z' {
		switch r {
		case 'W', 'A', 'S', 'D':
			k.holds[actBoost].press(now)
		}
		r += 'a' - 'A'
	}
	switch r {
	case 'w':
		k.holds[actForward].press(now)
	case 's':
		k.holds[actBackward].press(now)
	case 'a':
		k.holds[actLeft].press(now)
	case 'd':
		k.holds[actRight].press(now)
	case ' ':
		k.holds[actFire].press(now)
	case 'c':
		k.debug = true
	case 'p':
		k.pause = true
	case '1':
		k.firstP = true
	case '2':
		k.thirdP = true
	case 'q':
		k.lookYaw += LookStep
	case 'e':
		k.lookYaw -= LookStep
	}
}

// Intents samples held actions at now and consumes the latched edge commands.
func (k *Keys) Intents(now time.Time) sim.Intents {
	in := sim.Intents{
		Forward:     k.holds[actForward].held(now),
		Backward:    k.holds[actBackward].held(now),
		TurnLeft:    k.holds[actLeft].held(now),
		TurnRight:   k.holds[actRight].held(now),
		Boost:       k.holds[actBoost].held(now),
		Fire:        k.holds[actFire].held(now),
		FirstPerson: k.firstP,
		ThirdPerson: k.thirdP,
		ToggleDebug: k.debug,
		Pause:       k.pause,
		LookYaw:     k.lookYaw,
	}
	k.pause, k.debug, k.firstP, k.thirdP = false, false, false, false
	k.lookYaw = 0
	return in
}

// Reset forgets every held key and latch.
func (k *Keys) Reset() { *k = Keys{} }

// MenuIntent maps one key event onto menu navigation.
func MenuIntent(ev *tcell.EventKey) sim.MenuIntents {
	var in sim.MenuIntents
	switch ev.Key() {
	case tcell.KeyUp:
		in.Up = true
	case tcell.KeyDown:
		in.Down = true
	case tcell.KeyLeft:
		in.Left = true
	case tcell.KeyRight:
		in.Right = true
	case tcell.KeyEnter:
		in.Confirm = true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		in.Back = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			in.Up = true
		case 's', 'S', 'j':
			in.Down = true
		case 'a', 'A', 'h':
			in.Left = true
		case 'd', 'D', 'l':
			in.Right = true
		case ' ':
			in.Confirm = true
		}
	}
	return in
}

// IsQuit reports the terminal's interrupt chord, honoured in every state.
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}
