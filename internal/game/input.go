//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"boatescape/internal/sim"
)

type Input struct {
	prevKeys    map[glfw.Key]bool
	prevChords  map[string]bool
	prevCursorX float64
	cursorValid bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:   make(map[glfw.Key]bool),
		prevChords: make(map[string]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// justPressedAny is JustPressed for a named group of alternative keys.
func (in *Input) justPressedAny(window *glfw.Window, name string, keys ...glfw.Key) bool {
	down := anyDown(window, keys...)
	jp := down && !in.prevChords[name]
	in.prevChords[name] = down
	return jp
}

func anyDown(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Intents samples the in-game controls: WASD to sail, shift to boost,
// space to fire, C for the collision overlay, 1/2 for the camera, P or
// escape to pause.
func (in *Input) Intents(window *glfw.Window) sim.Intents {
	intents := sim.Intents{
		Forward:     window.GetKey(glfw.KeyW) == glfw.Press,
		Backward:    window.GetKey(glfw.KeyS) == glfw.Press,
		TurnLeft:    window.GetKey(glfw.KeyA) == glfw.Press,
		TurnRight:   window.GetKey(glfw.KeyD) == glfw.Press,
		Boost:       anyDown(window, glfw.KeyLeftShift, glfw.KeyRightShift),
		Fire:        window.GetKey(glfw.KeySpace) == glfw.Press,
		FirstPerson: window.GetKey(glfw.Key1) == glfw.Press,
		ThirdPerson: window.GetKey(glfw.Key2) == glfw.Press,
		ToggleDebug: in.JustPressed(window, glfw.KeyC),
		Pause:       in.justPressedAny(window, "pause", glfw.KeyP, glfw.KeyEscape),
	}

	// Mouse look: horizontal cursor motion turns the boat, right is clockwise.
	cx, _ := window.GetCursorPos()
	if in.cursorValid {
		intents.LookYaw = -(cx - in.prevCursorX) * MouseLookScale
	}
	in.prevCursorX = cx
	in.cursorValid = true
	return intents
}

// MenuIntents samples edge-triggered menu navigation: arrows or WASD,
// enter or space to confirm, escape to go back.
func (in *Input) MenuIntents(window *glfw.Window) sim.MenuIntents {
	// Cursor motion while a menu is open must not turn the boat on resume.
	in.cursorValid = false
	return sim.MenuIntents{
		Up:      in.justPressedAny(window, "up", glfw.KeyUp, glfw.KeyW),
		Down:    in.justPressedAny(window, "down", glfw.KeyDown, glfw.KeyS),
		Left:    in.justPressedAny(window, "left", glfw.KeyLeft, glfw.KeyA),
		Right:   in.justPressedAny(window, "right", glfw.KeyRight, glfw.KeyD),
		Confirm: in.justPressedAny(window, "confirm", glfw.KeyEnter, glfw.KeySpace),
		Back:    in.justPressedAny(window, "pause", glfw.KeyEscape),
	}
}
