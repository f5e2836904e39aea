//go:build !android

package game

import (
	"fmt"

	"boatescape/internal/sim"
)

var (
	white  = RGB{R: 255, G: 255, B: 255}
	green  = RGB{R: 100, G: 255, B: 100}
	red    = RGB{R: 255, G: 80, B: 80}
	yellow = RGB{R: 255, G: 255, B: 100}
	blue   = RGB{R: 60, G: 140, B: 255}
	grey   = RGB{R: 150, G: 160, B: 170}
	panel  = RGB{R: 8, G: 20, B: 34}
)

// RenderHUD draws all in-game UI elements using the font atlas.
func RenderHUD(r *Renderer, s *sim.Session, fbW, fbH int) {
	switch s.State {
	case sim.StatePlaying:
		drawPlayingHUD(r, s, fbW, fbH)

	case sim.StateGameOver:
		r.DrawRect(0, 0, fbW, fbH, panel, 0.55)
		msg1 := "GAME OVER"
		r.DrawString(msg1, fbW/2-TextWidth(msg1, 3.0)/2, fbH/2-80, 3.0, red)

		msg2 := fmt.Sprintf("Final Score: %d", s.FinalScore)
		r.DrawString(msg2, fbW/2-TextWidth(msg2, 1.6)/2, fbH/2-10, 1.6, yellow)

		msg3 := fmt.Sprintf("Sunk %d boats in %.1fs", s.Kills, s.GameTime)
		r.DrawString(msg3, fbW/2-TextWidth(msg3, 1.2)/2, fbH/2+28, 1.2, white)

		msg4 := "Press ENTER for the main menu"
		r.DrawString(msg4, fbW/2-TextWidth(msg4, 1.2)/2, fbH/2+70, 1.2, grey)

	default:
		if s.State == sim.StatePaused {
			drawPlayingHUD(r, s, fbW, fbH)
			r.DrawRect(0, 0, fbW, fbH, panel, 0.45)
		}
		if mv, ok := s.Menu(); ok {
			drawMenu(r, mv, fbW, fbH)
		}
	}

	r.FlushText(fbW, fbH)
}

func drawPlayingHUD(r *Renderer, s *sim.Session, fbW, fbH int) {
	sc := float32(HUDTextSize * 0.75)

	// Top-left: score and kills.
	r.DrawString(fmt.Sprintf("Score: %d", s.Score), 8, 8, sc, white)
	r.DrawString(fmt.Sprintf("Sunk: %d", s.Kills), 8, 8+int(FontCellH*sc)+2, sc, white)

	// Top-center: timer.
	timeStr := fmt.Sprintf("%.1fs", s.GameTime)
	r.DrawString(timeStr, fbW/2-TextWidth(timeStr, sc)/2, 8, sc, white)

	// Top-right: fleet size and difficulty.
	fleetStr := fmt.Sprintf("Enemies: %d/%d", s.Enemies.ActiveCount(), s.Enemies.MaxEnemies())
	r.DrawString(fleetStr, fbW-TextWidth(fleetStr, sc)-8, 8, sc, red)
	diffCol := green
	if s.Difficulty == sim.Hard {
		diffCol = yellow
	}
	diffStr := s.Difficulty.String()
	r.DrawString(diffStr, fbW-TextWidth(diffStr, sc)-8, 8+int(FontCellH*sc)+2, sc, diffCol)

	// Bottom-left: HP bar.
	const barChars = 20
	barScale := float32(HUDTextSize * 0.8)
	barY := fbH - int(FontCellH*barScale) - 10
	hpFrac := s.Player.HP.Fraction()
	hpBar := fmt.Sprintf("[%-*s]", barChars, repeatChar('#', int(float64(barChars)*hpFrac+0.5)))
	r.DrawString("HULL", 10, barY-int(FontCellH*sc)-2, sc, white)
	r.DrawString(hpBar, 10, barY, barScale, HealthBarColor(hpFrac))
	if s.Player.Invulnerable() {
		r.DrawString("INVULNERABLE", 10+TextWidth(hpBar, barScale)+12, barY, sc, blue)
	}

	// Bottom-right: camera and debug state.
	camStr := "CAM: CHASE"
	if s.FirstPerson {
		camStr = "CAM: BOW"
	}
	r.DrawString(camStr, fbW-TextWidth(camStr, sc)-8, fbH-int(FontCellH*sc)-10, sc, grey)
	if s.DebugMountains {
		dbg := "DEBUG COLLIDERS"
		r.DrawString(dbg, fbW-TextWidth(dbg, sc)-8, fbH-2*int(FontCellH*sc)-14, sc, Palette.Debug)
	}
}

func drawMenu(r *Renderer, mv sim.MenuView, fbW, fbH int) {
	titleScale := float32(HUDTextSize * 1.6)
	itemScale := float32(HUDTextSize)
	hintScale := float32(HUDTextSize * 0.6)
	lineH := int(FontCellH*itemScale) + 10

	rows := make([]string, len(mv.Labels))
	width := TextWidth(mv.Title, titleScale)
	for i, label := range mv.Labels {
		rows[i] = label
		if i < len(mv.Values) && mv.Values[i] != "" {
			rows[i] = fmt.Sprintf("%-14s < %s >", label, mv.Values[i])
		}
		width = max(width, TextWidth("> "+rows[i], itemScale))
	}

	titleH := int(FontCellH * titleScale)
	h := titleH + 24 + len(rows)*lineH + 40
	w := width + 64
	x0, y0 := fbW/2-w/2, fbH/2-h/2
	r.DrawRect(x0, y0, w, h, panel, 0.8)
	r.DrawRect(x0, y0, w, 3, blue, 1)

	y := y0 + 16
	r.DrawString(mv.Title, fbW/2-TextWidth(mv.Title, titleScale)/2, y, titleScale, green)
	y += titleH + 16

	for i, row := range rows {
		col := grey
		prefix := "  "
		if i == mv.Selected {
			col = yellow
			prefix = "> "
			r.DrawRect(x0+12, y-4, w-24, lineH-2, blue, 0.25)
		}
		r.DrawString(prefix+row, x0+32, y, itemScale, col)
		y += lineH
	}

	if mv.Hint != "" {
		r.DrawString(mv.Hint, fbW/2-TextWidth(mv.Hint, hintScale)/2, y+8, hintScale, grey)
	}
}

// repeatChar returns a string of n copies of ch.
func repeatChar(ch byte, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ch
	}
	return string(b)
}
