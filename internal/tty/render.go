package tty

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"boatescape/internal/sim"
)

// RippleSpacing is the world distance between water ripple marks.
const RippleSpacing = 6.0

func rgb(r, g, b int32) tcell.Color { return tcell.NewRGBColor(r, g, b) }

var (
	seaBG    = rgb(8, 40, 78)
	rippleFG = rgb(70, 130, 190)
	panelBG  = rgb(8, 20, 34)

	foamFG  = rgb(220, 235, 245)
	sandBG  = rgb(200, 180, 120)
	grassBG = rgb(70, 140, 60)
	rockBG  = rgb(110, 100, 95)
	snowBG  = rgb(240, 245, 250)

	enemyFG  = rgb(235, 70, 60)
	sunkFG   = rgb(120, 120, 130)
	shotFG   = rgb(255, 150, 40)
	trailFG  = rgb(150, 160, 170)
	cannonFG = rgb(240, 240, 240)
	debugFG  = rgb(255, 0, 255)

	textFG   = rgb(230, 230, 230)
	hintFG   = rgb(150, 160, 170)
	titleFG  = rgb(100, 255, 100)
	selectFG = rgb(255, 255, 100)
	alertFG  = rgb(255, 80, 80)
	blueFG   = rgb(60, 140, 255)
)

// skinColors are the hull colours of the boat variants.
var skinColors = [sim.BoatSkinCount]tcell.Color{
	rgb(250, 200, 60),
	rgb(160, 160, 175),
	rgb(170, 110, 60),
	rgb(210, 40, 50),
	rgb(240, 120, 180),
	rgb(200, 160, 110),
}

// Renderer draws a session onto a terminal screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints one frame at time now (seconds) and shows it.
func (r *Renderer) Draw(s *sim.Session, now float64) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.screen.Clear()

	p := s.Player
	vp := NewViewport(w, h, p.Position, p.Front, s.FirstPerson)
	r.drawSea(vp, s.Settings, now)
	if s.State == sim.StatePlaying || s.State == sim.StatePaused || s.State == sim.StateGameOver {
		r.drawWorld(s, vp, now)
	}

	switch s.State {
	case sim.StatePlaying:
		r.drawHUD(s, w, h)
	case sim.StateGameOver:
		r.drawGameOver(s, w, h)
	default:
		if s.State == sim.StatePaused {
			r.drawHUD(s, w, h)
		}
		if mv, ok := s.Menu(); ok {
			r.drawMenu(mv, w, h)
		}
	}

	r.screen.Show()
}

// seaColor is the background for the whole frame.
func seaColor(st sim.Settings, now float64) tcell.Color {
	if !st.RainbowWater && !st.PartyMode {
		return seaBG
	}
	c := colorful.Hsv(math.Mod(now*40, 360), 0.6, 0.45)
	cr, cg, cb := c.RGB255()
	return rgb(int32(cr), int32(cg), int32(cb))
}

func (r *Renderer) drawSea(vp Viewport, st sim.Settings, now float64) {
	bg := tcell.StyleDefault.Background(seaColor(st, now))
	for row := 0; row < vp.H; row++ {
		for col := 0; col < vp.W; col++ {
			r.screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	// Ripples sit on a world-fixed lattice so the sea scrolls as the boat moves.
	ripple := bg.Foreground(rippleFG)
	reach := math.Hypot(float64(vp.W), float64(vp.H)*2)/vp.Scale/2 + RippleSpacing
	ox, oz := vp.Origin.X(), vp.Origin.Z()
	ix0, ix1 := int(math.Floor((ox-reach)/RippleSpacing)), int(math.Ceil((ox+reach)/RippleSpacing))
	iz0, iz1 := int(math.Floor((oz-reach)/RippleSpacing)), int(math.Ceil((oz+reach)/RippleSpacing))
	for ix := ix0; ix <= ix1; ix++ {
		for iz := iz0; iz <= iz1; iz++ {
			hsh := latticeHash(ix, iz)
			if hsh%3 != 0 {
				continue
			}
			// Each mark blinks on its own phase.
			if math.Sin(now*1.5+float64(hsh%628)/100) < -0.3 {
				continue
			}
			pos := mgl64.Vec3{float64(ix) * RippleSpacing, 0, float64(iz) * RippleSpacing}
			if col, row, ok := vp.Cell(pos); ok {
				r.screen.SetContent(col, row, '~', nil, ripple)
			}
		}
	}
}

func latticeHash(ix, iz int) uint32 {
	h := uint32(ix)*73856093 ^ uint32(iz)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	return h ^ h>>15
}

func (r *Renderer) drawWorld(s *sim.Session, vp Viewport, now float64) {
	party := s.Settings.PartyMode
	for _, m := range s.Mountains.Mountains() {
		r.drawMountain(vp, m, party)
	}

	for _, e := range s.Enemies.Enemies() {
		col, row, ok := vp.Cell(e.Position)
		if !ok {
			continue
		}
		if !e.Active {
			r.put(col, row, 'x', sunkFG)
			continue
		}
		r.put(col, row, vp.Arrow(mgl64.DegToRad(e.Heading)), enemyFG)
	}

	for _, pr := range s.Projectiles.Projectiles() {
		if !pr.Active {
			continue
		}
		if pr.PlayerOwned {
			if col, row, ok := vp.Cell(pr.Position); ok {
				r.put(col, row, 'o', cannonFG)
			}
			continue
		}
		for _, t := range pr.Trail {
			if col, row, ok := vp.Cell(t); ok {
				r.put(col, row, '·', trailFG)
			}
		}
		if col, row, ok := vp.Cell(pr.Position); ok {
			r.put(col, row, '*', shotFG)
		}
	}

	p := s.Player
	if col, row, ok := vp.Cell(p.Position); ok {
		fg := skinColors[clampSkin(p.BoatSkin())]
		// Blink while invulnerable.
		if p.Invulnerable() && int(now*8)%2 == 0 {
			fg = blueFG
		}
		r.put(col, row, vp.Arrow(math.Atan2(p.Front.X(), p.Front.Z())), fg)
	}

	if s.DebugMountains {
		r.drawColliders(s, vp)
	}
}

// drawMountain fills the island's footprint in rings: foam, sand, grass,
// rock and, on the taller variants, a snow cap.
func (r *Renderer) drawMountain(vp Viewport, m sim.Mountain, party bool) {
	if !m.Active {
		return
	}
	cx, cy, _ := vp.Cell(m.Position)
	rc, rr := vp.Radii(m.Radius)
	rc, rr = max(rc, 0.5), max(rr, 0.5)
	snow := m.Variant >= 3 || party

	for row := cy - int(math.Ceil(rr)); row <= cy+int(math.Ceil(rr)); row++ {
		if row < 0 || row >= vp.H {
			continue
		}
		for col := cx - int(math.Ceil(rc)); col <= cx+int(math.Ceil(rc)); col++ {
			if col < 0 || col >= vp.W {
				continue
			}
			d := math.Hypot(float64(col-cx)/rc, float64(row-cy)/rr)
			if d > 1 {
				continue
			}
			var ch rune
			var st tcell.Style
			switch {
			case d > 0.85:
				ch, st = '~', tcell.StyleDefault.Foreground(foamFG).Background(sandBG)
			case d > 0.65:
				ch, st = '.', tcell.StyleDefault.Foreground(rockBG).Background(sandBG)
			case d > 0.4:
				ch, st = '"', tcell.StyleDefault.Foreground(rgb(40, 90, 35)).Background(grassBG)
			case snow && d < 0.2:
				ch, st = '*', tcell.StyleDefault.Foreground(rockBG).Background(snowBG)
			default:
				ch, st = '^', tcell.StyleDefault.Foreground(rgb(60, 55, 50)).Background(rockBG)
			}
			r.screen.SetContent(col, row, ch, nil, st)
		}
	}
}

func (r *Renderer) drawColliders(s *sim.Session, vp Viewport) {
	cfg := s.Config()
	for _, m := range s.Mountains.Mountains() {
		if m.Active {
			r.ring(vp, m.Position, m.Radius)
		}
	}
	for _, e := range s.Enemies.Enemies() {
		if e.Active {
			r.ring(vp, e.Position, cfg.Session.EnemyHitRadius)
		}
	}
	r.ring(vp, s.Player.Position, cfg.Session.PlayerHitRadius)
	r.ring(vp, s.Player.Position, cfg.Player.HullRadius)
}

// ring outlines a world circle in magenta.
func (r *Renderer) ring(vp Viewport, center mgl64.Vec3, radius float64) {
	cx, cy, _ := vp.Cell(center)
	rc, rr := vp.Radii(radius)
	steps := max(16, int(2*math.Pi*rc*1.5))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col := cx + int(math.Round(rc*math.Cos(a)))
		row := cy + int(math.Round(rr*math.Sin(a)))
		if col >= 0 && col < vp.W && row >= 0 && row < vp.H {
			r.put(col, row, '·', debugFG)
		}
	}
}

// put draws ch in fg over whatever background the cell already has.
func (r *Renderer) put(col, row int, ch rune, fg tcell.Color) {
	_, _, st, _ := r.screen.GetContent(col, row)
	r.screen.SetContent(col, row, ch, nil, st.Foreground(fg).Bold(true))
}

func (r *Renderer) drawHUD(s *sim.Session, w, h int) {
	hud := tcell.StyleDefault.Foreground(textFG).Background(panelBG)
	r.fill(0, w, hud)
	r.fill(h-1, w, hud)

	left := fmt.Sprintf(" Score %d  Sunk %d", s.Score, s.Kills)
	r.text(0, 0, left, hud)
	timer := fmt.Sprintf("%.1fs", s.GameTime)
	r.text((w-len(timer))/2, 0, timer, hud)
	fleet := fmt.Sprintf("Enemies %d/%d  %s ", s.Enemies.ActiveCount(), s.Enemies.MaxEnemies(), s.Difficulty)
	r.text(w-len(fleet), 0, fleet, hud.Foreground(alertFG))

	const barCells = 16
	frac := s.Player.HP.Fraction()
	filled := int(float64(barCells)*frac + 0.5)
	x := r.text(0, h-1, " HULL [", hud)
	x = r.text(x, h-1, strings.Repeat("#", filled), hud.Foreground(healthColor(frac)))
	x = r.text(x, h-1, strings.Repeat(" ", barCells-filled)+"]", hud)
	if s.Player.Invulnerable() {
		r.text(x+1, h-1, "INVULNERABLE", hud.Foreground(blueFG))
	}

	status := "CAM: CHASE "
	if s.FirstPerson {
		status = "CAM: BOW "
	}
	if s.DebugMountains {
		status = "DEBUG  " + status
	}
	r.text(w-len(status), h-1, status, hud.Foreground(hintFG))
}

// healthColor fades from green through yellow to red as the hull weakens.
func healthColor(frac float64) tcell.Color {
	full := colorful.Color{R: 0.4, G: 1, B: 0.4}
	empty := colorful.Color{R: 1, G: 0.3, B: 0.3}
	c := empty.BlendHcl(full, max(0, min(1, frac))).Clamped()
	cr, cg, cb := c.RGB255()
	return rgb(int32(cr), int32(cg), int32(cb))
}

func (r *Renderer) drawGameOver(s *sim.Session, w, h int) {
	lines := []struct {
		text string
		fg   tcell.Color
	}{
		{"GAME OVER", alertFG},
		{fmt.Sprintf("Final Score: %d", s.FinalScore), selectFG},
		{fmt.Sprintf("Sunk %d boats in %.1fs", s.Kills, s.GameTime), textFG},
		{"", textFG},
		{"Press Enter for the main menu", hintFG},
	}
	y := h/2 - len(lines)/2
	for i, l := range lines {
		st := tcell.StyleDefault.Foreground(l.fg).Background(panelBG).Bold(i == 0)
		r.text((w-runewidth.StringWidth(l.text))/2, y+i, l.text, st)
	}
}

func (r *Renderer) drawMenu(mv sim.MenuView, w, h int) {
	rows := make([]string, len(mv.Labels))
	width := runewidth.StringWidth(mv.Title)
	for i, label := range mv.Labels {
		rows[i] = label
		if i < len(mv.Values) && mv.Values[i] != "" {
			rows[i] = fmt.Sprintf("%-14s < %s >", label, mv.Values[i])
		}
		width = max(width, runewidth.StringWidth(rows[i])+2)
	}
	width = max(width, runewidth.StringWidth(mv.Hint))

	boxW, boxH := width+4, len(rows)+6
	x0, y0 := (w-boxW)/2, (h-boxH)/2
	box := tcell.StyleDefault.Foreground(blueFG).Background(panelBG)
	r.box(x0, y0, boxW, boxH, box)

	title := box.Foreground(titleFG).Bold(true)
	r.text(x0+(boxW-runewidth.StringWidth(mv.Title))/2, y0+1, mv.Title, title)
	for i, row := range rows {
		st := box.Foreground(hintFG)
		prefix := "  "
		if i == mv.Selected {
			st = box.Foreground(selectFG).Bold(true)
			prefix = "> "
		}
		r.text(x0+2, y0+3+i, prefix+row, st)
	}
	if mv.Hint != "" {
		r.text(x0+(boxW-runewidth.StringWidth(mv.Hint))/2, y0+boxH-2, mv.Hint, box.Foreground(hintFG))
	}
}

// box draws a bordered panel and clears its interior.
func (r *Renderer) box(x0, y0, w, h int, st tcell.Style) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = tcell.RuneULCorner
			case y == y0 && x == x0+w-1:
				ch = tcell.RuneURCorner
			case y == y0+h-1 && x == x0:
				ch = tcell.RuneLLCorner
			case y == y0+h-1 && x == x0+w-1:
				ch = tcell.RuneLRCorner
			case y == y0 || y == y0+h-1:
				ch = tcell.RuneHLine
			case x == x0 || x == x0+w-1:
				ch = tcell.RuneVLine
			}
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *Renderer) fill(row, w int, st tcell.Style) {
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, row, ' ', nil, st)
	}
}

// text writes s from column x and returns the column after it.
func (r *Renderer) text(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x += max(1, runewidth.RuneWidth(ch))
	}
	return x
}

func clampSkin(i int) int {
	if i < 0 || i >= sim.BoatSkinCount {
		return 0
	}
	return i
}
