package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// floats returns the colour as normalised GL components.
func (c RGB) floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Hue returns a fully saturated colour for h in turns (0..1 wraps).
func Hue(h float64) RGB {
	h = h - math.Floor(h)
	x := h * 6
	f := x - math.Floor(x)
	q := uint8(255 * (1 - f))
	t := uint8(255 * f)
	switch int(x) % 6 {
	case 0:
		return RGB{R: 255, G: t, B: 0}
	case 1:
		return RGB{R: q, G: 255, B: 0}
	case 2:
		return RGB{R: 0, G: 255, B: t}
	case 3:
		return RGB{R: 0, G: q, B: 255}
	case 4:
		return RGB{R: t, G: 0, B: 255}
	default:
		return RGB{R: 255, G: 0, B: q}
	}
}

var Palette = struct {
	Sea        RGB
	SeaDeep    RGB
	Ripple     RGB
	Foam       RGB
	Sand       RGB
	Rock       RGB
	Grass      RGB
	Snow       RGB
	EnemyHull  RGB
	EnemyDeck  RGB
	Cannonball RGB
	EnemyShot  RGB
	Debug      RGB
	Smoke      RGB
	Glow       RGB
	FireHot    RGB
	FireMid    RGB
	FireCool   RGB
}{
	Sea:        RGB{R: 28, G: 92, B: 142},
	SeaDeep:    RGB{R: 18, G: 62, B: 104},
	Ripple:     RGB{R: 70, G: 140, B: 190},
	Foam:       RGB{R: 225, G: 240, B: 250},
	Sand:       RGB{R: 214, G: 190, B: 140},
	Rock:       RGB{R: 104, G: 98, B: 92},
	Grass:      RGB{R: 90, G: 130, B: 70},
	Snow:       RGB{R: 240, G: 240, B: 245},
	EnemyHull:  RGB{R: 70, G: 40, B: 30},
	EnemyDeck:  RGB{R: 170, G: 60, B: 50},
	Cannonball: RGB{R: 30, G: 30, B: 34},
	EnemyShot:  RGB{R: 255, G: 120, B: 40},
	Debug:      RGB{R: 255, G: 60, B: 200},
	Smoke:      RGB{R: 120, G: 120, B: 125},
	Glow:       RGB{R: 255, G: 200, B: 90},
	FireHot:    RGB{R: 255, G: 210, B: 110},
	FireMid:    RGB{R: 255, G: 150, B: 70},
	FireCool:   RGB{R: 190, G: 70, B: 45},
}

// BoatColors holds hull and deck colours indexed by boat skin, in the order
// Thousand Sunny, Black Beard, Gol D. Roger, Buggy Clown, Big Mom, Going Merry.
var BoatColors = [...][2]RGB{
	{{R: 250, G: 200, B: 60}, {R: 90, G: 170, B: 80}},
	{{R: 30, G: 30, B: 36}, {R: 120, G: 30, B: 40}},
	{{R: 120, G: 70, B: 40}, {R: 230, G: 230, B: 220}},
	{{R: 210, G: 40, B: 50}, {R: 250, G: 220, B: 90}},
	{{R: 240, G: 120, B: 180}, {R: 250, G: 230, B: 240}},
	{{R: 200, G: 160, B: 110}, {R: 250, G: 250, B: 250}},
}
