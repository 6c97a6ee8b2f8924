package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/landline-sh/landline/term"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   term.RGB
	Bg   term.RGB
	Attr term.Attr
}

// DefaultStyle returns style with zero values (transparent bg)
func DefaultStyle(fg term.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (term.RGB{}) && s.Bg == (term.RGB{}) && s.Attr == term.AttrNone
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src term.RGB, alpha float64) term.RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return term.RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies channels by factor, clamping at 255
func Scale(c term.RGB, factor float64) term.RGB {
	if factor < 0 {
		factor = 0
	}
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return term.RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// toColorful converts term.RGB to a colorful.Color
func toColorful(c term.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts back, clamping out-of-gamut values
func fromColorful(c colorful.Color) term.RGB {
	r, g, b := c.Clamped().RGB255()
	return term.RGB{R: r, G: g, B: b}
}

// Gradient returns n colors interpolated between from and to
// Interpolation happens in Luv space so midpoints stay vivid
func Gradient(from, to term.RGB, n int) []term.RGB {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []term.RGB{from}
	}
	a := toColorful(from)
	b := toColorful(to)
	out := make([]term.RGB, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = fromColorful(a.BlendLuv(b, t))
	}
	return out
}

// GradientAt returns the color at position t (0.0-1.0) between from and to
func GradientAt(from, to term.RGB, t float64) term.RGB {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return fromColorful(toColorful(from).BlendLuv(toColorful(to), t))
}

// TextGradient renders text with a per-rune color ramp
func (r Region) TextGradient(x, y int, s string, from, to term.RGB, bg term.RGB, attr term.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	runes := []rune(s)
	colors := Gradient(from, to, len(runes))
	col := 0
	for i, ch := range runes {
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, colors[i], bg, attr)
		}
		col += RuneWidth(ch)
	}
}
