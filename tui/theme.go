package tui

import "github.com/landline-sh/landline/term"

// Theme defines semantic colors for page components
type Theme struct {
	Bg      term.RGB
	Surface term.RGB // Card and panel backgrounds
	Fg      term.RGB
	Muted   term.RGB

	Accent    term.RGB // Primary brand color
	AccentAlt term.RGB // Secondary brand color, gradient endpoint

	Border   term.RGB
	HeaderBg term.RGB
	HeaderFg term.RGB
	HintFg   term.RGB
	InputBg  term.RGB

	Success term.RGB
	Warning term.RGB
	Error   term.RGB

	CursorFg term.RGB
	CursorBg term.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:        term.RGB{R: 10, G: 10, B: 18},
	Surface:   term.RGB{R: 22, G: 22, B: 34},
	Fg:        term.RGB{R: 210, G: 210, B: 220},
	Muted:     term.RGB{R: 110, G: 115, B: 130},
	Accent:    term.RGB{R: 0, G: 220, B: 200},
	AccentAlt: term.RGB{R: 170, G: 80, B: 255},
	Border:    term.RGB{R: 55, G: 60, B: 85},
	HeaderBg:  term.RGB{R: 16, G: 16, B: 26},
	HeaderFg:  term.RGB{R: 235, G: 235, B: 245},
	HintFg:    term.RGB{R: 100, G: 180, B: 200},
	InputBg:   term.RGB{R: 28, G: 28, B: 44},
	Success:   term.RGB{R: 80, G: 220, B: 120},
	Warning:   term.RGB{R: 255, G: 200, B: 60},
	Error:     term.RGB{R: 255, G: 80, B: 80},
	CursorFg:  term.RGB{R: 0, G: 0, B: 0},
	CursorBg:  term.RGB{R: 200, G: 200, B: 200},
}
