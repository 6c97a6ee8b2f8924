package tui

import "github.com/landline-sh/landline/term"

// TextFieldOpts configures text field rendering
type TextFieldOpts struct {
	Placeholder string   // Shown when empty
	Prefix      string   // Left prompt (e.g., "> ")
	MaxLen      int      // Max runes, 0 = unlimited
	Border      LineType // Border style, LineNone = no border
	Focused     bool     // Show cursor and accept input
	Invalid     bool     // Render in error colors
	Style       TextFieldStyle
}

// TextFieldStyle defines text field colors
type TextFieldStyle struct {
	TextFg        term.RGB
	TextBg        term.RGB
	CursorFg      term.RGB
	CursorBg      term.RGB
	PlaceholderFg term.RGB
	PrefixFg      term.RGB
	BorderFg      term.RGB
	ErrorFg       term.RGB
}

// DefaultTextFieldStyle returns default colors
func DefaultTextFieldStyle() TextFieldStyle {
	return TextFieldStyle{
		TextFg:        term.RGB{R: 220, G: 220, B: 220},
		TextBg:        term.RGB{R: 30, G: 30, B: 40},
		CursorFg:      term.RGB{R: 0, G: 0, B: 0},
		CursorBg:      term.RGB{R: 200, G: 200, B: 200},
		PlaceholderFg: term.RGB{R: 100, G: 100, B: 110},
		PrefixFg:      term.RGB{R: 150, G: 150, B: 180},
		BorderFg:      term.RGB{R: 80, G: 80, B: 100},
		ErrorFg:       term.RGB{R: 255, G: 80, B: 80},
	}
}

// TextField renders text field and returns content height used
func (r Region) TextField(state *TextFieldState, opts TextFieldOpts) int {
	if r.W < 3 || r.H < 1 {
		return 0
	}

	style := opts.Style
	if style == (TextFieldStyle{}) {
		style = DefaultTextFieldStyle()
	}

	borderFg := style.BorderFg
	if opts.Invalid {
		borderFg = style.ErrorFg
	}

	// Calculate content area
	contentY := 0
	contentX := 0
	contentW := r.W
	contentH := 1

	if opts.Border != LineNone {
		if r.H < 3 {
			return 0
		}
		r.Box(opts.Border, borderFg)
		contentY = 1
		contentX = 1
		contentW = r.W - 2
		contentH = r.H - 2
		if contentH > 1 {
			contentH = 1
		}
	}

	// Fill background
	for x := contentX; x < contentX+contentW; x++ {
		r.Cell(x, contentY, ' ', style.TextFg, style.TextBg, term.AttrNone)
	}

	x := contentX

	// Prefix
	if opts.Prefix != "" {
		for _, ch := range opts.Prefix {
			if x >= contentX+contentW {
				break
			}
			r.Cell(x, contentY, ch, style.PrefixFg, style.TextBg, term.AttrNone)
			x++
		}
	}

	// Calculate viewport
	viewportW := contentX + contentW - x
	if viewportW < 1 {
		if opts.Border != LineNone {
			return 3
		}
		return 1
	}

	// Adjust scroll
	state.AdjustScroll(viewportW)

	// Render text or placeholder
	text := state.Text
	isEmpty := len(text) == 0

	if isEmpty && opts.Placeholder != "" && !opts.Focused {
		// Placeholder
		placeholder := opts.Placeholder
		if StringWidth(placeholder) > viewportW {
			placeholder = Truncate(placeholder, viewportW)
		}
		for i, ch := range []rune(placeholder) {
			if x+i >= contentX+contentW {
				break
			}
			r.Cell(x+i, contentY, ch, style.PlaceholderFg, style.TextBg, term.AttrDim)
		}
	} else {
		// Scroll indicators
		if state.Scroll > 0 && x > contentX {
			r.Cell(x-1, contentY, '◀', style.PlaceholderFg, style.TextBg, term.AttrNone)
		}

		// Text content
		for i := 0; i < viewportW; i++ {
			runeIdx := state.Scroll + i
			ch := ' '
			if runeIdx < len(text) {
				ch = text[runeIdx]
			}

			fg := style.TextFg
			bg := style.TextBg

			// Cursor highlighting
			if opts.Focused && runeIdx == state.Cursor {
				fg = style.CursorFg
				bg = style.CursorBg
			}

			r.Cell(x+i, contentY, ch, fg, bg, term.AttrNone)
		}

		// Cursor at end
		if opts.Focused && state.Cursor == len(text) {
			cursorX := x + state.Cursor - state.Scroll
			if cursorX >= x && cursorX < contentX+contentW {
				r.Cell(cursorX, contentY, ' ', style.CursorFg, style.CursorBg, term.AttrNone)
			}
		}

		// Right scroll indicator
		if state.Scroll+viewportW < len(text) {
			r.Cell(contentX+contentW-1, contentY, '▶', style.PlaceholderFg, style.TextBg, term.AttrNone)
		}
	}

	if opts.Border != LineNone {
		return 3
	}
	return 1
}
