package tui

import "github.com/landline-sh/landline/term"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Progress bar characters
const (
	progressFull  = '█'
	progressEmpty = '░'
	progressHalf  = '▌'
)

// Spinner frames
var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, fg, bg term.RGB, attr term.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		w := RuneWidth(ch)
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
		}
		col += w
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg term.RGB, attr term.Attr) {
	x := r.W - StringWidth(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg term.RGB, attr term.Attr) {
	x := (r.W - StringWidth(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}

// Box draws border around region edge
func (r Region) Box(line LineType, fg term.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := term.RGB{} // Transparent (use existing bg)

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, bg, term.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, term.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, term.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, term.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, term.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, term.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, term.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, term.AttrNone)
	}
}

// BoxFilled draws border and fills interior with background
func (r Region) BoxFilled(line LineType, fg, bg term.RGB) {
	// Fill interior first
	for y := 1; y < r.H-1; y++ {
		for x := 1; x < r.W-1; x++ {
			r.Cell(x, y, ' ', fg, bg, term.AttrNone)
		}
	}
	// Draw border on top
	r.Box(line, fg)
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg term.RGB) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		maxTitleLen := r.W - 4
		displayTitle := title
		if StringWidth(displayTitle) > maxTitleLen {
			displayTitle = Truncate(displayTitle, maxTitleLen)
		}
		titleX := (r.W - StringWidth(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", fg, term.RGB{}, term.AttrBold)
	}

	return r.Inset(1)
}

// Divider draws horizontal line with optional centered label
func (r Region) Divider(y int, label string, line LineType, fg term.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	hChar := boxChars[line][boxH]

	// Fill with horizontal line
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, hChar, fg, term.RGB{}, term.AttrNone)
	}

	// Center label if provided
	if label != "" && r.W > 4 {
		text := " " + label + " "
		textLen := StringWidth(text)
		if textLen > r.W-2 {
			text = Truncate(text, r.W-2)
			textLen = StringWidth(text)
		}
		startX := (r.W - textLen) / 2
		for i, ch := range []rune(text) {
			r.Cell(startX+i, y, ch, fg, term.RGB{}, term.AttrBold)
		}
	}
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, line LineType, fg term.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, fg, term.RGB{}, term.AttrNone)
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x int, line LineType, fg term.RGB) {
	if x < 0 || x >= r.W {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxV]
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, fg, term.RGB{}, term.AttrNone)
	}
}

// Progress draws horizontal progress bar (0.0-1.0)
func (r Region) Progress(x, y, w int, pct float64, fg, bg term.RGB) {
	if y < 0 || y >= r.H || w <= 0 {
		return
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	for i := 0; i < w; i++ {
		if x+i >= r.W {
			break
		}
		var ch rune
		if i < filled {
			ch = progressFull
		} else if i == filled && remainder >= 0.5 {
			ch = progressHalf
		} else {
			ch = progressEmpty
		}
		r.Cell(x+i, y, ch, fg, bg, term.AttrNone)
	}
}

// Spinner draws spinner character based on frame counter
func (r Region) Spinner(x, y int, frame int, fg term.RGB) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	idx := frame % len(spinnerFrames)
	if idx < 0 {
		idx = -idx
	}
	r.Cell(x, y, spinnerFrames[idx], fg, term.RGB{}, term.AttrNone)
}

// ScrollBar draws vertical scrollbar track with thumb
func ScrollBar(r Region, x int, offset, visible, total int, fg term.RGB) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		// No scrolling needed or track too small
		for y := 0; y < trackH; y++ {
			r.Cell(x, y, '│', fg, term.RGB{}, term.AttrDim)
		}
		return
	}

	// Calculate thumb size and position
	thumbH := (visible * trackH) / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	// Draw track and thumb
	for y := 0; y < trackH; y++ {
		var ch rune
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		} else {
			ch = '░'
		}
		r.Cell(x, y, ch, fg, term.RGB{}, term.AttrNone)
	}
}
