package tui

import (
	"unicode"

	"github.com/landline-sh/landline/term"
)

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds editable text field state
type TextFieldState struct {
	Text   []rune
	Cursor int // Positions before which cursor sits (0 = before first char)
	Scroll int // First visible rune index
}

// NewTextFieldState creates initialized text field state
func NewTextFieldState(initial string) *TextFieldState {
	runes := []rune(initial)
	return &TextFieldState{
		Text:   runes,
		Cursor: len(runes),
		Scroll: 0,
	}
}

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return string(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = []rune(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Insert adds rune at cursor position
func (t *TextFieldState) Insert(r rune) {
	t.Text = append(t.Text[:t.Cursor], append([]rune{r}, t.Text[t.Cursor:]...)...)
	t.Cursor++
}

// DeleteBackward removes rune before cursor
func (t *TextFieldState) DeleteBackward() bool {
	if t.Cursor > 0 {
		t.Text = append(t.Text[:t.Cursor-1], t.Text[t.Cursor:]...)
		t.Cursor--
		return true
	}
	return false
}

// DeleteForward removes rune at cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes word before cursor
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	// Skip trailing non-word chars
	end := t.Cursor
	for end > 0 && !isWordChar(t.Text[end-1]) {
		end--
	}
	// Skip word chars
	start := end
	for start > 0 && isWordChar(t.Text[start-1]) {
		start--
	}
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToEnd removes from cursor to end
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor < len(t.Text) {
		t.Text = t.Text[:t.Cursor]
		return true
	}
	return false
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor > 0 {
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		t.Scroll = 0
		return true
	}
	return false
}

// MoveLeft moves cursor left
func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

// MoveRight moves cursor right
func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

// MoveWordLeft moves cursor to previous word boundary
func (t *TextFieldState) MoveWordLeft() {
	if t.Cursor == 0 {
		return
	}
	for t.Cursor > 0 && !isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
	for t.Cursor > 0 && isWordChar(t.Text[t.Cursor-1]) {
		t.Cursor--
	}
}

// MoveWordRight moves cursor to next word boundary
func (t *TextFieldState) MoveWordRight() {
	if t.Cursor >= len(t.Text) {
		return
	}
	for t.Cursor < len(t.Text) && isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
	for t.Cursor < len(t.Text) && !isWordChar(t.Text[t.Cursor]) {
		t.Cursor++
	}
}

// MoveToStart moves cursor to beginning
func (t *TextFieldState) MoveToStart() {
	t.Cursor = 0
}

// MoveToEnd moves cursor to end
func (t *TextFieldState) MoveToEnd() {
	t.Cursor = len(t.Text)
}

// AdjustScroll updates scroll to keep cursor visible within viewport width
func (t *TextFieldState) AdjustScroll(viewportW int) {
	if viewportW <= 0 {
		return
	}
	if t.Cursor < t.Scroll {
		t.Scroll = t.Cursor
	}
	if t.Cursor >= t.Scroll+viewportW {
		t.Scroll = t.Cursor - viewportW + 1
	}
	if t.Scroll < 0 {
		t.Scroll = 0
	}
}

// HandleKey processes keyboard input, returns true if state changed
func (t *TextFieldState) HandleKey(key term.Key, r rune, mod term.Modifier) bool {
	switch key {
	case term.KeyLeft:
		if mod&term.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case term.KeyRight:
		if mod&term.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case term.KeyHome, term.KeyCtrlA:
		t.MoveToStart()
		return true
	case term.KeyEnd, term.KeyCtrlE:
		t.MoveToEnd()
		return true
	case term.KeyBackspace:
		if mod&term.ModCtrl != 0 {
			return t.DeleteWordBackward()
		}
		return t.DeleteBackward()
	case term.KeyDelete:
		return t.DeleteForward()
	case term.KeyCtrlK:
		return t.DeleteToEnd()
	case term.KeyCtrlU:
		return t.DeleteToStart()
	case term.KeyCtrlW:
		return t.DeleteWordBackward()
	case term.KeyRune:
		if r >= 32 { // Printable
			t.Insert(r)
			return true
		}
	}
	return false
}
