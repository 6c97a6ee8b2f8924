package term

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventWake   // Synthetic: frame work is pending (debounce/throttle/async completions)
	EventClosed // Input closed
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlK
	KeyCtrlL
	KeyCtrlR
	KeyCtrlU
	KeyCtrlW

	KeyF5
)

// Modifier represents modifier key state (bitmask)
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	Width  int // For EventResize
	Height int // For EventResize

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction

	// Wake carries an opaque tag so the loop can tell wake sources apart
	WakeTag string
}

// convertEvent normalizes a tcell event. last tracks the previous button
// mask so press and release can be distinguished from plain motion.
func convertEvent(ev tcell.Event, last *tcell.ButtonMask) (Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		out := Event{Type: EventKey, Modifiers: convertMods(tev.Modifiers())}
		switch tev.Key() {
		case tcell.KeyRune:
			out.Key = KeyRune
			out.Rune = tev.Rune()
		case tcell.KeyUp:
			out.Key = KeyUp
		case tcell.KeyDown:
			out.Key = KeyDown
		case tcell.KeyLeft:
			out.Key = KeyLeft
		case tcell.KeyRight:
			out.Key = KeyRight
		case tcell.KeyHome:
			out.Key = KeyHome
		case tcell.KeyEnd:
			out.Key = KeyEnd
		case tcell.KeyPgUp:
			out.Key = KeyPageUp
		case tcell.KeyPgDn:
			out.Key = KeyPageDown
		case tcell.KeyEnter:
			out.Key = KeyEnter
		case tcell.KeyEscape:
			out.Key = KeyEscape
		case tcell.KeyTab:
			out.Key = KeyTab
		case tcell.KeyBacktab:
			out.Key = KeyBacktab
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			out.Key = KeyBackspace
		case tcell.KeyDelete:
			out.Key = KeyDelete
		case tcell.KeyCtrlA:
			out.Key = KeyCtrlA
		case tcell.KeyCtrlC:
			out.Key = KeyCtrlC
		case tcell.KeyCtrlE:
			out.Key = KeyCtrlE
		case tcell.KeyCtrlK:
			out.Key = KeyCtrlK
		case tcell.KeyCtrlL:
			out.Key = KeyCtrlL
		case tcell.KeyCtrlR:
			out.Key = KeyCtrlR
		case tcell.KeyCtrlU:
			out.Key = KeyCtrlU
		case tcell.KeyCtrlW:
			out.Key = KeyCtrlW
		case tcell.KeyF5:
			out.Key = KeyF5
		default:
			return Event{}, false
		}
		return out, true

	case *tcell.EventMouse:
		x, y := tev.Position()
		buttons := tev.Buttons()
		out := Event{Type: EventMouse, MouseX: x, MouseY: y}

		switch {
		case buttons&tcell.WheelUp != 0:
			out.MouseBtn = MouseBtnWheelUp
			out.MouseAction = MouseActionPress
		case buttons&tcell.WheelDown != 0:
			out.MouseBtn = MouseBtnWheelDown
			out.MouseAction = MouseActionPress
		case buttons&tcell.Button1 != 0 && *last&tcell.Button1 == 0:
			out.MouseBtn = MouseBtnLeft
			out.MouseAction = MouseActionPress
		case buttons&tcell.Button1 == 0 && *last&tcell.Button1 != 0:
			out.MouseBtn = MouseBtnLeft
			out.MouseAction = MouseActionRelease
		default:
			out.MouseAction = MouseActionMove
		}
		*last = buttons &^ (tcell.WheelUp | tcell.WheelDown)
		return out, true
	}

	return Event{}, false
}

// convertMods maps tcell modifier masks to term modifiers
func convertMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
