// Package term provides low-level terminal access for the page runtime.
//
// It wraps tcell behind a small Screen interface with the cell-buffer flush
// model the tui package draws into: the app owns a []Cell frame, renders into
// it each tick, and hands it to Flush. Input arrives as normalized Events
// from a dedicated reader goroutine.
package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen provides low-level terminal access
type Screen interface {
	// Init enters the alternate screen buffer and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes a cell buffer to the terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until the next input event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// EnableMouse turns on mouse reporting (click + motion)
	EnableMouse()

	// HasMouse reports whether the backend supports mouse events
	HasMouse() bool
}

// tcellScreen implements Screen over a tcell.Screen
type tcellScreen struct {
	scr tcell.Screen

	eventCh     chan Event
	syntheticCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
	mouse       bool
}

// New creates a Screen backed by the process terminal
func New() (Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellScreen{
		scr:         scr,
		eventCh:     make(chan Event, 64),
		syntheticCh: make(chan Event, 16),
	}, nil
}

// Init enters the alternate screen and starts the input reader
func (t *tcellScreen) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.scr.Init(); err != nil {
		return err
	}
	t.scr.HideCursor()
	t.scr.Clear()
	t.initialized = true

	// Dedicated reader goroutine. tcell's PollEvent returns nil once the
	// screen is finalized, which terminates the loop.
	Go(func() {
		var last tcell.ButtonMask
		for {
			ev := t.scr.PollEvent()
			if ev == nil {
				t.eventCh <- Event{Type: EventClosed}
				return
			}
			out, ok := convertEvent(ev, &last)
			if ok {
				t.eventCh <- out
			}
		}
	})

	return nil
}

// Fini restores terminal state
func (t *tcellScreen) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.scr.Fini()
}

// Size returns current terminal dimensions
func (t *tcellScreen) Size() (int, int) {
	return t.scr.Size()
}

// Flush writes the cell buffer to the terminal, dropping mismatched frames
// so a resize between render and flush cannot corrupt the screen
func (t *tcellScreen) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	currW, currH := t.scr.Size()
	if currW != width || currH != height {
		return
	}

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.scr.SetContent(x, y, r, nil, c.style())
		}
	}
	t.scr.Show()
}

// PollEvent blocks until the next input event, preferring synthetic events
func (t *tcellScreen) PollEvent() Event {
	select {
	case ev := <-t.syntheticCh:
		return ev
	default:
	}
	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-t.eventCh:
		return ev
	}
}

// PostEvent injects a synthetic event, dropping it if the queue is full
func (t *tcellScreen) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
	}
}

// EnableMouse turns on click and motion reporting
func (t *tcellScreen) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.scr.EnableMouse(tcell.MouseButtonEvents, tcell.MouseMotionEvents)
	t.mouse = true
}

// HasMouse reports whether mouse reporting is active
func (t *tcellScreen) HasMouse() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mouse
}

// style converts a Cell to a tcell.Style
func (c Cell) style() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))

	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
