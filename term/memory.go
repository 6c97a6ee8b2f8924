package term

import "sync"

// MemoryScreen is an in-memory Screen for tests. It records flushed frames
// and serves events from a queue the test fills with PostEvent.
type MemoryScreen struct {
	mu sync.Mutex

	width  int
	height int

	cells [][]Cell // Flushed frames, oldest first

	events chan Event

	initialized bool
	finalized   bool
	mouse       bool
}

// NewMemoryScreen creates a memory screen with fixed dimensions
func NewMemoryScreen(width, height int) *MemoryScreen {
	return &MemoryScreen{
		width:  width,
		height: height,
		events: make(chan Event, 256),
	}
}

// Init marks the screen initialized
func (m *MemoryScreen) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialized = true
	return nil
}

// Fini marks the screen finalized
func (m *MemoryScreen) Fini() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finalized = true
}

// Size returns the configured dimensions
func (m *MemoryScreen) Size() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Resize changes the reported dimensions
func (m *MemoryScreen) Resize(width, height int) {
	m.mu.Lock()
	m.width = width
	m.height = height
	m.mu.Unlock()
	m.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Flush records a copy of the frame
func (m *MemoryScreen) Flush(cells []Cell, width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if width != m.width || height != m.height {
		return
	}
	frame := make([]Cell, len(cells))
	copy(frame, cells)
	m.cells = append(m.cells, frame)
}

// PollEvent blocks until the next queued event
func (m *MemoryScreen) PollEvent() Event {
	return <-m.events
}

// PostEvent queues an event for PollEvent
func (m *MemoryScreen) PostEvent(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// EnableMouse records that mouse reporting was requested
func (m *MemoryScreen) EnableMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = true
}

// HasMouse reports whether EnableMouse was called
func (m *MemoryScreen) HasMouse() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse
}

// FrameCount returns the number of flushed frames
func (m *MemoryScreen) FrameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cells)
}

// LastFrame returns the most recently flushed frame, or nil
func (m *MemoryScreen) LastFrame() []Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.cells) == 0 {
		return nil
	}
	return m.cells[len(m.cells)-1]
}

// FrameText renders the last frame as lines of text, for assertions
func (m *MemoryScreen) FrameText() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.cells) == 0 {
		return nil
	}
	frame := m.cells[len(m.cells)-1]
	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]rune, m.width)
		for x := 0; x < m.width; x++ {
			r := frame[y*m.width+x].Rune
			if r == 0 {
				r = ' '
			}
			row[x] = r
		}
		lines[y] = string(row)
	}
	return lines
}
