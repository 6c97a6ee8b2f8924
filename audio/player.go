package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker and mixes short synthesized cues into it.
// Construction never touches the audio device; Init does, and a failed
// Init leaves the player permanently silent. Every method is safe to
// call on an uninitialized or disabled player.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	ready   bool
}

// NewPlayer creates a player. Cues only ever sound when enabled is true
// and Init later succeeds.
func NewPlayer(enabled bool) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Init opens the audio device and starts the mixer. It is a no-op when
// the player is disabled or already running. Repeated calls are safe.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues a cue for playback. Silent no-op when the player never
// initialized.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	s := cueStreamer(c)
	if s == nil {
		return
	}
	p.mixer.Add(s)
}

// Enabled reports whether cues were requested in configuration
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close stops all pending cues. The speaker itself stays open, an empty
// mixer just streams silence.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	p.mixer.Clear()
	p.ready = false
}
