package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies one of the page's synthesized audio cues
type Cue int

const (
	CueReady   Cue = iota // Content landed, loading screen gone
	CueSuccess            // Contact form accepted
	CueFailure            // Validation or submission failure
)

const (
	sampleRate   = beep.SampleRate(44100)
	masterVolume = 0.3

	cueAttack = 5 * time.Millisecond
)

// readyCue is a soft ascending pair, played once the page content lands
func readyCue() beep.Streamer {
	low := newFade(
		newTone(659.25, 90*time.Millisecond, shapeSine, sampleRate),
		90*time.Millisecond, cueAttack, 50*time.Millisecond, sampleRate)
	high := newFade(
		newTone(987.77, 130*time.Millisecond, shapeSine, sampleRate),
		130*time.Millisecond, cueAttack, 90*time.Millisecond, sampleRate)
	return gain(beep.Seq(low, high), masterVolume)
}

// successCue is a two-note chime acknowledging a sent message
func successCue() beep.Streamer {
	n1 := newFade(
		newTone(880.0, 80*time.Millisecond, shapeSine, sampleRate),
		80*time.Millisecond, cueAttack, 40*time.Millisecond, sampleRate)
	n2 := newFade(
		newTone(1318.51, 150*time.Millisecond, shapeSine, sampleRate),
		150*time.Millisecond, cueAttack, 110*time.Millisecond, sampleRate)
	return gain(beep.Seq(n1, n2), masterVolume)
}

// failureCue is a short low buzz for rejected input
func failureCue() beep.Streamer {
	buzz := newFade(
		newTone(110.0, 180*time.Millisecond, shapeSaw, sampleRate),
		180*time.Millisecond, cueAttack, 120*time.Millisecond, sampleRate)
	return gain(buzz, masterVolume*0.8)
}

// cueStreamer builds a fresh one-shot streamer for the given cue
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueReady:
		return readyCue()
	case CueSuccess:
		return successCue()
	case CueFailure:
		return failureCue()
	default:
		return nil
	}
}
