package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform
type waveShape int

const (
	shapeSine waveShape = iota
	shapeSquare
	shapeSaw
	shapeNoise
)

// tone is a fixed-length single-oscillator streamer
type tone struct {
	freq  float64
	phase float64
	shape waveShape
	rate  beep.SampleRate
	pos   int
	total int
}

func newTone(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		shape: shape,
		rate:  rate,
		total: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, false
		}

		var val float64
		switch t.shape {
		case shapeSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case shapeSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case shapeSaw:
			val = 2.0 * (t.phase - 0.5)
		case shapeNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies linear attack and release ramps to a streamer
type fade struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if f.pos >= f.total {
			return i, false
		}

		vol := 1.0
		if f.attack > 0 && f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		}
		if rem := f.total - f.pos; f.release > 0 && rem < f.release {
			vol = float64(rem) / float64(f.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}

	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// gain wraps a streamer in a log-scaled volume effect.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
