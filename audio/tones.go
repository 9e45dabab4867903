package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-duration tone with a short linear fade-out so
// clicks do not pop at the cut
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	fade     int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a streamer producing one tone of the given shape
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	fade := rate.N(5 * time.Millisecond)
	if fade > samples/2 {
		fade = samples / 2
	}
	return &oscillator{
		freq:     freq,
		duration: samples,
		fade:     fade,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		// Fade the tail
		if remaining := o.duration - o.position; remaining < o.fade && o.fade > 0 {
			val *= float64(remaining) / float64(o.fade)
		}

		val *= 0.4 // headroom so overlapping tones don't clip
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		if o.phase >= 1.0 {
			o.phase -= 1.0
		}
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}
