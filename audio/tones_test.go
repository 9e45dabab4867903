package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls every sample out of a streamer, returning the total count and
// the peak absolute amplitude
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestToneDuration verifies the streamer produces exactly the requested samples
func TestToneDuration(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		tone := NewTone(440, 50*time.Millisecond, wave, sampleRate)
		total, _ := drain(tone)

		want := sampleRate.N(50 * time.Millisecond)
		if total != want {
			t.Errorf("wave %d: expected %d samples, got %d", wave, want, total)
		}
	}
}

// TestToneHeadroom verifies amplitude stays below full scale so overlapping
// cues cannot clip the mixer
func TestToneHeadroom(t *testing.T) {
	tone := NewTone(880, 30*time.Millisecond, WaveSquare, sampleRate)
	_, peak := drain(tone)

	if peak == 0 {
		t.Fatal("Expected non-silent tone")
	}
	if peak > 0.5 {
		t.Errorf("Expected peak <= 0.5, got %v", peak)
	}
}

// TestToneExhausted verifies a drained streamer stays finished
func TestToneExhausted(t *testing.T) {
	tone := NewTone(440, 10*time.Millisecond, WaveSine, sampleRate)
	drain(tone)

	buf := make([][2]float64, 16)
	n, ok := tone.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Expected exhausted streamer, got n=%d ok=%v", n, ok)
	}
}

// TestSoundManagerSilentWithoutInit verifies Play methods are no-ops before
// Initialize so a failed audio setup cannot panic the slideshow
func TestSoundManagerSilentWithoutInit(t *testing.T) {
	sm := NewSoundManager()

	sm.PlayNav()
	sm.PlayAdjust()
	sm.PlayCorrect()
	sm.PlayWrong()
	sm.SetMuted(true)
	sm.Cleanup()
}
