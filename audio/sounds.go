// Package audio provides the slideshow's feedback tones via the beep
// speaker. Initialization failure is non-fatal: every Play method becomes a
// no-op so the lesson runs silently on machines without audio output.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays short synthesized cues for navigation and quiz feedback
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; call Initialize before playing
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the speaker. Safe to call once; failure leaves the
// manager silent and is returned for logging only.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles all playback without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMuted flips the mute state
func (sm *SoundManager) ToggleMuted() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	ready := sm.initialized && !sm.muted
	sm.mu.Unlock()

	if !ready {
		return
	}
	speaker.Play(s)
}

// PlayNav plays the slide-navigation tick
func (sm *SoundManager) PlayNav() {
	sm.play(NewTone(440, 30*time.Millisecond, WaveSquare, sampleRate))
}

// PlayAdjust plays the slider-adjustment tick
func (sm *SoundManager) PlayAdjust() {
	sm.play(NewTone(660, 20*time.Millisecond, WaveSine, sampleRate))
}

// PlayCorrect plays the quiz pass tone
func (sm *SoundManager) PlayCorrect() {
	sm.play(beep.Seq(
		NewTone(660, 80*time.Millisecond, WaveSine, sampleRate),
		NewTone(880, 120*time.Millisecond, WaveSine, sampleRate),
	))
}

// PlayWrong plays the quiz fail tone
func (sm *SoundManager) PlayWrong() {
	sm.play(NewTone(180, 150*time.Millisecond, WaveSaw, sampleRate))
}
