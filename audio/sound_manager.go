package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/astrobits/constants"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays the simulation's sound effects
// Every method is safe to call before Initialize, after Cleanup, or when
// muted; audio is optional and never fails the game
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker; a muted manager never touches the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted silences or restores effects without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Active reports whether effects currently reach the speaker
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlaySpawn plays the spawn ping for a body of the given mass
func (sm *SoundManager) PlaySpawn(mass float64) {
	sm.play(func() beep.Streamer { return CreateSpawnSound(sampleRate, mass) })
}

// PlayAbsorb plays the absorption thud
func (sm *SoundManager) PlayAbsorb() {
	sm.play(func() beep.Streamer { return CreateAbsorbSound(sampleRate) })
}

// PlayToggle plays the toggle click
func (sm *SoundManager) PlayToggle() {
	sm.play(func() beep.Streamer { return CreateToggleSound(sampleRate) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	// The mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(build())
	speaker.Unlock()
}
