package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 1.0 is unity gain
	AudioMasterVolume = 0.4
)

// Spawn Sound Timing
const (
	SpawnSoundDuration = 120 * time.Millisecond
	SpawnSoundAttack   = 5 * time.Millisecond
	SpawnSoundRelease  = 80 * time.Millisecond

	// SpawnSoundBaseFreq is the pitch of a unit-mass body; heavier bodies sound lower
	SpawnSoundBaseFreq = 880.0
)

// Absorb Sound Timing
const (
	AbsorbSoundDuration = 350 * time.Millisecond
	AbsorbSoundAttack   = 10 * time.Millisecond
	AbsorbSoundRelease  = 300 * time.Millisecond
	AbsorbSoundFreq     = 110.0
)

// Toggle Sound Timing
const (
	ToggleSoundDuration = 60 * time.Millisecond
	ToggleSoundAttack   = 2 * time.Millisecond
	ToggleSoundRelease  = 30 * time.Millisecond
	ToggleSoundFreq     = 660.0
)
