package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/astrobits/constants"
)

// envelope applies attack/release shaping to a stream and ends it after
// the given duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(rate beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only frequencies at or above Nyquist fail
		return beep.Silence(-1)
	}
	return s
}

// SpawnFrequency maps body mass to pitch, one octave-ish lower per decade
func SpawnFrequency(mass float64) float64 {
	if mass < 1 {
		mass = 1
	}
	return constants.SpawnSoundBaseFreq / (1 + math.Log10(mass))
}

// CreateSpawnSound is a short ping pitched by the spawned mass
func CreateSpawnSound(rate beep.SampleRate, mass float64) beep.Streamer {
	s := NewEnvelope(tone(rate, SpawnFrequency(mass)),
		constants.SpawnSoundDuration, constants.SpawnSoundAttack, constants.SpawnSoundRelease, rate)
	return newVolume(s, constants.AudioMasterVolume)
}

// CreateAbsorbSound is a low thud with a fifth above it
func CreateAbsorbSound(rate beep.SampleRate) beep.Streamer {
	mixed := beep.Mix(
		newVolume(tone(rate, constants.AbsorbSoundFreq), 0.7),
		newVolume(tone(rate, constants.AbsorbSoundFreq*1.5), 0.3),
	)
	s := NewEnvelope(mixed,
		constants.AbsorbSoundDuration, constants.AbsorbSoundAttack, constants.AbsorbSoundRelease, rate)
	return newVolume(s, constants.AudioMasterVolume)
}

// CreateToggleSound is a click used for button and key toggles
func CreateToggleSound(rate beep.SampleRate) beep.Streamer {
	s := NewEnvelope(tone(rate, constants.ToggleSoundFreq),
		constants.ToggleSoundDuration, constants.ToggleSoundAttack, constants.ToggleSoundRelease, rate)
	return newVolume(s, constants.AudioMasterVolume*0.5)
}
