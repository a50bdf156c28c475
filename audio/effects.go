package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fixkernel/vmath"
)

// Tone describes a single shaped note
type Tone struct {
	Freq     vmath.Fixed
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     WaveType
	Volume   float64 // linear, 1 = unity
}

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTone builds the oscillator, envelope and volume chain for t
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.Freq, t.Duration, t.Wave, rate)
	shaped := NewEnvelope(osc, t.Duration, t.Attack, t.Release, rate)
	return newVolume(shaped, t.Volume)
}

// NewBell mixes a sine fundamental with a faster-decaying octave overtone
func NewBell(freq vmath.Fixed, duration time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	attack := 5 * time.Millisecond

	fund := NewTone(Tone{Freq: freq, Duration: duration, Attack: attack, Release: duration * 3 / 4, Wave: WaveSine, Volume: 0.7}, rate)
	over := NewTone(Tone{Freq: 2 * freq, Duration: duration, Attack: attack, Release: duration / 3, Wave: WaveSine, Volume: 0.3}, rate)

	return newVolume(beep.Mix(fund, over), vol)
}

// NewArpeggio plays the MIDI notes in sequence, each for step
func NewArpeggio(notes []int, step time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(Tone{
			Freq:     NoteFreq(n),
			Duration: step,
			Attack:   step / 10,
			Release:  step / 2,
			Wave:     wave,
			Volume:   1,
		}, rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}
