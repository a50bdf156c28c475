package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fixkernel/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	case WaveTriangle:
		return "triangle"
	}
	return "unknown"
}

// ParseWave maps a wave name to its WaveType
func ParseWave(s string) (WaveType, bool) {
	for w := WaveSine; w <= WaveTriangle; w++ {
		if w.String() == s {
			return w, true
		}
	}
	return 0, false
}

// oscillator generates a waveform from a Q32.32 phase accumulator in radians
// The sample sequence depends only on freq, rate and wave, bit for bit on every platform
type oscillator struct {
	phase    vmath.Fixed
	step     vmath.Fixed
	duration int
	position int
	wave     WaveType
	err      error
}

// NewOscillator creates an oscillator at freq Hz lasting duration
// A frequency the accumulator cannot represent surfaces through Err after the first Stream
func NewOscillator(freq vmath.Fixed, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	// step = 2π·freq/rate radians per sample
	step, err := vmath.MulDiv(freq, vmath.TwoPi, vmath.FromInt(int32(rate)))
	return &oscillator{
		step:     step,
		duration: rate.N(duration),
		wave:     wave,
		err:      err,
	}
}

func (o *oscillator) sample() vmath.Fixed {
	switch o.wave {
	case WaveSquare:
		if o.phase < vmath.Pi {
			return vmath.One
		}
		return -vmath.One
	case WaveSaw:
		// phase/π - 1, rising from -1 to 1
		s, _ := vmath.Div(o.phase, vmath.Pi)
		return s - vmath.One
	case WaveTriangle:
		// 1 - 2·|phase/π - 1|
		s, _ := vmath.Div(o.phase, vmath.Pi)
		return vmath.One - 2*vmath.Abs(s-vmath.One)
	}
	return vmath.Sin(o.phase)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.err != nil {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := vmath.ToFloat(vmath.Clamp(o.sample(), -vmath.One, vmath.One))
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, kept in [0, 2π)
		next, err := vmath.Mod(o.phase+o.step, vmath.TwoPi)
		if err != nil {
			o.err = err
			return i + 1, true
		}
		if next == vmath.TwoPi {
			next = 0
		}
		o.phase = next
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return o.err }
