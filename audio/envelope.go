package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fixkernel/vmath"
)

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

// gain returns the envelope level at the current position as a fraction of One
func (e *envelope) gain() vmath.Fixed {
	if e.position < e.attackSamples {
		g, _ := vmath.MulDiv(vmath.One, vmath.Fixed(e.position), vmath.Fixed(e.attackSamples))
		return g
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		remaining := e.totalSamples - e.position
		if remaining <= 0 {
			return 0
		}
		g, _ := vmath.MulDiv(vmath.One, vmath.Fixed(remaining), vmath.Fixed(e.releaseSamples))
		return vmath.Min(g, vmath.One)
	}
	return vmath.One
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rest := e.totalSamples - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := vmath.ToFloat(e.gain())
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
