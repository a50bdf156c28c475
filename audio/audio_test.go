package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixkernel/vmath"
)

const rate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

// TestOscillatorSine compares the fixed-point sine against math.Sin
func TestOscillatorSine(t *testing.T) {
	freq := vmath.FromInt(440)
	samples := drain(t, NewOscillator(freq, 100*time.Millisecond, WaveSine, rate))
	require.Len(t, samples, rate.N(100*time.Millisecond))

	for i, s := range samples {
		want := math.Sin(2 * math.Pi * 440 * float64(i) / float64(rate))
		// Phase accumulates one truncated step per sample
		require.InDelta(t, want, s[0], 1e-5, "sample %d", i)
		require.Equal(t, s[0], s[1])
	}
}

// TestOscillatorDeterministic checks that two runs produce identical bits
func TestOscillatorDeterministic(t *testing.T) {
	freq := vmath.FromFloat(261.63)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		a := drain(t, NewOscillator(freq, 20*time.Millisecond, w, rate))
		b := drain(t, NewOscillator(freq, 20*time.Millisecond, w, rate))
		require.Equal(t, a, b, w.String())
	}
}

func TestOscillatorShapes(t *testing.T) {
	// 1 Hz, so the sample rate is the number of phase steps per cycle
	tests := []struct {
		wave WaveType
		rate beep.SampleRate
		want []float64
	}{
		// Odd step count keeps samples off the π boundary
		{WaveSquare, 7, []float64{1, 1, 1, 1, -1, -1, -1}},
		{WaveSaw, 8, []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75}},
		{WaveTriangle, 8, []float64{-1, -0.5, 0, 0.5, 1, 0.5, 0, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.wave.String(), func(t *testing.T) {
			samples := drain(t, NewOscillator(vmath.One, time.Second, tt.wave, tt.rate))
			require.Len(t, samples, len(tt.want))
			for i, s := range samples {
				require.InDelta(t, tt.want[i], s[0], 1e-6, "sample %d", i)
			}
		})
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		for _, s := range drain(t, NewOscillator(vmath.FromFloat(997.5), 50*time.Millisecond, w, rate)) {
			require.GreaterOrEqual(t, s[0], -1.0)
			require.LessOrEqual(t, s[0], 1.0)
		}
	}
}

func TestParseWave(t *testing.T) {
	w, ok := ParseWave("triangle")
	require.True(t, ok)
	require.Equal(t, WaveTriangle, w)

	_, ok = ParseWave("noise")
	require.False(t, ok)
}

// constStreamer emits 1.0 forever
type constStreamer struct{}

func (constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

func TestEnvelope(t *testing.T) {
	r := beep.SampleRate(100)
	env := NewEnvelope(constStreamer{}, time.Second, 100*time.Millisecond, 200*time.Millisecond, r)
	samples := drain(t, env)
	require.Len(t, samples, 100)

	// Attack ramps from 0
	require.Equal(t, 0.0, samples[0][0])
	require.InDelta(t, 0.5, samples[5][0], 1e-9)
	// Sustain at unity
	require.Equal(t, 1.0, samples[50][0])
	// Release ramps down to the last sample
	require.InDelta(t, 0.5, samples[90][0], 1e-9)
	require.InDelta(t, 0.05, samples[99][0], 1e-9)
}

func TestNoteFreq(t *testing.T) {
	require.InDelta(t, 440.0, vmath.ToFloat(NoteFreq(69)), 1e-6)
	require.InDelta(t, 880.0, vmath.ToFloat(NoteFreq(81)), 1e-6)
	require.InDelta(t, 261.6256, vmath.ToFloat(NoteFreq(60)), 1e-3)
	require.InDelta(t, 8.1758, vmath.ToFloat(NoteFreq(0)), 1e-3)
	require.InDelta(t, 12543.854, vmath.ToFloat(NoteFreq(127)), 1e-2)

	// Octaves are exact doublings of the A4 row
	require.Equal(t, vmath.FromInt(440), NoteFreq(69))
	require.Equal(t, vmath.FromInt(55), NoteFreq(33))
	for n := 12; n < 128; n++ {
		lo, hi := NoteFreq(n-12), NoteFreq(n)
		require.True(t, hi > lo, "note %d", n)
		if n >= 81 {
			require.Equal(t, 2*lo, hi, "note %d", n)
		}
	}
	require.Equal(t, vmath.Fixed(0), NoteFreq(128))
	require.Equal(t, vmath.Fixed(0), NoteFreq(-1))
}

func TestToneChains(t *testing.T) {
	bell := drain(t, NewBell(NoteFreq(81), 200*time.Millisecond, 0.5, rate))
	require.Len(t, bell, rate.N(200*time.Millisecond))

	arp := drain(t, NewArpeggio([]int{60, 64, 67}, 50*time.Millisecond, WaveTriangle, 1, rate))
	require.Len(t, arp, 3*rate.N(50*time.Millisecond))

	silent := drain(t, NewTone(Tone{Freq: NoteFreq(69), Duration: 10 * time.Millisecond, Wave: WaveSine, Volume: 0}, rate))
	for _, s := range silent {
		require.Equal(t, [2]float64{}, s)
	}
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	tone := NewTone(Tone{Freq: NoteFreq(69), Duration: 100 * time.Millisecond, Attack: time.Millisecond, Release: 10 * time.Millisecond, Wave: WaveSine, Volume: 1}, rate)
	require.NoError(t, WriteWAV(f, tone, rate))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()
	s, format, err := wav.Decode(in)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, rate, format.SampleRate)
	require.Equal(t, 2, format.NumChannels)
	require.Equal(t, rate.N(100*time.Millisecond), s.Len())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FIXKERNEL_MASTER_VOLUME", "150")
	t.Setenv("FIXKERNEL_SAMPLE_RATE", "48000")
	cfg := LoadConfig()
	require.Equal(t, 1.0, cfg.MasterVolume)
	require.Equal(t, beep.SampleRate(48000), cfg.Rate())

	t.Setenv("FIXKERNEL_MASTER_VOLUME", "loud")
	t.Setenv("FIXKERNEL_SAMPLE_RATE", "-1")
	cfg = LoadConfig()
	require.Equal(t, DefaultConfig(), cfg)
}
