// sine-tone renders a tone from the fixed-point oscillator to a WAV file, optionally
// playing it. The output is bit-identical on every platform for the same flags.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fixkernel/audio"
	"github.com/lixenwraith/fixkernel/vmath"
)

type options struct {
	freq     string
	note     int
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	wave     string
	bell     bool
	out      string
	play     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "sine-tone",
	Short: "render a deterministic tone to WAV",
	Long: `
  Generates a tone with the Q32.32 oscillator and writes 16-bit stereo WAV.
  Sample rate and master volume come from FIXKERNEL_SAMPLE_RATE and
  FIXKERNEL_MASTER_VOLUME.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error { return run(opts) },
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.freq, "freq", "440", "frequency in Hz, decimal")
	f.IntVar(&opts.note, "note", -1, "MIDI note number, overrides --freq")
	f.DurationVar(&opts.duration, "duration", time.Second, "tone length")
	f.DurationVar(&opts.attack, "attack", 10*time.Millisecond, "fade-in length")
	f.DurationVar(&opts.release, "release", 100*time.Millisecond, "fade-out length")
	f.StringVar(&opts.wave, "wave", "sine", "sine, square, saw or triangle")
	f.BoolVar(&opts.bell, "bell", false, "sine bell with octave overtone instead of a plain tone")
	f.StringVarP(&opts.out, "out", "o", "tone.wav", "output WAV file")
	f.BoolVar(&opts.play, "play", false, "also play through the default audio device")
}

func (o options) frequency() (vmath.Fixed, error) {
	if o.note >= 0 {
		if o.note > 127 {
			return 0, errors.Newf("note %d outside MIDI range 0-127", o.note)
		}
		return audio.NoteFreq(o.note), nil
	}
	f, err := vmath.ParseFixed(o.freq)
	if err != nil {
		return 0, errors.Wrap(err, "--freq")
	}
	if f <= 0 {
		return 0, errors.Newf("frequency %s must be positive", f)
	}
	return f, nil
}

// build returns a fresh streamer for o; streamers are single-use
func (o options) build(cfg *audio.Config) (beep.Streamer, error) {
	freq, err := o.frequency()
	if err != nil {
		return nil, err
	}
	rate := cfg.Rate()
	if freq >= vmath.FromInt(int32(rate/2)) {
		return nil, errors.Newf("frequency %s at or above Nyquist for %d Hz", freq, cfg.SampleRate)
	}
	if o.bell {
		return audio.NewBell(freq, o.duration, cfg.MasterVolume, rate), nil
	}
	wave, ok := audio.ParseWave(o.wave)
	if !ok {
		return nil, errors.Newf("unknown wave %q", o.wave)
	}
	return audio.NewTone(audio.Tone{
		Freq:     freq,
		Duration: o.duration,
		Attack:   o.attack,
		Release:  o.release,
		Wave:     wave,
		Volume:   cfg.MasterVolume,
	}, rate), nil
}

func run(o options) error {
	cfg := audio.LoadConfig()

	s, err := o.build(cfg)
	if err != nil {
		return err
	}
	f, err := os.Create(o.out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", o.out)
	}
	if err := audio.WriteWAV(f, s, cfg.Rate()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote tone", "file", o.out, "rate", cfg.SampleRate, "duration", o.duration)

	if !o.play {
		return nil
	}
	s, err = o.build(cfg)
	if err != nil {
		return err
	}
	if err := speaker.Init(cfg.Rate(), cfg.Rate().N(time.Second/10)); err != nil {
		return errors.Wrap(err, "audio init")
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() { close(done) })))
	<-done
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("sine-tone failed", "err", err)
		os.Exit(1)
	}
}
