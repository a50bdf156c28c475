package audio

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WriteWAV encodes s as 16-bit stereo PCM at rate until the stream ends
func WriteWAV(w io.WriteSeeker, s beep.Streamer, rate beep.SampleRate) error {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, s, format); err != nil {
		return errors.Wrap(err, "encoding wav")
	}
	if err := s.Err(); err != nil {
		return errors.Wrap(err, "streaming samples")
	}
	return nil
}
