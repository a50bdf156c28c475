package audio

import (
	"github.com/lixenwraith/fixkernel/vmath"
)

const (
	noteA4   = 69
	freqA4   = 440
	semitone = 12
)

// semitoneRatio[k] is 2^(k/12) rounded to Q32.32
var semitoneRatio = [semitone]vmath.Fixed{
	4294967296, 4550359342, 4820937788, 5107605667,
	5411319705, 5733093519, 6074001000, 6435179895,
	6817835604, 7223245206, 7652761717, 8107818609,
}

// NoteFrequencies contains frequencies for MIDI notes 0-127 in Q32.32 Hz
// A4 (note 69) = 440Hz, equal temperament, built with integer ops only
var NoteFrequencies = func() (freqs [128]vmath.Fixed) {
	for i := range freqs {
		d := i - noteA4
		oct := d / semitone
		if d%semitone < 0 {
			oct--
		}
		// 440·ratio stays below 2^10, far from the Mul limit
		f, err := vmath.Mul(vmath.FromInt(freqA4), semitoneRatio[d-oct*semitone])
		if err != nil {
			panic(err)
		}
		if oct >= 0 {
			f <<= uint(oct)
		} else {
			f >>= uint(-oct)
		}
		freqs[i] = f
	}
	return freqs
}()

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) vmath.Fixed {
	if midi < 0 || midi >= len(NoteFrequencies) {
		return 0
	}
	return NoteFrequencies[midi]
}
