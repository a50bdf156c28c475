package audio

import (
	"os"
	"strconv"

	"github.com/gopxl/beep"
)

// Config holds output settings for generated audio
type Config struct {
	SampleRate   int
	MasterVolume float64
}

// DefaultConfig returns CD-rate output at unity volume
func DefaultConfig() *Config {
	return &Config{SampleRate: 44100, MasterVolume: 1}
}

// Rate returns the sample rate as a beep.SampleRate
func (c *Config) Rate() beep.SampleRate { return beep.SampleRate(c.SampleRate) }

// LoadConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadConfig() *Config {
	cfg := DefaultConfig()

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("FIXKERNEL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("FIXKERNEL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
