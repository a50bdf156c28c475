// Package config selects the numeric backend and overflow mode for a kernel.
//
// Values come from the embedded defaults, then an optional YAML file, then
// FIXKERNEL_* environment variables.
package config

import (
	_ "embed"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fixkernel/vmath"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Environment overrides, applied after the YAML layers
const (
	EnvBackend   = "FIXKERNEL_BACKEND"
	EnvOverflow  = "FIXKERNEL_OVERFLOW"
	EnvTolerance = "FIXKERNEL_TOLERANCE"
)

// Backend names
const (
	BackendFixed = "fixed"
	BackendFloat = "float"
)

// Overflow mode names
const (
	OverflowChecked  = "checked"
	OverflowWrapping = "wrapping"
)

// ErrInvalid reports a configuration value outside its accepted set
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Backend   string      `yaml:"backend"`   // fixed | float
	Overflow  string      `yaml:"overflow"`  // checked | wrapping, fixed backend only
	Tolerance vmath.Fixed `yaml:"tolerance"` // backend comparison bound
}

// Default returns the embedded defaults without file or environment layers
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(errors.AssertionFailedf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load merges the embedded defaults, the YAML file at path when non-empty, and the
// environment, then validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		// Only fields present in the file are overwritten
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config file %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvBackend); ok && v != "" {
		slog.Debug("config override", "env", EnvBackend, "value", v)
		c.Backend = v
	}
	if v, ok := os.LookupEnv(EnvOverflow); ok && v != "" {
		slog.Debug("config override", "env", EnvOverflow, "value", v)
		c.Overflow = v
	}
	if v, ok := os.LookupEnv(EnvTolerance); ok && v != "" {
		tol, err := vmath.ParseFixed(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTolerance)
		}
		slog.Debug("config override", "env", EnvTolerance, "value", tol)
		c.Tolerance = tol
	}
	return nil
}

// Validate rejects unknown backend or overflow names and a negative tolerance
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFixed, BackendFloat:
	default:
		return errors.Wrapf(ErrInvalid, "backend %q, want %s or %s", c.Backend, BackendFixed, BackendFloat)
	}
	switch c.Overflow {
	case OverflowChecked, OverflowWrapping:
	default:
		return errors.Wrapf(ErrInvalid, "overflow %q, want %s or %s", c.Overflow, OverflowChecked, OverflowWrapping)
	}
	if c.Tolerance < 0 {
		return errors.Wrapf(ErrInvalid, "tolerance %s is negative", c.Tolerance)
	}
	return nil
}

// Mode returns the overflow mode; call Validate first
func (c *Config) Mode() vmath.Mode {
	if c.Overflow == OverflowWrapping {
		return vmath.Wrapping
	}
	return vmath.Checked
}

// NumericBackend returns the configured backend; call Validate first
func (c *Config) NumericBackend() vmath.Backend {
	if c.Backend == BackendFloat {
		return vmath.FloatBackend{}
	}
	return vmath.FixedBackend{Mode: c.Mode()}
}

// Kernel returns a runtime-selected kernel for the configured backend
func (c *Config) Kernel() vmath.Kernel[vmath.Backend] {
	return vmath.NewKernel(c.NumericBackend())
}

// LogValue groups the settings under one slog attribute
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", c.Backend),
		slog.String("overflow", c.Overflow),
		slog.String("tolerance", c.Tolerance.String()),
	)
}

// WriteYAML writes the configuration to a YAML file
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
