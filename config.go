package kmeansgo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxIterations is used by ParseConfig when max_iterations is omitted.
	DefaultMaxIterations = 100

	// DefaultTolerance is used by ParseConfig when tolerance is omitted.
	DefaultTolerance = 1e-6
)

// Config holds validated run parameters.
//
// A Config can only be obtained through NewConfig, ParseConfig or LoadConfig
// and is immutable afterwards; the With* methods return a validated copy.
// The zero value is invalid and is rejected by every engine.
type Config struct {
	k             int
	maxIterations int
	tolerance     float64
}

// NewConfig validates and returns a Config.
func NewConfig(k, maxIterations int, tolerance float64) (Config, error) {
	c := Config{k: k, maxIterations: maxIterations, tolerance: tolerance}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// MustConfig is like NewConfig but panics on error.
func MustConfig(k, maxIterations int, tolerance float64) Config {
	c, err := NewConfig(k, maxIterations, tolerance)
	if err != nil {
		panic(err)
	}
	return c
}

// K returns the requested number of clusters.
func (c Config) K() int { return c.k }

// MaxIterations returns the iteration cap.
func (c Config) MaxIterations() int { return c.maxIterations }

// Tolerance returns the convergence threshold on centroid movement.
func (c Config) Tolerance() float64 { return c.tolerance }

// Validate reports whether the parameters are usable.
func (c Config) Validate() error {
	if c.k <= 0 {
		return invalidArgument("k must be positive, got %d", c.k)
	}
	if c.maxIterations <= 0 {
		return invalidArgument("maxIterations must be positive, got %d", c.maxIterations)
	}
	if c.tolerance < 0 || math.IsNaN(c.tolerance) {
		return invalidArgument("tolerance must be non-negative, got %v", c.tolerance)
	}
	return nil
}

// WithK returns a copy of c with k replaced.
func (c Config) WithK(k int) (Config, error) {
	return NewConfig(k, c.maxIterations, c.tolerance)
}

// WithMaxIterations returns a copy of c with maxIterations replaced.
func (c Config) WithMaxIterations(maxIterations int) (Config, error) {
	return NewConfig(c.k, maxIterations, c.tolerance)
}

// WithTolerance returns a copy of c with tolerance replaced.
func (c Config) WithTolerance(tolerance float64) (Config, error) {
	return NewConfig(c.k, c.maxIterations, tolerance)
}

func (c Config) String() string {
	return fmt.Sprintf("Config{k=%d, maxIterations=%d, tolerance=%g}", c.k, c.maxIterations, c.tolerance)
}

type configFile struct {
	K             *int     `yaml:"k"`
	MaxIterations *int     `yaml:"max_iterations"`
	Tolerance     *float64 `yaml:"tolerance"`
}

// ParseConfig decodes a YAML document of the form
//
//	k: 5
//	max_iterations: 300
//	tolerance: 1e-9
//
// k is required; omitted max_iterations and tolerance take
// DefaultMaxIterations and DefaultTolerance. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig reads a YAML config from r. See ParseConfig for the format.
func LoadConfig(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f configFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, invalidArgument("config is empty")
		}
		return Config{}, fmt.Errorf("%w: decode config: %w", ErrInvalidArgument, err)
	}

	if f.K == nil {
		return Config{}, invalidArgument("config is missing k")
	}

	maxIterations := DefaultMaxIterations
	if f.MaxIterations != nil {
		maxIterations = *f.MaxIterations
	}
	tolerance := DefaultTolerance
	if f.Tolerance != nil {
		tolerance = *f.Tolerance
	}

	return NewConfig(*f.K, maxIterations, tolerance)
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (any, error) {
	return configFile{K: &c.k, MaxIterations: &c.maxIterations, Tolerance: &c.tolerance}, nil
}
