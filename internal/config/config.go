// Package config provides the configuration loader for keypadsolver.
package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/go-ricrob/keypadsolver/internal/keypad"
	"github.com/go-ricrob/keypadsolver/internal/solver"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDepth is returned for a negative chain depth.
	ErrInvalidDepth = zerr.New("depth must not be negative")
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = zerr.New("workers must not be negative")
	// ErrInvalidPart is returned for a puzzle part other than 1 or 2.
	ErrInvalidPart = zerr.New("part must be 1 or 2")
)

// File represents the structure of the keypadsolver.yaml configuration file.
type File struct {
	Depth       *int       `yaml:"depth"`
	Workers     int        `yaml:"workers"`
	FewestTurns bool       `yaml:"fewest_turns"`
	Warm        bool       `yaml:"warm"`
	Keypads     KeypadsDTO `yaml:"keypads"`
}

// KeypadsDTO holds optional keypad rows; a space marks a gap.
type KeypadsDTO struct {
	Numeric     []string `yaml:"numeric"`
	Directional []string `yaml:"directional"`
}

// Config is the validated configuration.
type Config struct {
	Depth       int
	Workers     int
	FewestTurns bool
	Warm        bool
	Numeric     *keypad.Layout
	Directional *keypad.Layout
}

// Default returns the configuration of puzzle part 1 on the built-in keypads.
func Default() *Config {
	return &Config{
		Depth:       solver.Part1Depth,
		Numeric:     keypad.Numeric(),
		Directional: keypad.Directional(),
	}
}

// Load reads a configuration file from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes and validates configuration data. Unset fields keep their defaults.
func Parse(data []byte) (*Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := Default()
	if f.Depth != nil {
		cfg.Depth = *f.Depth
	}
	cfg.Workers = f.Workers
	cfg.FewestTurns = f.FewestTurns
	cfg.Warm = f.Warm

	if len(f.Keypads.Numeric) > 0 {
		l, err := keypad.New("numeric", f.Keypads.Numeric)
		if err != nil {
			return nil, err
		}
		cfg.Numeric = l
	}
	if len(f.Keypads.Directional) > 0 {
		l, err := keypad.NewDirectional("directional", f.Keypads.Directional)
		if err != nil {
			return nil, err
		}
		cfg.Directional = l
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	if c.Depth < 0 {
		return zerr.With(ErrInvalidDepth, "depth", c.Depth)
	}
	if c.Workers < 0 {
		return zerr.With(ErrInvalidWorkers, "workers", c.Workers)
	}
	return nil
}

// PartDepth returns the chain depth of a puzzle part.
func PartDepth(part int) (int, error) {
	switch part {
	case 1:
		return solver.Part1Depth, nil
	case 2:
		return solver.Part2Depth, nil
	}
	return 0, zerr.With(ErrInvalidPart, "part", part)
}

// Solver returns the solver configuration.
func (c *Config) Solver(log *slog.Logger) solver.Config {
	return solver.Config{
		Depth:       c.Depth,
		Workers:     c.Workers,
		Numeric:     c.Numeric,
		Directional: c.Directional,
		FewestTurns: c.FewestTurns,
		Warm:        c.Warm,
		Logger:      log,
	}
}
