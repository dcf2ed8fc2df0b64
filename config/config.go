// Package config loads the artris settings file and builds the logger.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the settings file.
type Config struct {
	// Seed feeds the piece generator. Zero picks a seed at startup.
	Seed    uint64         `yaml:"seed"`
	Game    tris.Config    `yaml:"game"`
	Session session.Config `yaml:"session"`
	Gesture gesture.Config `yaml:"gesture"`
	Log     Log            `yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Game:    tris.DefaultConfig(),
		Session: session.DefaultConfig(),
		Gesture: gesture.DefaultConfig(),
		Log:     DefaultLog(),
	}
}

// Load reads and validates the file at path. Missing keys keep their
// defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "game: %v", err)
	}
	if err := c.Session.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "session: %v", err)
	}
	if err := c.Gesture.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "gesture: %v", err)
	}
	if err := c.Log.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log: %v", err)
	}
	return nil
}

// Merge copies values loaded from a file into c, except for the settings
// named in explicitFlags, which were given on the command line and win.
func Merge(c *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		c.Seed = fromFile.Seed
	}
	if !explicitFlags["log-level"] {
		c.Log.Level = fromFile.Log.Level
	}
	if !explicitFlags["log-encoding"] {
		c.Log.Encoding = fromFile.Log.Encoding
	}
	c.Game = fromFile.Game
	c.Session = fromFile.Session
	c.Gesture = fromFile.Gesture
}
