package tris

import (
	"fmt"
	"time"
)

// Config holds the tunable constants of a game.
type Config struct {
	Dimensions Pos3d `yaml:"dimensions"`

	// InitialInterval is the automatic drop interval of the first piece.
	InitialInterval time.Duration `yaml:"initial_interval"`
	// HalfLifePieces is how many placed pieces halve the drop interval.
	HalfLifePieces float64 `yaml:"half_life_pieces"`

	DropScoreMultiplier    int `yaml:"drop_score_multiplier"`
	RemovalScoreMultiplier int `yaml:"removal_score_multiplier"`

	// SpawnHeight is how far above the box new pieces are placed before
	// being pulled back inside.
	SpawnHeight int `yaml:"spawn_height"`
}

// DefaultConfig returns the standard 5x5x14 game.
func DefaultConfig() Config {
	return Config{
		Dimensions:             Pos3d{X: 5, Y: 5, Z: 14},
		InitialInterval:        1000 * time.Millisecond,
		HalfLifePieces:         50,
		DropScoreMultiplier:    1,
		RemovalScoreMultiplier: 20,
		SpawnHeight:            5,
	}
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	d := c.Dimensions
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return fmt.Errorf("dimensions must be positive, got %s", d)
	}
	// the widest prototype spans four cells
	if d.X < 4 || d.Y < 4 || d.Z < 4 {
		return fmt.Errorf("dimensions %s too small for a 4 block piece", d)
	}
	if c.InitialInterval < time.Millisecond {
		return fmt.Errorf("initial interval must be at least 1ms, got %s", c.InitialInterval)
	}
	if c.HalfLifePieces <= 0 {
		return fmt.Errorf("half life must be positive, got %g", c.HalfLifePieces)
	}
	if c.DropScoreMultiplier < 0 || c.RemovalScoreMultiplier < 0 {
		return fmt.Errorf("score multipliers must not be negative")
	}
	if c.SpawnHeight < 0 {
		return fmt.Errorf("spawn height must not be negative, got %d", c.SpawnHeight)
	}
	return nil
}
