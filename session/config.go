package session

import (
	"time"

	"github.com/pkg/errors"
)

// Config tunes the frame loop.
type Config struct {
	// MaxFrameTime caps the delta fed to the game so a stalled host does
	// not drop several rows at once.
	MaxFrameTime time.Duration `yaml:"max_frame_time"`
	// BlockScale is the world size of one cell.
	BlockScale float32 `yaml:"block_scale"`
}

// DefaultConfig returns the stock frame settings.
func DefaultConfig() Config {
	return Config{
		MaxFrameTime: 100 * time.Millisecond,
		BlockScale:   0.1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.MaxFrameTime < time.Millisecond {
		return errors.Errorf("max_frame_time must be at least 1ms, got %s", c.MaxFrameTime)
	}
	if c.BlockScale <= 0 {
		return errors.Errorf("block_scale must be positive, got %v", c.BlockScale)
	}
	return nil
}
