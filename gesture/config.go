package gesture

import "fmt"

// Config holds the gesture thresholds. Distances are screen pixels unless
// stated otherwise.
type Config struct {
	// AnchorThreshold is how close a drag must start to an anchor to grab it.
	AnchorThreshold float32 `yaml:"anchor_threshold_px"`
	// PixelsPer90 is the drag distance that maps to a quarter turn.
	PixelsPer90 float32 `yaml:"pixels_per_90"`
	// CommitAngle is the preview angle in degrees past which a rotation is
	// sent to the game.
	CommitAngle float32 `yaml:"commit_angle_deg"`
	// DropRadius is the tap radius around the drop arrow.
	DropRadius float32 `yaml:"drop_radius_px"`
	// MoveRegionTop is the fraction of the screen height, from the top,
	// where taps do not move the piece.
	MoveRegionTop float32 `yaml:"move_region_top"`
	// AnchorDepth is the world distance of the anchors in front of the
	// camera.
	AnchorDepth float32 `yaml:"anchor_depth"`
}

// DefaultConfig returns the thresholds used on phones.
func DefaultConfig() Config {
	return Config{
		AnchorThreshold: 150,
		PixelsPer90:     200,
		CommitAngle:     45,
		DropRadius:      80,
		MoveRegionTop:   0.2,
		AnchorDepth:     0.5,
	}
}

// Validate reports the first threshold that cannot work.
func (c Config) Validate() error {
	if c.AnchorThreshold <= 0 || c.PixelsPer90 <= 0 || c.DropRadius <= 0 {
		return fmt.Errorf("gesture distances must be positive")
	}
	if c.CommitAngle <= 0 || c.CommitAngle >= 90 {
		return fmt.Errorf("commit angle must be within (0, 90), got %v", c.CommitAngle)
	}
	if c.MoveRegionTop < 0 || c.MoveRegionTop >= 1 {
		return fmt.Errorf("move region top must be within [0, 1), got %v", c.MoveRegionTop)
	}
	if c.AnchorDepth <= 0 {
		return fmt.Errorf("anchor depth must be positive, got %v", c.AnchorDepth)
	}
	return nil
}
