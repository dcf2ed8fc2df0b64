package session

import "github.com/plus3/artris/tris"

// System is one step of the per-frame update. Systems run in registration
// order; commands they queue are applied to the game after the last one.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the state of a single update.
type Frame struct {
	// DeltaMs is the clamped time since the previous frame.
	DeltaMs  int
	Game     tris.Game
	Session  *Session
	Commands *Commands
	// Changed is set when the game state visibly changed this frame.
	Changed bool
}
