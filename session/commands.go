package session

import "github.com/plus3/artris/tris"

// Commands buffers game controls until the next frame applies them. It
// satisfies gesture.Controls; queuing always succeeds and the real outcome
// is reported by Flush.
type Commands struct {
	queued []command
	defers []func()
}

type commandKind int

const (
	commandMove commandKind = iota
	commandRotate
	commandDrop
)

type command struct {
	kind     commandKind
	dx, dy   int
	rotation tris.Rotation
}

// NewCommands creates an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// MoveXY queues a unit move. Non-unit steps panic here rather than when
// the frame is applied.
func (c *Commands) MoveXY(dx, dy int) bool {
	if abs(dx)+abs(dy) != 1 {
		panic("moveXY needs a unit step")
	}
	c.queued = append(c.queued, command{kind: commandMove, dx: dx, dy: dy})
	return true
}

// Rotate queues a quarter turn.
func (c *Commands) Rotate(axis tris.Axis, direction tris.Direction) bool {
	c.queued = append(c.queued, command{
		kind:     commandRotate,
		rotation: tris.Rotation{Axis: axis, Direction: direction},
	})
	return true
}

// Drop queues a drop.
func (c *Commands) Drop() bool {
	c.queued = append(c.queued, command{kind: commandDrop})
	return true
}

// Defer queues a function to run after the game commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Discard drops the queued game commands. Deferred functions stay.
func (c *Commands) Discard() {
	c.queued = c.queued[:0]
}

// Len returns the number of queued game commands.
func (c *Commands) Len() int {
	return len(c.queued)
}

// Flush applies the queued commands to game in order, runs the deferred
// functions and resets the buffer. It returns how many commands the game
// accepted.
func (c *Commands) Flush(game tris.Game) int {
	accepted := 0
	for _, cmd := range c.queued {
		var ok bool
		switch cmd.kind {
		case commandMove:
			ok = game.MoveXY(cmd.dx, cmd.dy)
		case commandRotate:
			ok = game.Rotate(cmd.rotation.Axis, cmd.rotation.Direction)
		case commandDrop:
			ok = game.Drop()
		}
		if ok {
			accepted++
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queued = c.queued[:0]
	c.defers = c.defers[:0]
	return accepted
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
