package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

type keyBinding struct {
	key   ebiten.Key
	apply func(gesture.Controls)
}

func rotate(axis tris.Axis, direction tris.Direction) func(gesture.Controls) {
	return func(c gesture.Controls) { c.Rotate(axis, direction) }
}

func move(dx, dy int) func(gesture.Controls) {
	return func(c gesture.Controls) { c.MoveXY(dx, dy) }
}

// keyBindings follow the browser version of the game.
var keyBindings = []keyBinding{
	{ebiten.KeyQ, rotate(tris.AxisY, tris.CW)},
	{ebiten.KeyE, rotate(tris.AxisY, tris.CCW)},
	{ebiten.KeyDigit2, rotate(tris.AxisX, tris.CCW)},
	{ebiten.KeyX, rotate(tris.AxisX, tris.CW)},
	{ebiten.KeyR, rotate(tris.AxisZ, tris.CW)},
	{ebiten.KeyT, rotate(tris.AxisZ, tris.CCW)},
	{ebiten.KeyArrowLeft, move(-1, 0)},
	{ebiten.KeyA, move(-1, 0)},
	{ebiten.KeyArrowRight, move(1, 0)},
	{ebiten.KeyD, move(1, 0)},
	{ebiten.KeyArrowUp, move(0, -1)},
	{ebiten.KeyW, move(0, -1)},
	{ebiten.KeyArrowDown, move(0, 1)},
	{ebiten.KeyS, move(0, 1)},
	{ebiten.KeySpace, func(c gesture.Controls) { c.Drop() }},
}

// tapSlop is how far the pointer may wander before a press becomes a drag.
const tapSlop = 8

// touchTracker turns left mouse button input into taps and drags.
type touchTracker struct {
	down           bool
	dragging       bool
	startX, startY float32
	lastX, lastY   float32
}

func (t *touchTracker) update(s *session.Session) {
	cx, cy := ebiten.CursorPosition()
	x, y := float32(cx), float32(cy)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		*t = touchTracker{down: true, startX: x, startY: y, lastX: x, lastY: y}

	case t.down && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if !t.dragging {
			if s.State() == session.WaitingForBox {
				s.OnBoxFound()
			} else {
				s.OnTap(x, y)
			}
		}
		s.OnTouchUp(x, y)
		*t = touchTracker{}

	case t.down:
		if !t.dragging {
			dx, dy := x-t.startX, y-t.startY
			t.dragging = dx*dx+dy*dy > tapSlop*tapSlop
		}
		if t.dragging && (x != t.lastX || y != t.lastY) {
			s.OnScroll(t.startX, t.startY, x, y, x-t.lastX, y-t.lastY)
			t.lastX, t.lastY = x, y
		}
	}
}
