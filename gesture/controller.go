// Package gesture maps screen space taps and drags onto game commands.
// Rotations are driven by dragging on-screen gimbal anchors, moves by
// tapping the floor around the box and drops by tapping the drop arrow.
package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/artris/tris"
)

// Controls is the part of the game a gesture can drive.
type Controls interface {
	MoveXY(dx, dy int) bool
	Rotate(axis tris.Axis, direction tris.Direction) bool
	Drop() bool
}

// ActionKind says which command a gesture produced.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDrop
	ActionMove
	ActionRotate
)

func (k ActionKind) String() string {
	switch k {
	case ActionDrop:
		return "drop"
	case ActionMove:
		return "move"
	case ActionRotate:
		return "rotate"
	}
	return "none"
}

// Action describes the command a gesture sent, and whether the game
// accepted it.
type Action struct {
	Kind      ActionKind
	DX, DY    int
	Axis      tris.Axis
	Direction tris.Direction
	Accepted  bool
}

// Controller keeps the per-frame widget layout and the state of the drag in
// progress. All calls must come from the frame thread.
type Controller struct {
	cfg      Config
	layout   Layout
	controls Controls
	rays     RayCaster

	scene    Scene
	hasScene bool
	anchors  []RotationAnchor

	active  int
	dragged []float32
	preview mgl32.Quat
}

// NewController creates a controller sending commands to controls. layout
// describes where the game box sits in model space.
func NewController(controls Controls, layout Layout, cfg Config) *Controller {
	return &Controller{
		cfg:      cfg,
		layout:   layout,
		controls: controls,
		active:   -1,
		preview:  mgl32.QuatIdent(),
	}
}

// SetRayCaster replaces the scene unprojection used for floor taps.
func (c *Controller) SetRayCaster(rays RayCaster) {
	c.rays = rays
}

// SetScene updates the camera for this frame and recomputes the anchors.
func (c *Controller) SetScene(projection, view, model mgl32.Mat4, width, height int) {
	c.scene = Scene{
		Projection: projection,
		View:       view,
		Model:      model,
		Width:      float32(width),
		Height:     float32(height),
	}
	c.hasScene = true
	c.anchors = ComputeAnchors(c.scene, c.cfg.AnchorDepth)
	if c.active >= len(c.anchors) {
		c.resetDrag()
	}
}

// Layout returns where the box sits in model space.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Scene returns the camera of the last SetScene call.
func (c *Controller) Scene() Scene {
	return c.scene
}

// Anchors returns the rotation anchors of the current frame.
func (c *Controller) Anchors() []RotationAnchor {
	return c.anchors
}

// ActiveAnchor returns the anchor being dragged, if any.
func (c *Controller) ActiveAnchor() (RotationAnchor, bool) {
	if c.active < 0 {
		return RotationAnchor{}, false
	}
	return c.anchors[c.active], true
}

// Preview is the uncommitted orientation of the active anchor.
func (c *Controller) Preview() mgl32.Quat {
	return c.preview
}

// DropArrow returns the world position of the drop arrow, hovering above
// the center of the box.
func (c *Controller) DropArrow() mgl32.Vec3 {
	dims := c.layout.Dims
	top := c.layout.ToModel(float32(dims.X)/2, float32(dims.Y)/2, float32(dims.Z)+1)
	return transformPoint(c.scene.Model, top)
}

// OnTap handles a single tap at screen position (x, y).
func (c *Controller) OnTap(x, y float32) Action {
	if !c.hasScene {
		return Action{}
	}
	tap := mgl32.Vec2{x, y}

	if arrow, ok := c.scene.ToScreen(c.DropArrow()); ok && arrow.Sub(tap).Len() <= c.cfg.DropRadius {
		return Action{Kind: ActionDrop, Accepted: c.controls.Drop()}
	}

	if y < c.cfg.MoveRegionTop*c.scene.Height {
		return Action{}
	}

	dx, dy, ok := c.floorQuadrant(x, y)
	if !ok {
		return Action{}
	}
	return Action{Kind: ActionMove, DX: dx, DY: dy, Accepted: c.controls.MoveXY(dx, dy)}
}

// floorQuadrant casts a ray through (x, y) onto the plane of the box floor
// and returns the unit step towards the quadrant it hits.
func (c *Controller) floorQuadrant(x, y float32) (int, int, bool) {
	var rays RayCaster = c.scene
	if c.rays != nil {
		rays = c.rays
	}
	origin, dir := rays.TouchRay(x, y)

	gameOrigin := c.scene.Model.Col(3).Vec3()
	deltaHeight := origin.Sub(gameOrigin).Y()
	if deltaHeight <= 0 || dir.Y() >= 0 {
		// no front-face intersection
		return 0, 0, false
	}

	dist := -deltaHeight / dir.Y()
	hit := origin.Add(dir.Mul(dist))
	hitX, hitY := c.layout.FloorOffset(transformPoint(c.scene.Model.Inv(), hit))

	if abs32(hitX) > abs32(hitY) {
		return sign(hitX), 0, true
	}
	return 0, sign(hitY), true
}

// OnScroll handles one drag event. (x1, y1) is where the touch went down,
// (x2, y2) where it is now and (dx, dy) the movement since the previous
// event.
func (c *Controller) OnScroll(x1, y1, x2, y2, dx, dy float32) Action {
	if !c.hasScene {
		return Action{}
	}
	if c.active < 0 && !c.grabAnchor(mgl32.Vec2{x1, y1}) {
		return Action{}
	}

	arcs := c.anchors[c.active].Arcs
	delta := mgl32.Vec2{dx, dy}
	best := 0
	for i, arc := range arcs {
		c.dragged[i] += delta.Dot(arc.Screen)
		if abs32(c.dragged[i]) > abs32(c.dragged[best]) {
			best = i
		}
	}

	arc := arcs[best]
	angle := c.dragged[best] / c.cfg.PixelsPer90 * 90
	c.preview = mgl32.QuatRotate(mgl32.DegToRad(angle), arc.WorldAxis)

	if abs32(angle) <= c.cfg.CommitAngle {
		return Action{}
	}

	// A positive drag angle commits a clockwise turn. The sign is empirical
	// and does not follow from the arc geometry.
	direction := tris.CCW
	if angle > 0 {
		direction = tris.CW
	}

	for i := range c.dragged {
		c.dragged[i] = 0
	}
	c.preview = mgl32.QuatIdent()

	return Action{
		Kind:      ActionRotate,
		Axis:      arc.Axis,
		Direction: direction,
		Accepted:  c.controls.Rotate(arc.Axis, direction),
	}
}

func (c *Controller) grabAnchor(touch mgl32.Vec2) bool {
	nearest := -1
	nearestDist := float32(math.MaxFloat32)
	for i, anchor := range c.anchors {
		if !anchor.Visible || len(anchor.Arcs) == 0 {
			continue
		}
		d := anchor.Screen.Sub(touch).Len()
		if d <= c.cfg.AnchorThreshold && d < nearestDist {
			nearest, nearestDist = i, d
		}
	}
	if nearest < 0 {
		return false
	}

	c.active = nearest
	c.dragged = make([]float32, len(c.anchors[nearest].Arcs))
	c.preview = mgl32.QuatIdent()
	return true
}

// OnTouchUp ends any drag in progress.
func (c *Controller) OnTouchUp(x, y float32) {
	c.resetDrag()
}

func (c *Controller) resetDrag() {
	c.active = -1
	c.dragged = nil
	c.preview = mgl32.QuatIdent()
}

func sign(v float32) int {
	if v > 0 {
		return 1
	}
	return -1
}
