package gesture

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/artris/tris"
)

// Arc is one rotation a drag on an anchor can perform.
type Arc struct {
	Axis tris.Axis
	// WorldAxis is the game axis in world space.
	WorldAxis mgl32.Vec3
	// Radial points from the anchor origin to the front of the gimbal
	// ring, scaled to the ring radius.
	Radial mgl32.Vec3
	// Tangent is the world direction the front of the gimbal moves in
	// under a positive turn.
	Tangent mgl32.Vec3
	// Screen is the unit screen direction of a positive drag.
	Screen mgl32.Vec2
}

// RotationAnchor is an on-screen gimbal. Anchors with two arcs have their
// screen directions orthonormalized.
type RotationAnchor struct {
	Origin  mgl32.Vec3
	Screen  mgl32.Vec2
	Visible bool
	Arcs    []Arc
}

type anchorPlacement struct {
	right, up float32
	axes      []tris.Axis
}

// Offsets are fractions of the anchor depth, in camera space.
var anchorPlacements = []anchorPlacement{
	{right: -0.25, up: -0.3, axes: []tris.Axis{tris.AxisX, tris.AxisY}},
	{right: 0.25, up: -0.3, axes: []tris.Axis{tris.AxisZ}},
}

const radiusFraction = 0.1

// ComputeAnchors lays out the rotation anchors for a camera pose. It keeps
// no state. Anchors behind the camera are marked invisible and get zero
// screen directions.
func ComputeAnchors(scene Scene, depth float32) []RotationAnchor {
	camPos, right, up, forward := scene.CameraPose()
	radius := depth * radiusFraction

	anchors := make([]RotationAnchor, 0, len(anchorPlacements))
	for _, place := range anchorPlacements {
		origin := camPos.
			Add(forward.Mul(depth)).
			Add(right.Mul(place.right * depth)).
			Add(up.Mul(place.up * depth))

		originScreen, visible := scene.ToScreen(origin)
		anchor := RotationAnchor{Origin: origin, Visible: visible}
		if visible {
			anchor.Screen = originScreen
		}

		for _, axis := range place.axes {
			worldAxis := transformDir(scene.Model, AxisToModel(axis)).Normalize()
			radial := radialToward(forward.Mul(-1), up, worldAxis)
			tangent := worldAxis.Cross(radial).Normalize()

			arc := Arc{Axis: axis, WorldAxis: worldAxis, Radial: radial.Mul(radius), Tangent: tangent}
			if tip, ok := scene.ToScreen(origin.Add(tangent.Mul(radius))); ok && visible {
				arc.Screen = tip.Sub(originScreen)
			}
			anchor.Arcs = append(anchor.Arcs, arc)
		}

		orthonormalize(anchor.Arcs)
		anchors = append(anchors, anchor)
	}
	return anchors
}

// radialToward returns the unit direction perpendicular to axis that is
// closest to toward, or to fallback when toward is parallel to axis.
func radialToward(toward, fallback, axis mgl32.Vec3) mgl32.Vec3 {
	r := toward.Sub(axis.Mul(toward.Dot(axis)))
	if r.Len() < 1e-3 {
		r = fallback.Sub(axis.Mul(fallback.Dot(axis)))
	}
	return r.Normalize()
}

// orthonormalize normalizes the longest screen direction and makes the
// other one orthogonal to it with a Gram-Schmidt step.
func orthonormalize(arcs []Arc) {
	const eps = 1e-6

	switch len(arcs) {
	case 1:
		if arcs[0].Screen.Len() > eps {
			arcs[0].Screen = arcs[0].Screen.Normalize()
		}
	case 2:
		long, short := 0, 1
		if arcs[1].Screen.Len() > arcs[0].Screen.Len() {
			long, short = 1, 0
		}
		l := arcs[long].Screen
		if l.Len() < eps {
			return
		}
		l = l.Normalize()
		s := arcs[short].Screen
		s = s.Sub(l.Mul(s.Dot(l)))
		if s.Len() < eps {
			// parallel on screen: take the perpendicular
			s = mgl32.Vec2{-l.Y(), l.X()}
		}
		arcs[long].Screen = l
		arcs[short].Screen = s.Normalize()
	}
}
