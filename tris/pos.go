package tris

import "fmt"

// Pos3d is an integer position or offset in game box coordinates.
// X and Y span the floor of the box, Z points up.
type Pos3d struct {
	X, Y, Z int
}

// Add returns the component-wise sum of p and o.
func (p Pos3d) Add(o Pos3d) Pos3d {
	return Pos3d{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Get returns the component of p along axis.
func (p Pos3d) Get(axis Axis) int {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	panic(fmt.Sprintf("invalid axis %d", axis))
}

// With returns a copy of p with the component along axis replaced by v.
func (p Pos3d) With(axis Axis, v int) Pos3d {
	switch axis {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	default:
		panic(fmt.Sprintf("invalid axis %d", axis))
	}
	return p
}

// Unit returns the unit offset along axis scaled by n.
func Unit(axis Axis, n int) Pos3d {
	return Pos3d{}.With(axis, n)
}

// Volume is the product of the three components.
func (p Pos3d) Volume() int {
	return p.X * p.Y * p.Z
}

func (p Pos3d) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Axis is one of the three principal axes of the game box.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the principal axes in processing order.
var Axes = [...]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Direction selects the sense of a quarter turn.
type Direction int

const (
	CW Direction = iota
	CCW
)

func (d Direction) String() string {
	switch d {
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == CW {
		return CCW
	}
	return CW
}

// Rotation is a single 90 degree turn about one principal axis.
// CCW is a positive (right-handed) turn.
type Rotation struct {
	Axis      Axis
	Direction Direction
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation{Axis: r.Axis, Direction: r.Direction.Opposite()}
}

// exchangedAxes returns the two axes whose coordinates a rotation about
// axis swaps. Order matters: it fixes which one receives the sign flip.
func exchangedAxes(axis Axis) (Axis, Axis) {
	switch axis {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisZ, AxisX
	case AxisZ:
		return AxisX, AxisY
	}
	panic(fmt.Sprintf("invalid axis %d", axis))
}

// Rotate applies r to p about the origin.
func (p Pos3d) Rotate(r Rotation) Pos3d {
	a0, a1 := exchangedAxes(r.Axis)

	var sign int
	switch r.Direction {
	case CCW:
		sign = 1
	case CW:
		sign = -1
	default:
		panic(fmt.Sprintf("invalid direction %d", r.Direction))
	}

	v0, v1 := p.Get(a0), p.Get(a1)
	return p.With(a0, -sign*v1).With(a1, sign*v0)
}

// Block is a single unit cube. PieceId tags the piece it came from and
// survives every transform.
type Block struct {
	Pos     Pos3d
	PieceId int
}

// Translated returns b moved by delta.
func (b Block) Translated(delta Pos3d) Block {
	return Block{Pos: b.Pos.Add(delta), PieceId: b.PieceId}
}

// Rotated returns b rotated about the origin.
func (b Block) Rotated(r Rotation) Block {
	return Block{Pos: b.Pos.Rotate(r), PieceId: b.PieceId}
}
