package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/artris/tris"
)

// Scene is the camera state of one rendered frame. Screen coordinates are
// pixels with the origin at the top left.
type Scene struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Width      float32
	Height     float32
}

// ToScreen projects a world point. ok is false for points behind the
// camera.
func (s Scene) ToScreen(world mgl32.Vec3) (screen mgl32.Vec2, ok bool) {
	clip := s.Projection.Mul4(s.View).Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl32.Vec2{
		(ndcX + 1) * 0.5 * s.Width,
		(1 - ndcY) * 0.5 * s.Height,
	}, true
}

// CameraPose returns the camera position and its right, up and forward
// directions in world space.
func (s Scene) CameraPose() (pos, right, up, forward mgl32.Vec3) {
	inv := s.View.Inv()
	pos = inv.Col(3).Vec3()
	right = inv.Col(0).Vec3().Normalize()
	up = inv.Col(1).Vec3().Normalize()
	forward = inv.Col(2).Vec3().Normalize().Mul(-1)
	return
}

// RayCaster turns a screen point into a world space ray.
type RayCaster interface {
	TouchRay(x, y float32) (origin, dir mgl32.Vec3)
}

// TouchRay unprojects a screen point through the scene camera. The ray
// starts on the near plane.
func (s Scene) TouchRay(x, y float32) (origin, dir mgl32.Vec3) {
	inv := s.Projection.Mul4(s.View).Inv()
	ndcX := 2*x/s.Width - 1
	ndcY := 1 - 2*y/s.Height

	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})
	origin = near.Vec3().Mul(1 / near.W())
	dir = far.Vec3().Mul(1 / far.W()).Sub(origin).Normalize()
	return
}

// Layout places the game box in model space. The model origin sits at the
// center of the box floor, model +Y is game +Z and model -Z is game +Y.
// One block is Scale model units wide.
type Layout struct {
	Dims  tris.Pos3d
	Scale float32
}

// ToModel converts continuous game coordinates, where the box spans
// [0, dims) on every axis, to model space.
func (l Layout) ToModel(gx, gy, gz float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(gx - float32(l.Dims.X)/2) * l.Scale,
		gz * l.Scale,
		-(gy - float32(l.Dims.Y)/2) * l.Scale,
	}
}

// FloorOffset converts a model space point to game X/Y measured from the
// center of the box floor.
func (l Layout) FloorOffset(model mgl32.Vec3) (x, y float32) {
	return model.X() / l.Scale, -model.Z() / l.Scale
}

// BlockCenter returns the model space center of the cell at pos.
func (l Layout) BlockCenter(pos tris.Pos3d) mgl32.Vec3 {
	return l.ToModel(float32(pos.X)+0.5, float32(pos.Y)+0.5, float32(pos.Z)+0.5)
}

// AxisToModel returns the model space direction of a game axis.
func AxisToModel(axis tris.Axis) mgl32.Vec3 {
	switch axis {
	case tris.AxisX:
		return mgl32.Vec3{1, 0, 0}
	case tris.AxisY:
		return mgl32.Vec3{0, 0, -1}
	case tris.AxisZ:
		return mgl32.Vec3{0, 1, 0}
	}
	panic("invalid axis " + axis.String())
}

func transformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}

func transformDir(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
