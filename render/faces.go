package render

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/tris"
)

// Face is one visible cube side projected to the screen.
type Face struct {
	Corners [4]mgl32.Vec2
	// Depth is the view space distance of the face center.
	Depth float32
	Color color.RGBA
	// Active is set for faces of the falling piece.
	Active bool
}

// Lighting is a hemisphere light shining down the model +Y axis.
type Lighting struct {
	Ambient float32
	Diffuse float32
}

// DefaultLighting matches the block material of the AR renderer.
func DefaultLighting() Lighting {
	return Lighting{Ambient: 0.35, Diffuse: 0.65}
}

// shade scales c for a face with model space normal n.
func (l Lighting) shade(c color.RGBA, n mgl32.Vec3) color.RGBA {
	up := mgl32.Vec3{0, 1, 0}
	k := l.Ambient + l.Diffuse*0.5*(n.Dot(up)+1)
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}

type cubeSide struct {
	step   tris.Pos3d
	normal mgl32.Vec3
	// corners are offsets from the block center in half cell units.
	corners [4]mgl32.Vec3
}

var cubeSides = buildCubeSides()

func buildCubeSides() []cubeSide {
	sides := make([]cubeSide, 0, 6)
	for _, axis := range tris.Axes {
		for _, s := range []int{-1, 1} {
			n := gesture.AxisToModel(axis).Mul(float32(s))
			// two model directions spanning the face
			var u, v mgl32.Vec3
			switch axis {
			case tris.AxisX:
				u, v = mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}
			case tris.AxisY:
				u, v = mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
			case tris.AxisZ:
				u, v = mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}
			}
			sides = append(sides, cubeSide{
				step:   tris.Unit(axis, s),
				normal: n,
				corners: [4]mgl32.Vec3{
					n.Sub(u).Sub(v),
					n.Add(u).Sub(v),
					n.Add(u).Add(v),
					n.Sub(u).Add(v),
				},
			})
		}
	}
	return sides
}

// Builder projects blocks into faces.
type Builder struct {
	Palette  *Palette
	Lighting Lighting
}

// NewBuilder creates a builder with a fresh palette and default lighting.
func NewBuilder() *Builder {
	return &Builder{Palette: NewPalette(), Lighting: DefaultLighting()}
}

// Faces returns the visible faces of game's blocks sorted far to near, so
// filling them in order paints a correct image. Sides shared by two blocks
// and sides turned away from the camera are skipped.
func (b *Builder) Faces(scene gesture.Scene, layout gesture.Layout, game tris.Game) []Face {
	active := game.ActiveBlocks()
	cemented := game.CementedBlocks()
	b.Palette.Prune(game.AllBlocks())

	occupied := make(map[tris.Pos3d]bool, len(active)+len(cemented))
	for _, block := range cemented {
		occupied[block.Pos] = true
	}
	for _, block := range active {
		occupied[block.Pos] = true
	}

	camPos, _, _, _ := scene.CameraPose()
	viewProj := scene.Projection.Mul4(scene.View)

	faces := make([]Face, 0, 2*(len(active)+len(cemented)))
	emit := func(block tris.Block, isActive bool) {
		center := layout.BlockCenter(block.Pos)
		base := b.Palette.Color(block.PieceId)
		for _, side := range cubeSides {
			if occupied[block.Pos.Add(side.step)] {
				continue
			}
			face, ok := b.projectSide(scene, viewProj, camPos, center, layout.Scale, side)
			if !ok {
				continue
			}
			face.Color = b.Lighting.shade(base, side.normal)
			face.Active = isActive
			faces = append(faces, face)
		}
	}
	for _, block := range cemented {
		emit(block, false)
	}
	for _, block := range active {
		emit(block, true)
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth > faces[j].Depth
	})
	return faces
}

func (b *Builder) projectSide(scene gesture.Scene, viewProj mgl32.Mat4, camPos, center mgl32.Vec3, scale float32, side cubeSide) (Face, bool) {
	half := scale / 2
	var face Face

	faceCenter := worldPoint(scene.Model, center.Add(side.normal.Mul(half)))
	normal := scene.Model.Mul4x1(side.normal.Vec4(0)).Vec3()
	if normal.Dot(camPos.Sub(faceCenter)) <= 0 {
		return face, false
	}

	for i, corner := range side.corners {
		world := worldPoint(scene.Model, center.Add(corner.Mul(half)))
		clip := viewProj.Mul4x1(world.Vec4(1))
		if clip.W() <= 0 {
			return face, false
		}
		face.Corners[i] = mgl32.Vec2{
			(clip.X()/clip.W() + 1) * 0.5 * scene.Width,
			(1 - clip.Y()/clip.W()) * 0.5 * scene.Height,
		}
	}
	face.Depth = faceCenter.Sub(camPos).Len()
	return face, true
}

func worldPoint(model mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := model.Mul4x1(p.Vec4(1))
	return v.Vec3().Mul(1 / v.W())
}
