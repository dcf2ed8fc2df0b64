package render

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/tris"
)

type staticGame struct {
	tris.Game
	active   []tris.Block
	cemented []tris.Block
}

func (g staticGame) ActiveBlocks() []tris.Block   { return g.active }
func (g staticGame) CementedBlocks() []tris.Block { return g.cemented }
func (g staticGame) AllBlocks() []tris.Block {
	return append(append([]tris.Block{}, g.cemented...), g.active...)
}

func testScene(eye mgl32.Vec3) gesture.Scene {
	return gesture.Scene{
		Projection: mgl32.Perspective(mgl32.DegToRad(60), 800.0/600.0, 0.1, 100),
		View:       mgl32.LookAtV(eye, mgl32.Vec3{0, 0.3, 0}, mgl32.Vec3{0, 1, 0}),
		Model:      mgl32.Ident4(),
		Width:      800,
		Height:     600,
	}
}

func testLayout() gesture.Layout {
	return gesture.Layout{Dims: tris.Pos3d{X: 5, Y: 5, Z: 14}, Scale: 0.1}
}

func block(x, y, z, id int) tris.Block {
	return tris.Block{Pos: tris.Pos3d{X: x, Y: y, Z: z}, PieceId: id}
}

func TestPaletteIsStablePerPiece(t *testing.T) {
	p := NewPalette(color.RGBA{R: 1}, color.RGBA{R: 2})

	assert.Equal(t, color.RGBA{R: 1}, p.Color(10))
	assert.Equal(t, color.RGBA{R: 2}, p.Color(11))
	assert.Equal(t, color.RGBA{R: 1}, p.Color(12))
	assert.Equal(t, color.RGBA{R: 2}, p.Color(11))
	assert.Equal(t, 3, p.Len())
}

func TestPalettePrune(t *testing.T) {
	p := NewPalette()
	for id := 1; id <= 4; id++ {
		p.Color(id)
	}

	removed := p.Prune([]tris.Block{block(0, 0, 0, 2), block(1, 0, 0, 4)})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, p.Len())

	kept := p.Color(4)
	assert.Equal(t, DefaultColors[3], kept)
}

func TestSingleBlockShowsThreeFaces(t *testing.T) {
	// camera above and in front, off to the +X side
	scene := testScene(mgl32.Vec3{1, 1.5, 1.5})
	game := staticGame{cemented: []tris.Block{block(2, 2, 0, 1)}}

	faces := NewBuilder().Faces(scene, testLayout(), game)
	assert.Len(t, faces, 3)
}

func TestSharedSidesAreHidden(t *testing.T) {
	scene := testScene(mgl32.Vec3{0, 2, 0.01})
	game := staticGame{cemented: []tris.Block{
		block(2, 2, 0, 1),
		block(2, 2, 1, 1),
	}}

	// looking straight down only the top of the upper block shows
	faces := NewBuilder().Faces(scene, testLayout(), game)
	require.Len(t, faces, 1)
	assert.False(t, faces[0].Active)
}

func TestFacesSortedFarToNear(t *testing.T) {
	scene := testScene(mgl32.Vec3{0.8, 1.2, 1.6})
	game := staticGame{
		cemented: []tris.Block{block(0, 0, 0, 1), block(4, 4, 0, 2)},
		active:   []tris.Block{block(2, 2, 6, 3)},
	}

	faces := NewBuilder().Faces(scene, testLayout(), game)
	require.NotEmpty(t, faces)
	for i := 1; i < len(faces); i++ {
		assert.GreaterOrEqual(t, faces[i-1].Depth, faces[i].Depth)
	}

	var active int
	for _, f := range faces {
		if f.Active {
			active++
		}
	}
	assert.Positive(t, active)
}

func TestTopFacesAreBrightest(t *testing.T) {
	l := DefaultLighting()
	base := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	top := l.shade(base, mgl32.Vec3{0, 1, 0})
	side := l.shade(base, mgl32.Vec3{1, 0, 0})
	bottom := l.shade(base, mgl32.Vec3{0, -1, 0})

	assert.Greater(t, top.R, side.R)
	assert.Greater(t, side.R, bottom.R)
	assert.Equal(t, uint8(255), bottom.A)
}

func TestBoxOutline(t *testing.T) {
	segments := BoxOutline(testScene(mgl32.Vec3{0, 1.5, 1.5}), testLayout())
	// 6 + 6 floor lines and 4 pillars
	assert.Len(t, segments, 16)
}
