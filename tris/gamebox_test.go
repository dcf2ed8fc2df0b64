package tris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameBoxContains(t *testing.T) {
	box := NewGameBox(Pos3d{X: 5, Y: 5, Z: 14})

	assert.Equal(t, 350, box.Size())
	assert.True(t, box.Contains(Pos3d{}))
	assert.True(t, box.Contains(Pos3d{X: 4, Y: 4, Z: 13}))
	assert.False(t, box.Contains(Pos3d{X: 5}))
	assert.False(t, box.Contains(Pos3d{Y: -1}))
	assert.False(t, box.Contains(Pos3d{Z: 14}))

	inside := NewPiece(Pos3d{X: 1, Y: 1, Z: 1}, []Block{{Pos: Pos3d{}}, {Pos: Pos3d{X: 1}}})
	assert.True(t, box.ContainsPiece(inside))
	assert.False(t, box.ContainsPiece(inside.Translated(Pos3d{X: 3})))
}

func TestNewGameBoxRejectsEmptyDims(t *testing.T) {
	assert.Panics(t, func() { NewGameBox(Pos3d{X: 5, Y: 0, Z: 3}) })
}

func TestTranslateToBounds(t *testing.T) {
	box := NewGameBox(Pos3d{X: 5, Y: 5, Z: 14})
	shape := []Block{{Pos: Pos3d{X: -1}}, {Pos: Pos3d{}}, {Pos: Pos3d{X: 1}}, {Pos: Pos3d{X: 2}}}

	centers := []Pos3d{
		{X: 0, Y: 0, Z: 0},
		{X: -7, Y: 12, Z: 40},
		{X: 9, Y: -3, Z: -5},
		{X: 2, Y: 2, Z: 19},
	}

	for _, c := range centers {
		for _, axis := range Axes {
			piece := NewPiece(c, shape).Rotated(Rotation{Axis: axis, Direction: CCW})

			once := box.TranslateToBounds(piece)
			assert.True(t, box.ContainsPiece(once), "center %s axis %s", c, axis)
			assert.True(t, once.Equal(box.TranslateToBounds(once)), "not idempotent for %s", c)
		}
	}

	inside := NewPiece(Pos3d{X: 2, Y: 2, Z: 2}, shape)
	assert.True(t, inside.Equal(box.TranslateToBounds(inside)))
}
