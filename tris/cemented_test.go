package tris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillLayer(c *CementedBlocks, z, pieceId int) {
	dims := c.box.Dims()
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			c.SetBlock(Block{Pos: Pos3d{X: x, Y: y, Z: z}, PieceId: pieceId})
		}
	}
}

func TestPieceFitsAndCement(t *testing.T) {
	c := NewCementedBlocks(NewGameBox(Pos3d{X: 4, Y: 4, Z: 6}))
	piece := NewPiece(Pos3d{X: 1, Y: 1, Z: 0}, []Block{
		{Pos: Pos3d{}, PieceId: 7},
		{Pos: Pos3d{X: 1}, PieceId: 7},
	})

	require.True(t, c.PieceFits(piece))
	c.CementPiece(piece)

	assert.False(t, c.PieceFits(piece))
	assert.True(t, c.HasBlock(Pos3d{X: 2, Y: 1}))
	assert.Equal(t, 7, c.PieceIdAt(Pos3d{X: 1, Y: 1}))

	// still blocked after unrelated cementing
	c.CementPiece(piece.Translated(Pos3d{Z: 3}))
	assert.False(t, c.PieceFits(piece))

	assert.False(t, c.PieceFits(piece.Translated(Pos3d{X: 3})), "out of bounds")
	assert.True(t, c.PieceFits(piece.Translated(Pos3d{Y: 1})))
}

func TestCementPieceThatDoesNotFitPanics(t *testing.T) {
	c := NewCementedBlocks(NewGameBox(Pos3d{X: 4, Y: 4, Z: 4}))
	piece := NewPiece(Pos3d{}, []Block{{Pos: Pos3d{}}})
	c.CementPiece(piece)

	assert.Panics(t, func() { c.CementPiece(piece) })
	assert.Panics(t, func() { c.CementPiece(piece.Translated(Pos3d{Z: -1})) })
	assert.Panics(t, func() { c.HasBlock(Pos3d{X: 4}) })
}

func TestLayerRemoval(t *testing.T) {
	c := NewCementedBlocks(NewGameBox(Pos3d{X: 4, Y: 4, Z: 5}))

	fillLayer(c, 1, 1)
	c.SetBlock(Block{Pos: Pos3d{X: 2, Y: 3, Z: 2}, PieceId: 2})
	fillLayer(c, 4, 3)

	require.True(t, c.IsLayerFull(1))
	require.False(t, c.IsLayerFull(2))
	require.True(t, c.IsLayerFull(4))

	c.RemoveLayer(1)

	assert.False(t, c.IsLayerFull(1))
	assert.True(t, c.HasBlock(Pos3d{X: 2, Y: 3, Z: 1}))
	assert.Equal(t, 2, c.PieceIdAt(Pos3d{X: 2, Y: 3, Z: 1}))
	assert.False(t, c.HasBlock(Pos3d{X: 2, Y: 3, Z: 2}))
	assert.True(t, c.IsLayerFull(3), "full top layer moved down")
	assert.Equal(t, 0, len(layerBlocks(c, 4)), "top layer emptied")

	c.RemoveLayer(4)
	assert.True(t, c.IsLayerFull(3))
	c.RemoveLayer(3)
	assert.Equal(t, 1, c.Count())
}

func layerBlocks(c *CementedBlocks, z int) []Block {
	var out []Block
	for _, b := range c.NonEmptyBlocks() {
		if b.Pos.Z == z {
			out = append(out, b)
		}
	}
	return out
}

func TestNonEmptyBlocksOrder(t *testing.T) {
	c := NewCementedBlocks(NewGameBox(Pos3d{X: 4, Y: 4, Z: 4}))
	c.SetBlock(Block{Pos: Pos3d{X: 3, Y: 0, Z: 2}, PieceId: 1})
	c.SetBlock(Block{Pos: Pos3d{X: 0, Y: 1, Z: 0}, PieceId: 2})
	c.SetBlock(Block{Pos: Pos3d{X: 1, Y: 0, Z: 0}, PieceId: 3})

	assert.Equal(t, []Block{
		{Pos: Pos3d{X: 1, Y: 0, Z: 0}, PieceId: 3},
		{Pos: Pos3d{X: 0, Y: 1, Z: 0}, PieceId: 2},
		{Pos: Pos3d{X: 3, Y: 0, Z: 2}, PieceId: 1},
	}, c.NonEmptyBlocks())
}
