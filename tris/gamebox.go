package tris

import "fmt"

// GameBox is the fixed bounding volume of a game.
type GameBox struct {
	dims Pos3d
}

// NewGameBox creates a box with the given dimensions. All components must
// be positive.
func NewGameBox(dims Pos3d) GameBox {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		panic(fmt.Sprintf("invalid game box dimensions %s", dims))
	}
	return GameBox{dims: dims}
}

// Dims returns the box dimensions.
func (b GameBox) Dims() Pos3d {
	return b.dims
}

// Size returns the number of cells in the box.
func (b GameBox) Size() int {
	return b.dims.Volume()
}

// Contains reports whether pos lies inside the box.
func (b GameBox) Contains(pos Pos3d) bool {
	return pos.X >= 0 && pos.X < b.dims.X &&
		pos.Y >= 0 && pos.Y < b.dims.Y &&
		pos.Z >= 0 && pos.Z < b.dims.Z
}

// ContainsPiece reports whether every block of piece lies inside the box.
func (b GameBox) ContainsPiece(piece Piece) bool {
	for _, block := range piece.Blocks() {
		if !b.Contains(block.Pos) {
			return false
		}
	}
	return true
}

// TranslateToBounds pushes piece back inside the box one axis at a time.
// A piece whose extent exceeds the box along some axis is not fully
// corrected.
func (b GameBox) TranslateToBounds(piece Piece) Piece {
	for _, axis := range Axes {
		if piece.Extent(axis, -1) < 0 {
			piece = piece.TranslatedBeyond(axis, 0, 1)
		}

		limit := b.dims.Get(axis)
		if piece.Extent(axis, 1) >= limit {
			piece = piece.TranslatedBeyond(axis, limit-1, -1)
		}
	}
	return piece
}
