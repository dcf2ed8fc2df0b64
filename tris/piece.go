package tris

import (
	"fmt"
	"slices"
)

// Piece is an immutable rigid group of blocks. Blocks are stored relative
// to the center; rotations act on the relative offsets and translations on
// the center, so a piece always turns about its own center.
type Piece struct {
	center Pos3d
	blocks []Block
}

// NewPiece creates a piece from blocks given relative to center.
func NewPiece(center Pos3d, blocks []Block) Piece {
	return Piece{center: center, blocks: slices.Clone(blocks)}
}

// Center returns the piece center.
func (p Piece) Center() Pos3d {
	return p.center
}

// Len returns the number of blocks in the piece.
func (p Piece) Len() int {
	return len(p.blocks)
}

// Blocks returns the absolute blocks of the piece.
func (p Piece) Blocks() []Block {
	out := make([]Block, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.Translated(p.center)
	}
	return out
}

// Translated returns a copy of p with its center moved by delta.
func (p Piece) Translated(delta Pos3d) Piece {
	// blocks are never written after construction, sharing is safe
	return Piece{center: p.center.Add(delta), blocks: p.blocks}
}

// Rotated returns a copy of p turned a quarter about its own center.
func (p Piece) Rotated(r Rotation) Piece {
	blocks := make([]Block, len(p.blocks))
	for i, b := range p.blocks {
		blocks[i] = b.Rotated(r)
	}
	return Piece{center: p.center, blocks: blocks}
}

// Extent returns the largest (direction +1) or smallest (direction -1)
// absolute coordinate of the piece along axis.
func (p Piece) Extent(axis Axis, direction int) int {
	if len(p.blocks) == 0 {
		panic("extent of empty piece")
	}
	checkDirection(direction)

	extreme := p.blocks[0].Pos.Get(axis)
	for _, b := range p.blocks[1:] {
		v := b.Pos.Get(axis)
		if v*direction > extreme*direction {
			extreme = v
		}
	}
	return extreme + p.center.Get(axis)
}

// TranslatedBeyond moves the piece along axis just far enough that its
// extreme coordinate facing away from direction reaches limit. With
// direction +1 the minimum is pushed up to limit, with -1 the maximum is
// pushed down to it. A piece already beyond limit is returned unchanged.
func (p Piece) TranslatedBeyond(axis Axis, limit int, direction int) Piece {
	extreme := p.Extent(axis, -direction)
	diff := (limit - extreme) * direction
	if diff <= 0 {
		return p
	}
	return p.Translated(Unit(axis, diff*direction))
}

// Equal reports whether both pieces cover the same absolute blocks in the
// same order.
func (p Piece) Equal(o Piece) bool {
	return slices.Equal(p.Blocks(), o.Blocks())
}

func checkDirection(direction int) {
	if direction != 1 && direction != -1 {
		panic(fmt.Sprintf("invalid extent direction %d", direction))
	}
}
