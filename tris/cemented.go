package tris

import "fmt"

// CementedBlocks is the dense occupancy grid of blocks that have landed.
// Cells are indexed z-major: z*dimX*dimY + y*dimX + x.
type CementedBlocks struct {
	box      GameBox
	nonEmpty []bool
	pieceIds []int
}

// NewCementedBlocks creates an empty grid covering box.
func NewCementedBlocks(box GameBox) *CementedBlocks {
	return &CementedBlocks{
		box:      box,
		nonEmpty: make([]bool, box.Size()),
		pieceIds: make([]int, box.Size()),
	}
}

func (c *CementedBlocks) index(pos Pos3d) int {
	if !c.box.Contains(pos) {
		panic(fmt.Sprintf("cemented block position %s outside box %s", pos, c.box.dims))
	}
	dims := c.box.dims
	return pos.Z*dims.X*dims.Y + pos.Y*dims.X + pos.X
}

// HasBlock reports whether the cell at pos is occupied. pos must be inside
// the box.
func (c *CementedBlocks) HasBlock(pos Pos3d) bool {
	return c.nonEmpty[c.index(pos)]
}

// PieceIdAt returns the piece tag of the occupied cell at pos.
func (c *CementedBlocks) PieceIdAt(pos Pos3d) int {
	idx := c.index(pos)
	if !c.nonEmpty[idx] {
		panic(fmt.Sprintf("no cemented block at %s", pos))
	}
	return c.pieceIds[idx]
}

// SetBlock occupies the cell of block.
func (c *CementedBlocks) SetBlock(block Block) {
	idx := c.index(block.Pos)
	c.nonEmpty[idx] = true
	c.pieceIds[idx] = block.PieceId
}

func (c *CementedBlocks) clearBlock(pos Pos3d) {
	idx := c.index(pos)
	c.nonEmpty[idx] = false
	c.pieceIds[idx] = 0
}

// PieceFits reports whether every block of piece is inside the box and on
// an empty cell.
func (c *CementedBlocks) PieceFits(piece Piece) bool {
	for _, block := range piece.Blocks() {
		if !c.box.Contains(block.Pos) || c.HasBlock(block.Pos) {
			return false
		}
	}
	return true
}

// CementPiece writes piece into the grid. The piece must fit.
func (c *CementedBlocks) CementPiece(piece Piece) {
	if !c.PieceFits(piece) {
		panic("cementing a piece that does not fit")
	}
	for _, block := range piece.Blocks() {
		c.SetBlock(block)
	}
}

// IsLayerFull reports whether every cell of layer z is occupied.
func (c *CementedBlocks) IsLayerFull(z int) bool {
	dims := c.box.dims
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			if !c.HasBlock(Pos3d{X: x, Y: y, Z: z}) {
				return false
			}
		}
	}
	return true
}

// RemoveLayer deletes layer z and moves every layer above it down by one.
// The top layer becomes empty.
func (c *CementedBlocks) RemoveLayer(z int) {
	dims := c.box.dims
	if z < 0 || z >= dims.Z {
		panic(fmt.Sprintf("layer %d outside box %s", z, dims))
	}

	for ; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				pos := Pos3d{X: x, Y: y, Z: z}
				top := Pos3d{X: x, Y: y, Z: z + 1}
				if z == dims.Z-1 || !c.HasBlock(top) {
					c.clearBlock(pos)
				} else {
					c.SetBlock(Block{Pos: pos, PieceId: c.PieceIdAt(top)})
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (c *CementedBlocks) Count() int {
	n := 0
	for _, occupied := range c.nonEmpty {
		if occupied {
			n++
		}
	}
	return n
}

// NonEmptyBlocks returns every occupied cell ordered by z, then y, then x.
func (c *CementedBlocks) NonEmptyBlocks() []Block {
	dims := c.box.dims
	blocks := make([]Block, 0, c.Count())
	for z := 0; z < dims.Z; z++ {
		for y := 0; y < dims.Y; y++ {
			for x := 0; x < dims.X; x++ {
				pos := Pos3d{X: x, Y: y, Z: z}
				if c.HasBlock(pos) {
					blocks = append(blocks, Block{Pos: pos, PieceId: c.PieceIdAt(pos)})
				}
			}
		}
	}
	return blocks
}
