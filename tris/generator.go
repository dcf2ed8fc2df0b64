package tris

import "math/rand/v2"

// prototypes are the relative block offsets of every piece shape. The last
// three extend into z and are genuinely three dimensional.
var prototypes = [][]Pos3d{
	{ //  ##
		{-1, 0, 0}, // ##
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	},
	{ // ####
		{-1, 0, 0},
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
	},
	{ // ###
		{-1, 0, 0}, //   #
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
	},
	{ // ###
		{-1, 0, 0}, //  #
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	},
	{ // ##
		{0, 0, 0}, // ##
		{0, 1, 0},
		{1, 0, 0},
		{1, 1, 0},
	},
	{ // ##
		{-1, 0, 0}, //  o
		{0, 0, 0},
		{0, 1, 1},
		{0, 1, 0},
	},
	{ // o#
		{-1, 0, 0}, //  #
		{0, 0, 0},
		{-1, 0, 1},
		{0, 1, 0},
	},
	{ // o#
		{0, 0, 0}, // #
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	},
}

// PrototypeCount is the number of distinct piece shapes.
var PrototypeCount = len(prototypes)

// maxQuarterTurns bounds the random orientation turns applied per axis.
const maxQuarterTurns = 4

// PieceGenerator deals pieces from the prototype library using its own
// seeded random source. Two generators with the same seed and box deal the
// same sequence.
type PieceGenerator struct {
	box         GameBox
	random      *rand.Rand
	spawnHeight int
	nextPieceId int
}

// NewPieceGenerator creates a generator for box. Pieces spawn spawnHeight
// layers above the top of the box before being pulled back inside it.
func NewPieceGenerator(box GameBox, seed uint64, spawnHeight int) *PieceGenerator {
	return &PieceGenerator{
		box:         box,
		random:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spawnHeight: spawnHeight,
		nextPieceId: 1,
	}
}

// NextPiece returns a new randomly oriented piece at the spawn position.
func (g *PieceGenerator) NextPiece() Piece {
	prototype := prototypes[g.random.IntN(len(prototypes))]

	pieceId := g.nextPieceId
	g.nextPieceId++

	blocks := make([]Block, len(prototype))
	for i, pos := range prototype {
		blocks[i] = Block{Pos: pos, PieceId: pieceId}
	}

	dims := g.box.Dims()
	piece := NewPiece(Pos3d{}, blocks).Translated(Pos3d{
		X: dims.X / 2,
		Y: dims.Y / 2,
		Z: dims.Z + g.spawnHeight,
	})

	return g.box.TranslateToBounds(g.randomOrientation(piece))
}

func (g *PieceGenerator) randomOrientation(piece Piece) Piece {
	for _, axis := range Axes {
		turns := g.random.IntN(maxQuarterTurns + 1)
		for range turns {
			piece = piece.Rotated(Rotation{Axis: axis, Direction: CCW})
		}
	}
	return piece
}

// PiecesDealt returns how many pieces the generator has produced.
func (g *PieceGenerator) PiecesDealt() int {
	return g.nextPieceId - 1
}
