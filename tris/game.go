// Package tris implements the falling block game played inside a 3D box:
// piece geometry, the occupancy grid of landed blocks, the seeded piece
// generator and the game engine that ties them together.
package tris

import (
	"fmt"
	"math"
)

// Game is the control and query surface of a running game.
// Queries have no side effects. Controls report whether they changed the
// observable state, which hosts use to decide whether to re-render.
type Game interface {
	ActiveBlocks() []Block
	CementedBlocks() []Block
	AllBlocks() []Block
	IsOver() bool
	Score() int
	Dimensions() Pos3d
	Stats() Stats

	// Tick advances the drop countdown by dtMilliseconds.
	Tick(dtMilliseconds int) bool

	MoveXY(dx, dy int) bool
	Rotate(axis Axis, direction Direction) bool
	Drop() bool
}

// Stats are read-only counters of a game.
type Stats struct {
	PiecesDropped int
	LayersCleared int
	// DropIntervalMs is the current automatic drop interval.
	DropIntervalMs int
}

// BuildGame creates a game with the default config.
func BuildGame(seed uint64) Game {
	return BuildGameWithConfig(seed, DefaultConfig())
}

// BuildGameWithConfig creates a game from cfg. cfg must be valid.
func BuildGameWithConfig(seed uint64, cfg Config) Game {
	if err := cfg.Validate(); err != nil {
		panic("invalid game config: " + err.Error())
	}
	return newEngine(seed, cfg)
}

var _ Game = (*engine)(nil)

type engine struct {
	cfg       Config
	box       GameBox
	cemented  *CementedBlocks
	generator *PieceGenerator

	active Piece
	score  int
	over   bool

	countdownMs   int
	piecesDropped int
	layersCleared int
}

func newEngine(seed uint64, cfg Config) *engine {
	box := NewGameBox(cfg.Dimensions)
	e := &engine{
		cfg:       cfg,
		box:       box,
		cemented:  NewCementedBlocks(box),
		generator: NewPieceGenerator(box, seed, cfg.SpawnHeight),
	}
	e.countdownMs = e.dropIntervalMs()
	e.spawn()
	return e
}

func (e *engine) ActiveBlocks() []Block {
	return e.active.Blocks()
}

func (e *engine) CementedBlocks() []Block {
	return e.cemented.NonEmptyBlocks()
}

func (e *engine) AllBlocks() []Block {
	return append(e.CementedBlocks(), e.ActiveBlocks()...)
}

func (e *engine) IsOver() bool {
	return e.over
}

func (e *engine) Score() int {
	return e.score
}

func (e *engine) Dimensions() Pos3d {
	return e.box.Dims()
}

func (e *engine) Stats() Stats {
	return Stats{
		PiecesDropped:  e.piecesDropped,
		LayersCleared:  e.layersCleared,
		DropIntervalMs: e.dropIntervalMs(),
	}
}

// dropIntervalMs halves every HalfLifePieces placed pieces.
func (e *engine) dropIntervalMs() int {
	initial := float64(e.cfg.InitialInterval.Milliseconds())
	return int(math.Ceil(initial * math.Exp2(-float64(e.piecesDropped)/e.cfg.HalfLifePieces)))
}

func (e *engine) Tick(dtMilliseconds int) bool {
	if e.over {
		return false
	}

	e.countdownMs -= dtMilliseconds
	if e.countdownMs > 0 {
		return false
	}

	e.moveDown()
	e.countdownMs = e.dropIntervalMs()
	return true
}

func (e *engine) MoveXY(dx, dy int) bool {
	if abs(dx)+abs(dy) != 1 {
		panic(fmt.Sprintf("moveXY needs a unit step, got (%d,%d)", dx, dy))
	}
	if e.over {
		return false
	}
	return e.replaceIfFits(e.active.Translated(Pos3d{X: dx, Y: dy}))
}

func (e *engine) Rotate(axis Axis, direction Direction) bool {
	if e.over {
		return false
	}
	rotated := e.active.Rotated(Rotation{Axis: axis, Direction: direction})
	return e.replaceIfFits(e.box.TranslateToBounds(rotated))
}

func (e *engine) Drop() bool {
	if e.over {
		return false
	}
	fallen := 0
	for e.moveDown() {
		fallen++
	}
	e.score += fallen * e.cfg.DropScoreMultiplier
	return true
}

func (e *engine) replaceIfFits(candidate Piece) bool {
	if !e.cemented.PieceFits(candidate) {
		return false
	}
	e.active = candidate
	return true
}

// moveDown lowers the active piece by one layer. When it cannot, the piece
// is cemented, full layers are cleared, the next piece is spawned and
// false is returned.
func (e *engine) moveDown() bool {
	if e.replaceIfFits(e.active.Translated(Pos3d{Z: -1})) {
		return true
	}

	e.cemented.CementPiece(e.active)
	e.piecesDropped++

	// Layers at or above a removed layer have already been visited, so a
	// single top-down pass finds every full layer.
	removed := 0
	for z := e.box.Dims().Z - 1; z >= 0; z-- {
		if e.cemented.IsLayerFull(z) {
			e.cemented.RemoveLayer(z)
			removed++
		}
	}
	e.layersCleared += removed
	e.score += (1<<removed - 1) * e.cfg.RemovalScoreMultiplier

	e.spawn()
	return false
}

func (e *engine) spawn() {
	e.active = e.generator.NextPiece()
	if !e.cemented.PieceFits(e.active) {
		e.over = true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
