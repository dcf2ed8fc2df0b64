package tris

import "testing"

func BenchmarkPieceFits(b *testing.B) {
	box := NewGameBox(DefaultConfig().Dimensions)
	cemented := NewCementedBlocks(box)
	for z := range 6 {
		fillLayer(cemented, z, 1)
	}
	piece := NewPieceGenerator(box, 1, 5).NextPiece()

	for b.Loop() {
		cemented.PieceFits(piece)
	}
}

func BenchmarkRemoveLayer(b *testing.B) {
	box := NewGameBox(DefaultConfig().Dimensions)
	cemented := NewCementedBlocks(box)

	for b.Loop() {
		fillLayer(cemented, 0, 1)
		fillLayer(cemented, 7, 2)
		cemented.RemoveLayer(0)
	}
}

func BenchmarkTick(b *testing.B) {
	game := BuildGame(0)

	for b.Loop() {
		if game.IsOver() {
			game = BuildGame(0)
		}
		game.Tick(16)
	}
}
