package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/artris/session"
	"github.com/plus3/artris/tris"
)

// SessionPanel shows the lifecycle state, score and board fill.
type SessionPanel struct{}

func (SessionPanel) Render(s *session.Session, _ float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := s.Game()
	stats := game.Stats()

	switch s.State() {
	case session.Running:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case session.Over:
		imgui.TextColored(imgui.NewVec4(1.0, 0.2, 0.2, 1.0), "GAME OVER")
	default:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), s.State().String())
	}
	imgui.Text(fmt.Sprintf("Session: %s", s.ID()))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Score: %d", game.Score()))
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.PiecesDropped))
	imgui.Text(fmt.Sprintf("Layers: %d", stats.LayersCleared))
	imgui.Text(fmt.Sprintf("Drop Interval: %d ms", stats.DropIntervalMs))

	if anchor, ok := s.Controller().ActiveAnchor(); ok {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Dragging anchor at (%.0f, %.0f)", anchor.Screen.X(), anchor.Screen.Y()))
	}

	if imgui.TreeNodeStr("Layers") {
		dims := game.Dimensions()
		area := float32(dims.X * dims.Y)
		fill := LayerFill(game)
		for z := len(fill) - 1; z >= 0; z-- {
			if fill[z] == 0 {
				continue
			}
			imgui.ProgressBarV(float32(fill[z])/area, imgui.NewVec2(-1, 0), fmt.Sprintf("z=%d %d/%d", z, fill[z], int(area)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Active Piece") {
		for _, block := range game.ActiveBlocks() {
			imgui.BulletText(block.Pos.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

// LayerFill counts the cemented blocks of every layer, bottom first.
func LayerFill(game tris.Game) []int {
	fill := make([]int, game.Dimensions().Z)
	for _, block := range game.CementedBlocks() {
		fill[block.Pos.Z]++
	}
	return fill
}
