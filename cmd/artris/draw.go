package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/artris/gesture"
	"github.com/plus3/artris/render"
	"github.com/plus3/artris/session"
)

var (
	backgroundColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
	gridColor       = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	anchorColor     = color.RGBA{0xff, 0xff, 0xff, 0xc0}
	activeColor     = color.RGBA{0xff, 0xd0, 0x40, 0xff}
	arrowColor      = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	controller := h.session.Controller()
	scene := controller.Scene()
	layout := h.session.Layout()

	if h.session.State() != session.WaitingForPlane {
		for _, segment := range render.BoxOutline(scene, layout) {
			vector.StrokeLine(screen, segment.From.X(), segment.From.Y(), segment.To.X(), segment.To.Y(), 1, gridColor, true)
		}
	}

	if h.session.State() != session.WaitingForPlane && h.session.State() != session.WaitingForBox {
		for _, face := range h.builder.Faces(scene, layout, h.session.Game()) {
			fillPolygon(screen, face.Corners[:], face.Color)
		}
	}

	if h.session.State() == session.Running {
		drawDropArrow(screen, scene, controller.DropArrow())
		drawAnchors(screen, controller)
	}

	ebitenutil.DebugPrintAt(screen, h.statusLine(), 10, h.height-20)

	if h.backend != nil {
		h.backend.Draw(screen)
	}
}

func (h *host) statusLine() string {
	game := h.session.Game()
	switch h.session.State() {
	case session.WaitingForPlane:
		return "waiting for tracking (P)"
	case session.WaitingForBox:
		return "click to place the box"
	case session.PausedTrackingLost:
		return "tracking lost (P)"
	case session.Over:
		return fmt.Sprintf("game over, score %d (F5 restarts)", game.Score())
	}
	return fmt.Sprintf("score %d", game.Score())
}

func fillPolygon(dst *ebiten.Image, corners []mgl32.Vec2, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(corners[0].X(), corners[0].Y())
	for _, c := range corners[1:] {
		path.LineTo(c.X(), c.Y())
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func drawDropArrow(dst *ebiten.Image, scene gesture.Scene, world mgl32.Vec3) {
	p, ok := scene.ToScreen(world)
	if !ok {
		return
	}
	const size = 14
	fillPolygon(dst, []mgl32.Vec2{
		{p.X() - size, p.Y() - size},
		{p.X() + size, p.Y() - size},
		{p.X(), p.Y() + size},
	}, arrowColor)
}

func drawAnchors(dst *ebiten.Image, controller *gesture.Controller) {
	active, dragging := controller.ActiveAnchor()
	for _, anchor := range controller.Anchors() {
		if !anchor.Visible {
			continue
		}
		clr := anchorColor
		if dragging && anchor.Origin == active.Origin {
			clr = activeColor
		}
		x, y := anchor.Screen.X(), anchor.Screen.Y()
		vector.StrokeCircle(dst, x, y, 24, 2, clr, true)
		for _, arc := range anchor.Arcs {
			end := anchor.Screen.Add(arc.Screen.Mul(40))
			vector.StrokeLine(dst, x, y, end.X(), end.Y(), 2, clr, true)
		}
	}
}
