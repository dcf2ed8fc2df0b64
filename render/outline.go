package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/artris/gesture"
)

// Segment is a projected line.
type Segment struct {
	From, To mgl32.Vec2
}

// BoxOutline returns the floor grid and the four vertical edges of the
// game box. Lines with an end behind the camera are left out.
func BoxOutline(scene gesture.Scene, layout gesture.Layout) []Segment {
	dims := layout.Dims
	top := float32(dims.Z)
	var lines [][2]mgl32.Vec3

	for x := 0; x <= dims.X; x++ {
		lines = append(lines, [2]mgl32.Vec3{
			layout.ToModel(float32(x), 0, 0),
			layout.ToModel(float32(x), float32(dims.Y), 0),
		})
	}
	for y := 0; y <= dims.Y; y++ {
		lines = append(lines, [2]mgl32.Vec3{
			layout.ToModel(0, float32(y), 0),
			layout.ToModel(float32(dims.X), float32(y), 0),
		})
	}
	for _, c := range [][2]float32{{0, 0}, {float32(dims.X), 0}, {0, float32(dims.Y)}, {float32(dims.X), float32(dims.Y)}} {
		lines = append(lines, [2]mgl32.Vec3{
			layout.ToModel(c[0], c[1], 0),
			layout.ToModel(c[0], c[1], top),
		})
	}

	segments := make([]Segment, 0, len(lines))
	for _, line := range lines {
		from, ok := scene.ToScreen(worldPoint(scene.Model, line[0]))
		if !ok {
			continue
		}
		to, ok := scene.ToScreen(worldPoint(scene.Model, line[1]))
		if !ok {
			continue
		}
		segments = append(segments, Segment{From: from, To: to})
	}
	return segments
}
