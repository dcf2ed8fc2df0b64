package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// orbitCamera circles the box the way a phone user walks around a table.
type orbitCamera struct {
	target   mgl32.Vec3
	distance float32
	yaw      float32
	pitch    float32
	fovY     float32
}

const (
	minPitch    = 0.05
	maxPitch    = 1.5
	minDistance = 0.3
	maxDistance = 6
)

func newOrbitCamera(target mgl32.Vec3, distance float32) *orbitCamera {
	return &orbitCamera{
		target:   target,
		distance: distance,
		yaw:      0.6,
		pitch:    0.6,
		fovY:     mgl32.DegToRad(60),
	}
}

func (c *orbitCamera) orbit(dYaw, dPitch float32) {
	c.yaw += dYaw
	c.pitch = mgl32.Clamp(c.pitch+dPitch, minPitch, maxPitch)
}

func (c *orbitCamera) zoom(factor float32) {
	c.distance = mgl32.Clamp(c.distance*factor, minDistance, maxDistance)
}

func (c *orbitCamera) eye() mgl32.Vec3 {
	cp, sp := float32(math.Cos(float64(c.pitch))), float32(math.Sin(float64(c.pitch)))
	cy, sy := float32(math.Cos(float64(c.yaw))), float32(math.Sin(float64(c.yaw)))
	return c.target.Add(mgl32.Vec3{cp * sy, sp, cp * cy}.Mul(c.distance))
}

func (c *orbitCamera) matrices(width, height int) (projection, view mgl32.Mat4) {
	aspect := float32(width) / float32(max(height, 1))
	projection = mgl32.Perspective(c.fovY, aspect, 0.01, 100)
	view = mgl32.LookAtV(c.eye(), c.target, mgl32.Vec3{0, 1, 0})
	return
}
