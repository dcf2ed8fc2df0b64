package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitKeepsDistance(t *testing.T) {
	target := mgl32.Vec3{0, 0.7, 0}
	c := newOrbitCamera(target, 2)

	for range 10 {
		c.orbit(0.4, 0.3)
		assert.InDelta(t, 2, c.eye().Sub(target).Len(), 1e-4)
		assert.LessOrEqual(t, c.pitch, float32(maxPitch))
	}
}

func TestZoomIsClamped(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{}, 2)
	c.zoom(100)
	assert.Equal(t, float32(maxDistance), c.distance)
	c.zoom(0.0001)
	assert.Equal(t, float32(minDistance), c.distance)
}
