// Package renderer drives the parallel block-interleaved render: camera ray
// generation, the framebuffer, the tile scheduler, and the worker pool.
package renderer

import (
	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Camera generates primary rays through an axis-aligned viewport centered on
// the optical axis (spec §4.5).
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera derives the viewport geometry once from focal length, viewport
// height, aspect ratio, and origin.
func NewCamera(origin core.Vec3, focalLength, viewportHeight, aspectRatio float64) *Camera {
	viewportWidth := aspectRatio * viewportHeight

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// RayAt generates the camera ray for normalized viewport coordinates u, v.
func (c *Camera) RayAt(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	// The origin-to-viewport direction is never zero for a well-formed
	// camera, so literal construction is safe in this hot path.
	return core.Ray{Origin: c.origin, Direction: direction}
}
