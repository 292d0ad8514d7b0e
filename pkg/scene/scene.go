// Package scene bundles a built geometry.Scene with the camera and render
// configuration needed to drive a render, and provides a handful of
// built-in demo scenes restricted to the engine's closed primitive list
// (sphere, plane, parallelogram, parallelepiped).
package scene

import (
	"github.com/kaelstrom/go-pathtracer/pkg/core"
	"github.com/kaelstrom/go-pathtracer/pkg/geometry"
	"github.com/kaelstrom/go-pathtracer/pkg/renderer"
)

// Scene bundles everything a render needs beyond the worker configuration:
// the primitive graph, the derived camera, the background radiance seen by
// rays that miss everything, and the image width and height.
type Scene struct {
	Geometry   *geometry.Scene
	Camera     *renderer.Camera
	Background core.Vec3
	Width      int
	Height     int
}

// cameraConfig is the subset of §4.5's parameters needed to derive a
// renderer.Camera, kept here so demo builders can share a single call site.
type cameraConfig struct {
	origin                           core.Vec3
	focalLength, viewportHeight, aspectRatio float64
}

func newCamera(c cameraConfig) *renderer.Camera {
	return renderer.NewCamera(c.origin, c.focalLength, c.viewportHeight, c.aspectRatio)
}
