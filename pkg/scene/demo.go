package scene

import (
	"github.com/kaelstrom/go-pathtracer/pkg/core"
	"github.com/kaelstrom/go-pathtracer/pkg/geometry"
	"github.com/kaelstrom/go-pathtracer/pkg/material"
)

// NewDiffuseSphereScene builds concrete scenario 1: a single unit diffuse
// sphere at the origin, camera at (0,0,3) looking down -z, white background.
func NewDiffuseSphereScene(width, height int) (*Scene, error) {
	diffuse := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, diffuse)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Geometry:   geometry.NewScene(sphere),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 0, 3), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.NewVec3(1, 1, 1),
		Width:      width,
		Height:     height,
	}, nil
}

// NewEmissiveSphereScene builds concrete scenario 2: a single emissive
// sphere of color (15,15,15), radius 0.5, at the origin, black background.
func NewEmissiveSphereScene(width, height int) (*Scene, error) {
	sun, err := material.NewEmissive(core.NewVec3(15, 15, 15))
	if err != nil {
		return nil, err
	}
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, sun)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Geometry:   geometry.NewScene(sphere),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 0, 3), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.Vec3{},
		Width:      width,
		Height:     height,
	}, nil
}

// NewGlassOverRedPlaneScene builds concrete scenario 3: a glass sphere
// (IOR 1.5) at the origin in front of a diffuse red plane at z = -2.
// hollow selects the inverted-radius thin-shell variant.
func NewGlassOverRedPlaneScene(width, height int, hollow bool) (*Scene, error) {
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))

	radius := 0.5
	if hollow {
		radius = -0.5
	}
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, 0), radius, glass)
	if err != nil {
		return nil, err
	}
	plane, err := geometry.NewPlane(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1), red)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Geometry:   geometry.NewScene(plane, sphere),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 0, 1), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.NewVec3(1, 1, 1),
		Width:      width,
		Height:     height,
	}, nil
}

// NewEmptyScene builds concrete scenario 4: zero primitives over a uniform
// blue background.
func NewEmptyScene(width, height int) *Scene {
	return &Scene{
		Geometry:   geometry.NewScene(),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 0, 0), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.NewVec3(0.2, 0.4, 0.8),
		Width:      width,
		Height:     height,
	}
}

// NewPlaneAndSkylightScene builds concrete scenario 5: a gray diffuse
// ground plane at y = 0 with an emissive sphere above it, camera at
// (0,2,4) above the plane, looking along -z.
func NewPlaneAndSkylightScene(width, height int) (*Scene, error) {
	gray := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	ground, err := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), gray)
	if err != nil {
		return nil, err
	}
	sun, err := material.NewEmissive(core.NewVec3(8, 8, 6))
	if err != nil {
		return nil, err
	}
	sky, err := geometry.NewSphere(core.NewVec3(0, 3, -2), 1.0, sun)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Geometry:   geometry.NewScene(ground, sky),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 2, 4), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.NewVec3(0.1, 0.1, 0.15),
		Width:      width,
		Height:     height,
	}, nil
}

// NewParallelepipedScene builds concrete scenario 6: a unit parallelepiped
// at the origin with a diffuse material, used to cross-check against the
// equivalent six parallelograms (pkg/geometry's own test covers the
// geometric equivalence directly; this builder exists for end-to-end
// rendering checks).
func NewParallelepipedScene(width, height int) (*Scene, error) {
	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	box, err := geometry.NewParallelepiped(
		core.NewVec3(-0.5, -0.5, -0.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		white,
	)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Geometry:   geometry.NewScene(box),
		Camera:     newCamera(cameraConfig{origin: core.NewVec3(0, 0, 3), focalLength: 1.0, viewportHeight: 2.0, aspectRatio: float64(width) / float64(height)}),
		Background: core.NewVec3(0.7, 0.8, 1.0),
		Width:      width,
		Height:     height,
	}, nil
}
