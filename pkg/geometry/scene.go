package geometry

import "github.com/kaelstrom/go-pathtracer/pkg/core"

// Scene is an ordered collection of primitives that itself behaves as a
// primitive, returning the nearest hit among its members (spec §3, §4.2).
type Scene struct {
	Primitives []core.Shape
}

// NewScene builds a scene from zero or more primitives. A scene with zero
// primitives is valid (spec §7 EmptyScene) — every ray against it simply
// misses.
func NewScene(primitives ...core.Shape) *Scene {
	return &Scene{Primitives: primitives}
}

// Add appends a primitive to the scene.
func (s *Scene) Add(p core.Shape) {
	s.Primitives = append(s.Primitives, p)
}

// Hit iterates the primitives in order, asking each for the nearest hit
// within a monotonically shrinking interval, and retains the last
// improvement. Ties at exactly equal t resolve to the later primitive in
// the list — this is order-dependent but well-defined (spec §4.2).
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, primitive := range s.Primitives {
		if hit, ok := primitive.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
