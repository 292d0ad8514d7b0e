package core

import "math/rand"

// HitRecord is the output slot filled by a successful intersection. T is
// guaranteed to lie within the interval passed to Hit; Normal is unit
// length and oriented against the incoming ray (spec §3, §4.1).
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal applies the uniform face-orientation rule every primitive
// uses after computing an outward normal: front_face = D·n_out < 0, and the
// stored normal always opposes the incoming ray (spec §4.1).
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is the single operation every primitive and the scene aggregate
// implement: intersect a ray over [tMin, tMax], reporting the nearest hit
// within the interval. Both bounds are inclusive.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult is what a material's Scatter returns on a successful
// scatter: the outgoing ray and the color attenuation to apply to whatever
// radiance arrives along it.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Vec3
}

// Material is the polymorphic surface response every material variant
// implements (spec §4.3).
type Material interface {
	// Emit returns radiance emitted at the hit point, independent of any
	// incoming ray. Non-emissive materials return black.
	Emit(point Vec3) Vec3

	// Scatter attempts to bounce the incoming ray off the surface
	// described by hit. ok is false when the material absorbs the ray.
	Scatter(rayIn Ray, hit *HitRecord, rng *rand.Rand) (result ScatterResult, ok bool)
}
