// Package material holds the four surface-response variants the spec
// defines: diffuse, metallic, dielectric, and emissive. Each implements
// core.Material; none of them knows anything about the Shape that produced
// the HitRecord they're handed.
package material

import (
	"math/rand"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Diffuse is a Lambertian-ish material that always scatters, in a
// direction drawn from normal + a random unit vector (spec §4.3).
type Diffuse struct {
	Albedo core.Vec3
}

// NewDiffuse constructs a diffuse material. The source this engine is
// descended from does not validate albedo ≤ 1 (spec §9 open question); this
// implementation documents that it makes the same choice — out-of-range
// albedo is the caller's responsibility, not rejected here.
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Emit returns black: diffuse surfaces do not emit light.
func (d *Diffuse) Emit(core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter always succeeds. The scattered direction is normal + a random
// unit vector; if that sum is near-zero the direction falls back to the
// normal itself to avoid a degenerate ray (spec §4.3).
func (d *Diffuse) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(rng))
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction},
		Attenuation: d.Albedo,
	}, true
}
