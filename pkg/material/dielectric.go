package material

import (
	"math"
	"math/rand"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Dielectric is a transparent, refractive material (glass, water, ...)
// with the given index of refraction (spec §4.3).
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric constructs a dielectric, rejecting a non-positive index
// of refraction (spec §7).
func NewDielectric(ior float64) (*Dielectric, error) {
	if ior <= 0 {
		return nil, &core.MaterialError{Material: "dielectric", Reason: "index of refraction must be positive"}
	}
	return &Dielectric{RefractiveIndex: ior}, nil
}

// Emit returns black: dielectrics do not emit light.
func (d *Dielectric) Emit(core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter never attenuates color (white attenuation) and chooses between
// reflection and refraction using total-internal-reflection and Schlick's
// approximation, per spec §4.3.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	etaRatio := d.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, etaRatio) > rng.Float64() {
		direction = reflect(unitDir, hit.Normal)
	} else {
		direction = refract(unitDir, hit.Normal, etaRatio, cosTheta)
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction},
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// refract decomposes the incident unit direction into components
// perpendicular and parallel to n, scales the perpendicular component by
// etaRatio, and sets the parallel magnitude to satisfy Snell's law
// (spec §4.3).
func refract(unitDir, n core.Vec3, etaRatio, cosTheta float64) core.Vec3 {
	perp := unitDir.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - perp.LengthSquared())))
	return perp.Add(parallel)
}

// schlickReflectance is Schlick's polynomial approximation to the Fresnel
// reflectance: R(cosθ) = R0 + (1-R0)(1-cosθ)^5, with R0 computed for
// normal incidence (spec §4.3).
func schlickReflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
