package material

import (
	"math/rand"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Metal is a specular reflector perturbed by Fuzziness (0 = mirror,
// 1 = very fuzzy), per spec §4.3.
type Metal struct {
	Albedo    core.Vec3
	Fuzziness float64
}

// NewMetal constructs a metal material, clamping fuzziness into [0,1]
// rather than rejecting it (spec §7: clamp, don't reject).
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	if fuzziness < 0 {
		fuzziness = 0
	}
	if fuzziness > 1 {
		fuzziness = 1
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

// Emit returns black: metal does not emit light.
func (m *Metal) Emit(core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter reflects the incoming direction about the normal and perturbs it
// by Fuzziness·RandomInUnitSphere — an unnormalized sample, deliberately
// distinct from Diffuse's RandomUnitVector (spec §9). The ray is absorbed
// if the perturbed direction ends up pointing into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzziness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzziness))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: reflected},
		Attenuation: m.Albedo,
	}, true
}

// reflect computes the reflection of v about normal n: r = v - 2(v·n)n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
