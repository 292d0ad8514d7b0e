// Package integrator evaluates the recursive Monte-Carlo radiance function
// that the renderer's workers drive per sample (spec §4.4).
package integrator

import (
	"math"
	"math/rand"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// shadowAcneEpsilon excludes self-intersection at the just-hit surface.
const shadowAcneEpsilon = 1e-3

// RayColor evaluates the color arriving along ray by bouncing it against
// scene up to maxDepth times. Depth exhaustion returns black; a miss
// returns background.
func RayColor(ray core.Ray, scene core.Shape, background core.Vec3, maxDepth int, rng *rand.Rand) core.Vec3 {
	if maxDepth == 0 {
		return core.Vec3{}
	}

	hit, ok := scene.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !ok {
		return background
	}

	emitted := hit.Material.Emit(hit.Point)
	scatter, scattered := hit.Material.Scatter(ray, hit, rng)
	if !scattered {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(RayColor(scatter.Scattered, scene, background, maxDepth-1, rng)))
}
