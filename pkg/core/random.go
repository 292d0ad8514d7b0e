package core

import "math/rand"

// RandomInUnitSphere draws a point inside the unit ball by rejection
// sampling the cube [-1,1]³, per spec §4.3. Unlike RandomUnitVector, the
// result is not normalized — metal fuzz perturbation relies on that
// distinction (spec §9).
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// RandomUnitVector draws a uniformly distributed unit vector by rejection
// sampling the unit ball and normalizing, per spec §4.3.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}
