// Package core holds the foundational types the rest of the engine builds
// on: the vector/color primitive, rays, hit records, and the Shape/Material
// contracts that primitives and materials implement. Nothing in this
// package depends on geometry, material, or renderer — it sits at the
// bottom of the import graph so all of those can depend on it without
// cycles.
package core

import "math"

// Vec3 is a 3-component double-precision vector. The engine uses the same
// type for positions, directions, and linear RGB radiance — there is no
// separate Color type.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 constructs a vector from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Subtract returns the component-wise difference v - o.
func (v Vec3) Subtract(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Multiply scales every component by a scalar.
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MultiplyVec returns the component-wise (Hadamard) product, used to apply
// a material's attenuation to incoming radiance.
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|², cheaper than Length when only comparisons
// are needed.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to itself rather than producing NaNs; callers that must not
// see the zero vector (e.g. ray directions) are expected to have already
// rejected it at construction.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Multiply(1 / length)
}

// NearZero reports whether v's squared length is below 1e-8, i.e. whether
// v is degenerate for the purpose of scatter direction fallbacks (spec
// §4.3 diffuse scatter).
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return v.LengthSquared() < eps
}

// Clamp clamps every component into [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: clampFloat(v.X, lo, hi),
		Y: clampFloat(v.Y, lo, hi),
		Z: clampFloat(v.Z, lo, hi),
	}
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// GammaCorrect applies gamma-2 correction (x → √x) component-wise, per
// spec §4.6. It operates on linear radiance already averaged over samples.
func (v Vec3) GammaCorrect() Vec3 {
	return Vec3{
		X: math.Sqrt(math.Max(0, v.X)),
		Y: math.Sqrt(math.Max(0, v.Y)),
		Z: math.Sqrt(math.Max(0, v.Z)),
	}
}
