// Package geometry holds the concrete primitive variants — sphere, plane,
// parallelogram, and parallelepiped — plus the Scene aggregate that
// intersects a ray against an ordered collection of them. Every type here
// implements core.Shape.
package geometry

import (
	"math"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Sphere is centered at Center with the given Radius. Radius may be
// negative: the normal is computed as (P - Center) / Radius using the
// *signed* radius, so a negative radius inverts the outward normal and
// models a hollow interior (spec §3, §9): rays arriving from outside are
// reported with FrontFace false. The stored normal still opposes the
// incoming ray. Do not "fix" this by taking math.Abs.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere constructs a sphere, rejecting a zero radius (spec §7).
// Negative radii are valid and intentional — see the Sphere doc comment.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius == 0 {
		return nil, &core.GeometryError{Primitive: "sphere", Reason: "radius must be non-zero"}
	}
	return &Sphere{Center: center, Radius: radius, Material: material}, nil
}

// Hit solves |O + tD - C|² = r² as the quadratic a·t² + 2·halfB·t + c = 0
// and keeps the smaller root that lies in [tMin, tMax], falling back to
// the larger root otherwise (spec §4.1).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
