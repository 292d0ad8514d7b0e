package geometry

import (
	"math"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material core.Material
}

// NewPlane constructs a plane, rejecting a zero normal (spec §7). The
// normal is normalized so Hit can rely on it being unit length.
func NewPlane(point, normal core.Vec3, material core.Material) (*Plane, error) {
	if normal.LengthSquared() == 0 {
		return nil, &core.GeometryError{Primitive: "plane", Reason: "normal must be non-zero"}
	}
	return &Plane{Point: point, Normal: normal.Normalize(), Material: material}, nil
}

// Hit rejects rays parallel to the plane (|D·n| < 1e-6) and otherwise
// solves for t directly from the plane equation (spec §4.1).
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-6 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}
