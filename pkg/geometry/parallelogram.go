package geometry

import (
	"math"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// Parallelogram is the planar quadrilateral spanned by edge vectors U and
// V from corner Q. Normal, D, and W are cached at construction since they
// only depend on Q, U, and V (spec §3).
type Parallelogram struct {
	Q        core.Vec3
	U, V     core.Vec3
	Material core.Material

	normal core.Vec3 // unit(U×V)
	d      float64   // normal·Q
	w      core.Vec3 // (U×V) / (U×V)·(U×V), used for barycentric coords
}

// NewParallelogram constructs a parallelogram from a corner and two edge
// vectors, rejecting parallel (degenerate) edges (spec §7).
func NewParallelogram(q, u, v core.Vec3, material core.Material) (*Parallelogram, error) {
	cross := u.Cross(v)
	if cross.LengthSquared() == 0 {
		return nil, &core.GeometryError{Primitive: "parallelogram", Reason: "edges must not be parallel"}
	}

	normal := cross.Normalize()
	return &Parallelogram{
		Q:        q,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(q),
		w:        cross.Multiply(1 / cross.Dot(cross)),
	}, nil
}

// Hit intersects the supporting plane, then accepts the hit only if its
// barycentric coordinates α = w·(Δ×V), β = w·(U×Δ) both lie in [0,1]
// (spec §4.1).
func (pg *Parallelogram) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denom := pg.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (pg.d - pg.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	delta := point.Subtract(pg.Q)

	alpha := pg.w.Dot(delta.Cross(pg.V))
	beta := pg.w.Dot(pg.U.Cross(delta))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    point,
		Material: pg.Material,
	}
	hit.SetFaceNormal(ray, pg.normal)

	return hit, true
}
