package geometry

import "github.com/kaelstrom/go-pathtracer/pkg/core"

// Parallelepiped is a closed hexahedron anchored at corner Q and spanned
// by edge vectors U, V, W, built from six parallelogram faces that share
// edges pairwise (spec §3, §4.1). It delegates intersection to its faces
// and does not itself compute anything geometric beyond building them.
type Parallelepiped struct {
	faces [6]*Parallelogram
}

// NewParallelepiped builds the six faces of the box spanned by u, v, w
// from anchor corner q: the face pairs are {q,u,v}/{q+w,u,v} (bottom/top),
// {q,u,w}/{q+v,u,w} (front/back), and {q,v,w}/{q+u,v,w} (left/right). This
// is exactly the result of adding those six parallelograms individually
// to a scene (spec §8 scenario 6).
func NewParallelepiped(q, u, v, w core.Vec3, material core.Material) (*Parallelepiped, error) {
	type faceSpec struct {
		corner, e1, e2 core.Vec3
	}
	specs := [6]faceSpec{
		{q, u, v},        // bottom (w=0)
		{q.Add(w), u, v}, // top (w=1)
		{q, u, w},        // front (v=0)
		{q.Add(v), u, w}, // back (v=1)
		{q, v, w},        // left (u=0)
		{q.Add(u), v, w}, // right (u=1)
	}

	pp := &Parallelepiped{}
	for i, s := range specs {
		face, err := NewParallelogram(s.corner, s.e1, s.e2, material)
		if err != nil {
			return nil, err
		}
		pp.faces[i] = face
	}
	return pp, nil
}

// Hit delegates to the aggregate-intersection behavior of Scene: ask every
// face for the nearest hit within a monotonically shrinking interval.
func (pp *Parallelepiped) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, face := range pp.faces {
		if hit, ok := face.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
