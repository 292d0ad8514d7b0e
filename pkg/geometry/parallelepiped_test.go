package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

// TestParallelepiped_MatchesIndividualFaces is spec §8 scenario 6: a
// parallelepiped built from u=(1,0,0), v=(0,1,0), w=(0,0,1) at the origin
// must agree with the six corresponding parallelograms added individually
// to a scene, for every ray.
func TestParallelepiped_MatchesIndividualFaces(t *testing.T) {
	q := core.NewVec3(0, 0, 0)
	u := core.NewVec3(1, 0, 0)
	v := core.NewVec3(0, 1, 0)
	w := core.NewVec3(0, 0, 1)

	pp, err := NewParallelepiped(q, u, v, w, nil)
	if err != nil {
		t.Fatalf("NewParallelepiped: %v", err)
	}

	scene := NewScene()
	faceSpecs := [][3]core.Vec3{
		{q, u, v},
		{q.Add(w), u, v},
		{q, u, w},
		{q.Add(v), u, w},
		{q, v, w},
		{q.Add(u), v, w},
	}
	for _, fs := range faceSpecs {
		face, err := NewParallelogram(fs[0], fs[1], fs[2], nil)
		if err != nil {
			t.Fatalf("NewParallelogram: %v", err)
		}
		scene.Add(face)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		origin := core.NewVec3(4*rng.Float64()-2, 4*rng.Float64()-2, 4*rng.Float64()-2)
		dir := core.NewVec3(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)
		ray, err := core.NewRay(origin, dir)
		if err != nil {
			continue // degenerate direction, skip
		}

		boxHit, boxOK := pp.Hit(ray, 0.001, 1000.0)
		sceneHit, sceneOK := scene.Hit(ray, 0.001, 1000.0)

		if boxOK != sceneOK {
			t.Fatalf("ray %+v: box hit=%v scene hit=%v", ray, boxOK, sceneOK)
		}
		if boxOK && math.Abs(boxHit.T-sceneHit.T) > 1e-9 {
			t.Fatalf("ray %+v: box T=%v scene T=%v", ray, boxHit.T, sceneHit.T)
		}
	}
}

func TestParallelepiped_Hit(t *testing.T) {
	pp, err := NewParallelepiped(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1), nil)
	if err != nil {
		t.Fatalf("NewParallelepiped: %v", err)
	}

	ray, _ := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := pp.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit through the center of the unit cube")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("T = %v, want 4.5", hit.T)
	}
}
