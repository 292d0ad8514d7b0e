package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

func TestScene_ReturnsNearestHit(t *testing.T) {
	near := mustSphere(t, core.NewVec3(0, 0, -1), 0.5)
	far := mustSphere(t, core.NewVec3(0, 0, -3), 0.5)

	// Added in "wrong" order to confirm ordering doesn't matter for
	// correctness, only for t-tie resolution.
	scene := NewScene(far, near)

	ray, _ := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := scene.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("T = %v, want 0.5 (nearest sphere)", hit.T)
	}
}

func TestScene_EmptyScene_AlwaysMisses(t *testing.T) {
	scene := NewScene()
	ray, _ := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := scene.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected empty scene to always miss")
	}
}

func TestScene_TieResolvesToLaterPrimitive(t *testing.T) {
	matA := &stubMaterial{}
	matB := &stubMaterial{}
	a, _ := NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), matA)
	b, _ := NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), matB)

	scene := NewScene(a, b)
	ray, _ := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := scene.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	if hit.Material != matB {
		t.Error("expected exact-tie hit to resolve to the later primitive in the list")
	}
}

type stubMaterial struct{}

func (m *stubMaterial) Emit(core.Vec3) core.Vec3 { return core.Vec3{} }
func (m *stubMaterial) Scatter(core.Ray, *core.HitRecord, *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
