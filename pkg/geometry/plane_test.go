package geometry

import (
	"testing"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane, err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}

	ray, _ := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))
	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	if hit.T != 5 {
		t.Errorf("T = %v, want 5", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Normal = %v, want (0,1,0)", hit.Normal)
	}
}

func TestPlane_ParallelRayMisses(t *testing.T) {
	plane, _ := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray, _ := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0))

	if _, isHit := plane.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss for ray parallel to plane")
	}
}

func TestNewPlane_RejectsZeroNormal(t *testing.T) {
	if _, err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), nil); err == nil {
		t.Error("expected error for zero normal")
	}
}
